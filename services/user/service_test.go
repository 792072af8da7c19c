package user

import (
	"context"
	"errors"
	"testing"

	"glowbook/models"
	"glowbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users      map[string]*models.User
	updates    map[string]bson.M
	getByIDErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[string]*models.User),
		updates: make(map[string]bson.M),
	}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if r.getByIDErr != nil {
		return nil, r.getByIDErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDs(ids []string) (map[string]models.User, error) {
	out := make(map[string]models.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.updates[id] = updateDoc
	return nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	usr, token, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Amina@Example.com ",
		Password: "correct-horse-battery",
		Name:     "Amina",
		Phone:    "+254700000001",
	})
	require.NoError(t, err)
	require.NotNil(t, usr)
	assert.NotEmpty(t, token)

	assert.Equal(t, "amina@example.com", usr.Email, "email is normalized")
	assert.Equal(t, models.RoleCustomer, usr.Role)
	assert.NotEmpty(t, usr.ID)
	assert.NotEqual(t, "correct-horse-battery", usr.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte("correct-horse-battery")))

	// The token resolves back to this account.
	sub, email, err := utils.ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, sub)
	assert.Equal(t, "amina@example.com", email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, _, err := svc.Register(context.Background(), RegisterInput{Email: "amina@example.com", Password: "pw-12345678", Name: "Amina"})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterInput{Email: "AMINA@example.com", Password: "pw-12345678", Name: "Impostor"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	registered, _, err := svc.Register(context.Background(), RegisterInput{Email: "amina@example.com", Password: "pw-12345678", Name: "Amina"})
	require.NoError(t, err)

	usr, token, err := svc.Authenticate(context.Background(), "Amina@Example.com", "pw-12345678")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, usr.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Authenticate(context.Background(), "amina@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate(context.Background(), "nobody@example.com", "pw-12345678")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	registered, _, err := svc.Register(context.Background(), RegisterInput{Email: "amina@example.com", Password: "pw-12345678", Name: "Amina"})
	require.NoError(t, err)

	usr, err := svc.GetUserByID(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, usr.ID)

	// A missing record is not-found, a storage failure is not.
	_, err = svc.GetUserByID(context.Background(), "u-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	repo.getByIDErr = errors.New("connection reset")
	_, err = svc.GetUserByID(context.Background(), registered.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateFCMToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.UpdateFCMToken(context.Background(), "u-1", "device-token-1"))

	update, ok := repo.updates["u-1"]
	require.True(t, ok)
	assert.Equal(t, "device-token-1", update["fcm_token"])
	assert.Contains(t, update, "updated_at")
}
