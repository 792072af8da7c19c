package notification

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"glowbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeNotificationRepo struct {
	items map[string]*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{items: make(map[string]*models.Notification)}
}

func (r *fakeNotificationRepo) Create(n *models.Notification) error {
	copied := *n
	r.items[n.ID] = &copied
	return nil
}

func (r *fakeNotificationRepo) GetByID(id string) (*models.Notification, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNotificationRepo) ListByUser(userID string, unreadOnly bool, limit int64) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.items {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(userID string) (int64, error) {
	var count int64
	for _, n := range r.items {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(id string) error {
	if n, ok := r.items[id]; ok {
		n.IsRead = true
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(userID string) (int64, error) {
	var count int64
	for _, n := range r.items {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	users map[string]models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (r *fakeUserRepo) GetByIDs(ids []string) (map[string]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error { return nil }

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

type recordingPush struct {
	sent []string // device tokens
	err  error
}

func (p *recordingPush) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, token)
	return nil
}

func newNotificationService() (*DefaultNotificationService, *fakeNotificationRepo, *recordingPush) {
	repo := newFakeNotificationRepo()
	push := &recordingPush{}
	users := &fakeUserRepo{users: map[string]models.User{
		"user-1": {ID: "user-1", FCMToken: "device-token-1"},
		"user-2": {ID: "user-2"}, // no registered device
	}}
	return &DefaultNotificationService{Repo: repo, Users: users, Push: push}, repo, push
}

func TestDispatchStoresAndPushes(t *testing.T) {
	svc, repo, push := newNotificationService()

	n, err := svc.Dispatch(context.Background(), models.Notification{
		UserID:  "user-1",
		Type:    models.NotificationNewBooking,
		Title:   "New Booking Request",
		Message: "You have a new booking request from Amina",
	})
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.IsRead)
	assert.False(t, n.CreatedAt.IsZero())

	stored, err := repo.GetByID(n.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.UserID)

	assert.Equal(t, []string{"device-token-1"}, push.sent)
}

func TestDispatchWithoutDeviceSkipsPush(t *testing.T) {
	svc, _, push := newNotificationService()

	_, err := svc.Dispatch(context.Background(), models.Notification{
		UserID: "user-2",
		Type:   models.NotificationStatusUpdate,
		Title:  "Booking Status Update",
	})
	require.NoError(t, err)
	assert.Empty(t, push.sent)
}

func TestDispatchSurvivesPushFailure(t *testing.T) {
	svc, repo, push := newNotificationService()
	push.err = errors.New("fcm unavailable")

	n, err := svc.Dispatch(context.Background(), models.Notification{
		UserID: "user-1",
		Type:   models.NotificationStatusUpdate,
		Title:  "Booking Status Update",
	})
	require.NoError(t, err, "push failures must not fail the dispatch")

	stored, err := repo.GetByID(n.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestListForUserSortLimitUnread(t *testing.T) {
	svc, repo, _ := newNotificationService()

	base := time.Now()
	for i, id := range []string{"n1", "n2", "n3"} {
		require.NoError(t, repo.Create(&models.Notification{
			ID:        id,
			UserID:    "user-1",
			Type:      models.NotificationNewBooking,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.MarkRead("n3"))

	all, err := svc.ListForUser(context.Background(), "user-1", false, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "n3", all[0].ID, "newest first")

	limited, err := svc.ListForUser(context.Background(), "user-1", false, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	unread, err := svc.ListForUser(context.Background(), "user-1", true, 0)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	for _, n := range unread {
		assert.False(t, n.IsRead)
	}

	count, err := svc.UnreadCount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMarkReadAuthorization(t *testing.T) {
	svc, repo, _ := newNotificationService()

	require.NoError(t, repo.Create(&models.Notification{ID: "n1", UserID: "user-1"}))

	err := svc.MarkRead(context.Background(), "user-2", "n1")
	assert.ErrorIs(t, err, ErrNotRecipient)

	stored, _ := repo.GetByID("n1")
	assert.False(t, stored.IsRead, "rejected mark must not flip the flag")

	require.NoError(t, svc.MarkRead(context.Background(), "user-1", "n1"))
	stored, _ = repo.GetByID("n1")
	assert.True(t, stored.IsRead)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	svc, _, _ := newNotificationService()

	err := svc.MarkRead(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	svc, repo, _ := newNotificationService()

	require.NoError(t, repo.Create(&models.Notification{ID: "n1", UserID: "user-1"}))
	require.NoError(t, repo.Create(&models.Notification{ID: "n2", UserID: "user-1"}))
	require.NoError(t, repo.Create(&models.Notification{ID: "n3", UserID: "user-2"}))

	count, err := svc.MarkAllRead(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	remaining, err := svc.UnreadCount(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, remaining)

	other, err := svc.UnreadCount(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other, "other recipients are untouched")

	again, err := svc.MarkAllRead(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, again)
}
