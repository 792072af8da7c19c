package booking

import (
	"context"
	"testing"
	"time"

	"glowbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ListByCustomer(customerID string, status *models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByTherapist(therapistID string, status *models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TherapistID != therapistID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	b := r.bookings[id]
	if s, ok := updateDoc["status"].(models.BookingStatus); ok {
		b.Status = s
	}
	if t, ok := updateDoc["updated_at"].(time.Time); ok {
		b.UpdatedAt = t
	}
	return nil
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

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDs(ids []string) (map[string]models.User, error) {
	out := make(map[string]models.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}

type fakeTherapistRepo struct {
	profiles map[string]models.Therapist
}

func (r *fakeTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	if p, ok := r.profiles[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakeTherapistRepo) GetByUserID(userID string) (*models.Therapist, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTherapistRepo) GetByIDs(ids []string) (map[string]models.Therapist, error) {
	out := make(map[string]models.Therapist)
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *fakeTherapistRepo) ListActive() ([]models.Therapist, error) {
	var out []models.Therapist
	for _, p := range r.profiles {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeTherapistRepo) Create(t *models.Therapist) error {
	r.profiles[t.ID] = *t
	return nil
}

func (r *fakeTherapistRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}

type fakePaymentRepo struct {
	byBooking map[string]models.Payment
}

func (r *fakePaymentRepo) GetByBookingIDs(bookingIDs []string) (map[string]models.Payment, error) {
	out := make(map[string]models.Payment)
	for _, id := range bookingIDs {
		if p, ok := r.byBooking[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetByIntentID(intentID string) (*models.Payment, error) {
	for _, p := range r.byBooking {
		if p.StripePaymentIntentID == intentID {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) UpsertByIntentID(p *models.Payment) error {
	r.byBooking[p.BookingID] = *p
	return nil
}

// fakeNotifier records dispatched notifications.
type fakeNotifier struct {
	dispatched []models.Notification
}

func (n *fakeNotifier) Dispatch(ctx context.Context, notif models.Notification) (*models.Notification, error) {
	n.dispatched = append(n.dispatched, notif)
	return &notif, nil
}

func (n *fakeNotifier) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit int64) ([]models.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, callerID, notificationID string) error {
	return nil
}

func (n *fakeNotifier) MarkAllRead(ctx context.Context, callerID string) (int64, error) {
	return 0, nil
}

type fakeScheduler struct {
	scheduled map[string]time.Time
}

func (s *fakeScheduler) ScheduleBookingReminder(bookingID string, fireAt time.Time) error {
	if s.scheduled == nil {
		s.scheduled = make(map[string]time.Time)
	}
	s.scheduled[bookingID] = fireAt
	return nil
}

type bookingFixture struct {
	svc        *DefaultBookingService
	bookings   *fakeBookingRepo
	users      *fakeUserRepo
	therapists *fakeTherapistRepo
	payments   *fakePaymentRepo
	notifier   *fakeNotifier
	scheduler  *fakeScheduler
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookings:   newFakeBookingRepo(),
		users:      &fakeUserRepo{users: make(map[string]models.User)},
		therapists: &fakeTherapistRepo{profiles: make(map[string]models.Therapist)},
		payments:   &fakePaymentRepo{byBooking: make(map[string]models.Payment)},
		notifier:   &fakeNotifier{},
		scheduler:  &fakeScheduler{},
	}
	f.svc = &DefaultBookingService{
		Repo:       f.bookings,
		Users:      f.users,
		Therapists: f.therapists,
		Payments:   f.payments,
		Notifier:   f.notifier,
		Reminders:  f.scheduler,
	}

	f.users.users["cust-1"] = models.User{ID: "cust-1", Email: "amina@example.com", Name: "Amina", Role: models.RoleCustomer}
	f.users.users["ther-1"] = models.User{ID: "ther-1", Email: "joy@example.com", Name: "Joy", Role: models.RoleTherapist, Image: "https://cdn.example.com/joy.jpg"}
	f.therapists.profiles["prof-1"] = models.Therapist{ID: "prof-1", UserID: "ther-1", Specialty: "Facials", Location: "Nairobi", IsActive: true}
	return f
}

func (f *bookingFixture) createInput() CreateInput {
	return CreateInput{
		TherapistID:        "ther-1",
		TherapistProfileID: "prof-1",
		TreatmentType:      "Classic Facial",
		ScheduledDate:      time.Now().Add(72 * time.Hour).UnixMilli(),
		ScheduledTime:      "14:00",
		Duration:           60,
		Address:            "12 Riverside Drive",
		Price:              80,
		Currency:           "USD",
	}
}

func TestCreateBooking(t *testing.T) {
	f := newBookingFixture()
	caller := f.users.users["cust-1"]

	id, err := f.svc.Create(context.Background(), caller, f.createInput())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := f.bookings.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.BookingPending, stored.Status)
	assert.Equal(t, "cust-1", stored.CustomerID)
	assert.Equal(t, "Classic Facial", stored.TreatmentType)
	assert.Equal(t, 80.0, stored.Price)

	require.Len(t, f.notifier.dispatched, 1)
	n := f.notifier.dispatched[0]
	assert.Equal(t, "ther-1", n.UserID)
	assert.Equal(t, models.NotificationNewBooking, n.Type)
	assert.Equal(t, "New Booking Request", n.Title)
	assert.Equal(t, "You have a new booking request from Amina", n.Message)
	assert.Equal(t, id, n.RelatedID)
	assert.Equal(t, models.RelatedBooking, n.RelatedType)
}

func TestCreateBookingAnonymousName(t *testing.T) {
	f := newBookingFixture()
	caller := f.users.users["cust-1"]
	caller.Name = ""

	_, err := f.svc.Create(context.Background(), caller, f.createInput())
	require.NoError(t, err)

	require.Len(t, f.notifier.dispatched, 1)
	assert.Equal(t, "You have a new booking request from a customer", f.notifier.dispatched[0].Message)
}

func TestCreateBookingUnknownTherapist(t *testing.T) {
	f := newBookingFixture()
	caller := f.users.users["cust-1"]

	in := f.createInput()
	in.TherapistID = "missing"
	_, err := f.svc.Create(context.Background(), caller, in)
	assert.ErrorIs(t, err, ErrTherapistNotFound)

	in = f.createInput()
	in.TherapistProfileID = "missing"
	_, err = f.svc.Create(context.Background(), caller, in)
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestUpdateStatusAuthorization(t *testing.T) {
	f := newBookingFixture()
	caller := f.users.users["cust-1"]

	id, err := f.svc.Create(context.Background(), caller, f.createInput())
	require.NoError(t, err)

	stranger := models.User{ID: "someone-else", Role: models.RoleCustomer}
	err = f.svc.UpdateStatus(context.Background(), stranger, id, models.BookingConfirmed)
	assert.ErrorIs(t, err, ErrNotParticipant)

	stored, _ := f.bookings.GetByID(id)
	assert.Equal(t, models.BookingPending, stored.Status, "status must be untouched after a rejected update")
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	f := newBookingFixture()
	caller := f.users.users["cust-1"]

	err := f.svc.UpdateStatus(context.Background(), caller, "missing", models.BookingConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	f := newBookingFixture()
	caller := f.users.users["cust-1"]

	id, err := f.svc.Create(context.Background(), caller, f.createInput())
	require.NoError(t, err)

	err = f.svc.UpdateStatus(context.Background(), caller, id, models.BookingStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusNotifiesOtherParty(t *testing.T) {
	cases := []struct {
		status      models.BookingStatus
		wantMessage string
	}{
		{models.BookingConfirmed, "Your booking has been confirmed!"},
		{models.BookingCancelled, "Your booking has been cancelled."},
		{models.BookingCompleted, "Your booking has been completed."},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			f := newBookingFixture()
			customer := f.users.users["cust-1"]
			therapist := f.users.users["ther-1"]

			id, err := f.svc.Create(context.Background(), customer, f.createInput())
			require.NoError(t, err)
			f.notifier.dispatched = nil

			// Therapist updates: the customer is notified.
			require.NoError(t, f.svc.UpdateStatus(context.Background(), therapist, id, tc.status))
			require.Len(t, f.notifier.dispatched, 1)
			n := f.notifier.dispatched[0]
			assert.Equal(t, "cust-1", n.UserID)
			assert.Equal(t, models.NotificationStatusUpdate, n.Type)
			assert.Equal(t, "Booking Status Update", n.Title)
			assert.Equal(t, tc.wantMessage, n.Message)

			stored, _ := f.bookings.GetByID(id)
			assert.Equal(t, tc.status, stored.Status)
		})
	}
}

func TestUpdateStatusInProgressIsSilent(t *testing.T) {
	f := newBookingFixture()
	customer := f.users.users["cust-1"]
	therapist := f.users.users["ther-1"]

	id, err := f.svc.Create(context.Background(), customer, f.createInput())
	require.NoError(t, err)
	f.notifier.dispatched = nil

	require.NoError(t, f.svc.UpdateStatus(context.Background(), therapist, id, models.BookingInProgress))
	assert.Empty(t, f.notifier.dispatched)

	stored, _ := f.bookings.GetByID(id)
	assert.Equal(t, models.BookingInProgress, stored.Status)
}

func TestUpdateStatusByCustomerNotifiesTherapist(t *testing.T) {
	f := newBookingFixture()
	customer := f.users.users["cust-1"]

	id, err := f.svc.Create(context.Background(), customer, f.createInput())
	require.NoError(t, err)
	f.notifier.dispatched = nil

	require.NoError(t, f.svc.UpdateStatus(context.Background(), customer, id, models.BookingCancelled))
	require.Len(t, f.notifier.dispatched, 1)
	assert.Equal(t, "ther-1", f.notifier.dispatched[0].UserID)
}

func TestConfirmSchedulesReminder(t *testing.T) {
	f := newBookingFixture()
	customer := f.users.users["cust-1"]
	therapist := f.users.users["ther-1"]

	in := f.createInput()
	id, err := f.svc.Create(context.Background(), customer, in)
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), therapist, id, models.BookingConfirmed))

	fireAt, ok := f.scheduler.scheduled[id]
	require.True(t, ok, "a reminder must be scheduled on confirmation")
	assert.WithinDuration(t, time.UnixMilli(in.ScheduledDate).Add(-24*time.Hour), fireAt, time.Second)
}

func TestConfirmSkipsPastReminder(t *testing.T) {
	f := newBookingFixture()
	customer := f.users.users["cust-1"]
	therapist := f.users.users["ther-1"]

	in := f.createInput()
	in.ScheduledDate = time.Now().Add(2 * time.Hour).UnixMilli()
	id, err := f.svc.Create(context.Background(), customer, in)
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), therapist, id, models.BookingConfirmed))
	assert.Empty(t, f.scheduler.scheduled, "reminders in the past must not be scheduled")
}

func TestListForCustomerEnrichment(t *testing.T) {
	f := newBookingFixture()
	customer := f.users.users["cust-1"]

	in := f.createInput()
	id, err := f.svc.Create(context.Background(), customer, in)
	require.NoError(t, err)

	f.payments.byBooking[id] = models.Payment{
		ID:        "pay-1",
		BookingID: id,
		Amount:    80,
		Currency:  "usd",
		Status:    models.PaymentCompleted,
	}

	views, err := f.svc.ListForCustomer(context.Background(), "cust-1", nil)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	require.NotNil(t, v.Therapist)
	assert.Equal(t, "prof-1", v.Therapist.ID)
	assert.Equal(t, "Joy", v.Therapist.UserName)
	assert.Equal(t, "https://cdn.example.com/joy.jpg", v.Therapist.UserImage)
	require.NotNil(t, v.Payment)
	assert.Equal(t, "pay-1", v.Payment.ID)
	assert.Nil(t, v.Customer)
}

func TestListForTherapistEnrichment(t *testing.T) {
	f := newBookingFixture()
	customer := f.users.users["cust-1"]

	_, err := f.svc.Create(context.Background(), customer, f.createInput())
	require.NoError(t, err)

	views, err := f.svc.ListForTherapist(context.Background(), "ther-1", nil)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	require.NotNil(t, v.Customer)
	assert.Equal(t, "Amina", v.Customer.Name)
	assert.Equal(t, "amina@example.com", v.Customer.Email)
	assert.Nil(t, v.Therapist)
}

func TestListSortedAndFiltered(t *testing.T) {
	f := newBookingFixture()
	customer := f.users.users["cust-1"]
	therapist := f.users.users["ther-1"]

	early := f.createInput()
	early.ScheduledDate = time.Now().Add(48 * time.Hour).UnixMilli()
	earlyID, err := f.svc.Create(context.Background(), customer, early)
	require.NoError(t, err)

	late := f.createInput()
	late.ScheduledDate = time.Now().Add(96 * time.Hour).UnixMilli()
	lateID, err := f.svc.Create(context.Background(), customer, late)
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), therapist, earlyID, models.BookingConfirmed))

	views, err := f.svc.ListForCustomer(context.Background(), "cust-1", nil)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, lateID, views[0].ID, "newest scheduled date first")
	assert.Equal(t, earlyID, views[1].ID)

	confirmed := models.BookingConfirmed
	views, err = f.svc.ListForCustomer(context.Background(), "cust-1", &confirmed)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, earlyID, views[0].ID)
}

func TestListForUnknownCustomerIsEmpty(t *testing.T) {
	f := newBookingFixture()

	views, err := f.svc.ListForCustomer(context.Background(), "nobody", nil)
	require.NoError(t, err)
	assert.Empty(t, views)
}
