package booking

import (
	"context"
	"fmt"
	"sort"

	"glowbook/models"
)

// ListForCustomer returns the customer's bookings enriched with therapist
// and payment info, sorted by scheduled date descending.
func (s *DefaultBookingService) ListForCustomer(ctx context.Context, customerID string, status *models.BookingStatus) ([]models.BookingView, error) {
	bookings, err := s.Repo.ListByCustomer(customerID, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	profileIDs := make([]string, 0, len(bookings))
	bookingIDs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		profileIDs = append(profileIDs, b.TherapistProfileID)
		bookingIDs = append(bookingIDs, b.ID)
	}

	profiles, err := s.Therapists.GetByIDs(profileIDs)
	if err != nil {
		return nil, fmt.Errorf("list bookings: failed to fetch therapist profiles: %w", err)
	}
	ownerIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ownerIDs = append(ownerIDs, p.UserID)
	}
	owners, err := s.Users.GetByIDs(ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("list bookings: failed to fetch therapist users: %w", err)
	}
	payments, err := s.Payments.GetByBookingIDs(bookingIDs)
	if err != nil {
		return nil, fmt.Errorf("list bookings: failed to fetch payments: %w", err)
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if p, ok := profiles[b.TherapistProfileID]; ok {
			tv := models.TherapistView{Therapist: p}
			if owner, ok := owners[p.UserID]; ok {
				tv.UserName = owner.Name
				tv.UserImage = owner.Image
			}
			view.Therapist = &tv
		}
		if pay, ok := payments[b.ID]; ok {
			payment := pay
			view.Payment = &payment
		}
		views = append(views, view)
	}

	sortByScheduledDateDesc(views)
	return views, nil
}

// ListForTherapist returns the therapist's bookings enriched with customer
// and payment info, sorted by scheduled date descending.
func (s *DefaultBookingService) ListForTherapist(ctx context.Context, therapistID string, status *models.BookingStatus) ([]models.BookingView, error) {
	bookings, err := s.Repo.ListByTherapist(therapistID, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	customerIDs := make([]string, 0, len(bookings))
	bookingIDs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		customerIDs = append(customerIDs, b.CustomerID)
		bookingIDs = append(bookingIDs, b.ID)
	}

	customers, err := s.Users.GetByIDs(customerIDs)
	if err != nil {
		return nil, fmt.Errorf("list bookings: failed to fetch customers: %w", err)
	}
	payments, err := s.Payments.GetByBookingIDs(bookingIDs)
	if err != nil {
		return nil, fmt.Errorf("list bookings: failed to fetch payments: %w", err)
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if c, ok := customers[b.CustomerID]; ok {
			view.Customer = &models.CustomerSummary{
				Name:  c.Name,
				Email: c.Email,
				Phone: c.Phone,
				Image: c.Image,
			}
		}
		if pay, ok := payments[b.ID]; ok {
			payment := pay
			view.Payment = &payment
		}
		views = append(views, view)
	}

	sortByScheduledDateDesc(views)
	return views, nil
}

func sortByScheduledDateDesc(views []models.BookingView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].ScheduledDate > views[j].ScheduledDate
	})
}
