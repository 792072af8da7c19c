package models

// CustomerSummary carries the customer display fields attached to a
// therapist's booking list.
type CustomerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Image string `json:"image,omitempty"`
}

// BookingView is a Booking enriched for presentation. Therapist is set on
// the customer-facing list, Customer on the therapist-facing list; Payment
// is attached on both when one exists.
type BookingView struct {
	Booking
	Therapist *TherapistView   `json:"therapist,omitempty"`
	Customer  *CustomerSummary `json:"customer,omitempty"`
	Payment   *Payment         `json:"payment,omitempty"`
}
