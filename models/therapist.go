package models

import "time"

// PriceRange is the advertised price band for a therapist's treatments.
type PriceRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// DayAvailability lists the bookable time slots for one weekday,
// e.g. {Day: "monday", Slots: ["09:00", "10:00"]}.
type DayAvailability struct {
	Day   string   `bson:"day" json:"day"`
	Slots []string `bson:"slots" json:"slots"`
}

// Therapist is the service-provider profile, 1:1 with a User of role therapist.
type Therapist struct {
	ID             string            `bson:"id" json:"id"`
	UserID         string            `bson:"user_id" json:"userId"`
	Specialty      string            `bson:"specialty" json:"specialty"`
	Bio            string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Experience     string            `bson:"experience" json:"experience"`
	Certifications []string          `bson:"certifications,omitempty" json:"certifications,omitempty"`
	Location       string            `bson:"location" json:"location"`
	ServiceArea    []string          `bson:"service_area" json:"serviceArea"`
	Rating         float64           `bson:"rating" json:"rating"`
	ReviewCount    int64             `bson:"review_count" json:"reviewCount"`
	PriceRange     PriceRange        `bson:"price_range" json:"priceRange"`
	Availability   []DayAvailability `bson:"availability,omitempty" json:"availability,omitempty"`
	IsActive       bool              `bson:"is_active" json:"isActive"`
	CreatedAt      time.Time         `bson:"created_at" json:"createdAt"`
}

// TherapistView is a Therapist enriched with display fields of the owning user.
type TherapistView struct {
	Therapist
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	UserPhone string `json:"userPhone,omitempty"`
	UserImage string `json:"userImage,omitempty"`
}
