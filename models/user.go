package models

import "time"

// User roles.
const (
	RoleCustomer  = "customer"
	RoleTherapist = "therapist"
)

// User represents a platform account. Customers and therapists share the
// same record; the role is promoted to therapist when a profile is submitted.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Email            string    `bson:"email" json:"email"`
	PasswordHash     string    `bson:"password_hash" json:"-"`
	Name             string    `bson:"name" json:"name"`
	Phone            string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Image            string    `bson:"image,omitempty" json:"image,omitempty"`
	Role             string    `bson:"role" json:"role"`
	FCMToken         string    `bson:"fcm_token,omitempty" json:"-"`
	StripeCustomerID string    `bson:"stripe_customer_id,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}
