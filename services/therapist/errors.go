package therapist

import "errors"

// ErrProfileNotFound signals a lookup for a missing therapist profile.
var ErrProfileNotFound = errors.New("therapist profile not found")
