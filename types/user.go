package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values accepted for a user or a dedication receiver.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User represents a registrant of the birthday dedication service.
// One document per registration; duplicates by email or phone are allowed.
type User struct {
	// ID is the store-generated identifier of the record. Immutable.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Name is the registrant's display name.
	Name string `json:"name" bson:"name"`

	// Phone is a 10-digit mobile number starting with 6-9.
	Phone string `json:"phone" bson:"phone"`

	// Email is the registrant's email address. Not unique.
	Email string `json:"email" bson:"email"`

	// Gender is one of "male", "female" or "other". Optional at
	// registration; overwritten by the lyrics route.
	Gender string `json:"gender,omitempty" bson:"gender,omitempty"`

	// Genre is the preferred song genre, e.g. pop, rock, soft.
	Genre string `json:"genre,omitempty" bson:"genre,omitempty"`

	// CreatedAt is the timestamp when the record was inserted.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// Lyrics holds the most recently generated lyrics for this user.
	Lyrics string `json:"lyrics,omitempty" bson:"lyrics,omitempty"`

	// TTSURL points at the archived audio rendition of the lyrics,
	// set only when object storage is configured.
	TTSURL string `json:"ttsUrl,omitempty" bson:"ttsUrl,omitempty"`
}

// ValidGender reports whether g is one of the accepted gender values.
func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
