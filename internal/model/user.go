package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a staff member account.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Role       primitive.ObjectID `bson:"role" json:"role"`
	Department primitive.ObjectID `bson:"department" json:"department"`
	RefNo      string             `bson:"refNo,omitempty" json:"refNo,omitempty"`
	Firstname  string             `bson:"firstname" json:"firstname"`
	Lastname   string             `bson:"lastname" json:"lastname"`
	NIC        string             `bson:"nic" json:"nic"`
	Email      string             `bson:"email" json:"email"`
	Mobile     string             `bson:"mobile" json:"mobile"`
	ImageURL   string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Password   string             `bson:"password" json:"-"`
	Active     bool               `bson:"active" json:"active"`
	Archived   bool               `bson:"archived" json:"archived"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserFilter enumerates the recognized lookup keys for single-user
// queries. Zero-valued fields are not applied.
type UserFilter struct {
	ID    *primitive.ObjectID
	Email string
	RefNo string
	NIC   string
}

// UserUpdate carries a partial-field update. Only non-nil fields are
// written ($set semantics); everything else is left untouched.
type UserUpdate struct {
	Role       *primitive.ObjectID
	Department *primitive.ObjectID
	RefNo      *string
	Firstname  *string
	Lastname   *string
	NIC        *string
	Email      *string
	Mobile     *string
	ImageURL   *string
	Password   *string
	Active     *bool
	Archived   *bool
}

// UserListItem is the projected record shape returned by the paged user
// listing, with the department and role names joined in.
type UserListItem struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	RefNo      string             `bson:"refNo,omitempty" json:"refNo,omitempty"`
	Firstname  string             `bson:"firstname" json:"firstname"`
	Lastname   string             `bson:"lastname" json:"lastname"`
	Email      string             `bson:"email" json:"email"`
	Mobile     string             `bson:"mobile" json:"mobile"`
	NIC        string             `bson:"nic" json:"nic"`
	ImageURL   string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active     bool               `bson:"active" json:"active"`
	Role       *NameRef           `bson:"role,omitempty" json:"role,omitempty"`
	Department *NameRef           `bson:"department,omitempty" json:"department,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NameRef is the name-only projection of a joined reference. A nil
// NameRef means the referenced record did not exist; the lookup is
// null-preserving so the owning record is still returned.
type NameRef struct {
	Name string `bson:"name" json:"name"`
}

// LoggedUserView is the denormalized single-record projection for the
// authenticated user, with the role name joined and a display name
// synthesized from the first and last names.
type LoggedUserView struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	RefNo     string             `bson:"refNo,omitempty" json:"refNo,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Mobile    string             `bson:"mobile" json:"mobile"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	Role      *NameRef           `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
