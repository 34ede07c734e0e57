package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PasswordResetToken is an ephemeral single-use token gating a password
// reset. It is deleted when consumed; expiry is enforced by callers,
// not at this layer.
type PasswordResetToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Token     string             `bson:"token" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
