package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"staffhub/internal/config"
	"staffhub/internal/model"
)

// IPasswordResetRepository defines password-reset token persistence.
// Tokens are single-use: Consume removes the token as it is read.
type IPasswordResetRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) (*model.PasswordResetToken, error)
	FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error)
	Consume(ctx context.Context, token string) (*model.PasswordResetToken, error)
}

// PasswordResetRepository implements password-reset token persistence
type PasswordResetRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewPasswordResetRepository(cfg *config.Config, db *mongo.Database) IPasswordResetRepository {
	return &PasswordResetRepository{cfg: cfg, collection: db.Collection("password_resets")}
}

// Create inserts a reset token. Callers running inside a transaction
// pass a session-bound ctx (mongo.NewSessionContext); the write then
// joins that session.
func (r *PasswordResetRepository) Create(ctx context.Context, token *model.PasswordResetToken) (*model.PasswordResetToken, error) {
	token.CreatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, token)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		token.ID = oid
	}
	return token, nil
}

func (r *PasswordResetRepository) FindByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	var record *model.PasswordResetToken
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// Consume removes the token and returns it, or nil when no such token
// exists. Find and delete are one findAndModify, so two concurrent
// consumers cannot both succeed.
func (r *PasswordResetRepository) Consume(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	var record *model.PasswordResetToken
	err := r.collection.FindOneAndDelete(ctx, bson.M{"token": token}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}
