package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staffhub/internal/config"
	"staffhub/internal/model"
)

// IRoleRepository defines role persistence
type IRoleRepository interface {
	Create(ctx context.Context, role *model.Role) (*model.Role, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]*model.Role, error)
}

// RoleRepository implements role persistence
type RoleRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewRoleRepository(cfg *config.Config, db *mongo.Database) IRoleRepository {
	return &RoleRepository{cfg: cfg, collection: db.Collection("roles")}
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	now := time.Now()
	role.CreatedAt = now
	role.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, role)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		role.ID = oid
	}
	return role, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
	var role *model.Role
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&role)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role *model.Role
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&role)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return role, nil
}

func (r *RoleRepository) List(ctx context.Context) ([]*model.Role, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roles []*model.Role
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []*model.Role{}
	}
	return roles, nil
}
