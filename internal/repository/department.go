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

// IDepartmentRepository defines department persistence
type IDepartmentRepository interface {
	Create(ctx context.Context, dep *model.Department) (*model.Department, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Department, error)
	FindByName(ctx context.Context, name string) (*model.Department, error)
	List(ctx context.Context) ([]*model.Department, error)
}

// DepartmentRepository implements department persistence
type DepartmentRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewDepartmentRepository(cfg *config.Config, db *mongo.Database) IDepartmentRepository {
	return &DepartmentRepository{cfg: cfg, collection: db.Collection("departments")}
}

func (r *DepartmentRepository) Create(ctx context.Context, dep *model.Department) (*model.Department, error) {
	now := time.Now()
	dep.CreatedAt = now
	dep.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, dep)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		dep.ID = oid
	}
	return dep, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Department, error) {
	var dep *model.Department
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&dep)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return dep, nil
}

func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*model.Department, error) {
	var dep *model.Department
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&dep)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return dep, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*model.Department, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deps []*model.Department
	if err := cursor.All(ctx, &deps); err != nil {
		return nil, err
	}
	if deps == nil {
		deps = []*model.Department{}
	}
	return deps, nil
}
