package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staffhub/internal/config"
	"staffhub/internal/model"
	"staffhub/pkg/apperr"
	"staffhub/pkg/util"
)

var validate = validator.New()

// IUserRepository defines user persistence
type IUserRepository interface {
	FindOne(ctx context.Context, filter model.UserFilter) (*model.User, error)
	FindLatest(ctx context.Context, filter model.UserFilter) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	UpdateOne(ctx context.Context, filter model.UserFilter, update model.UserUpdate) (*model.User, error)
	ListPaged(ctx context.Context, query model.UserListQuery) (*model.PagedResult[model.UserListItem], error)
	LoggedUserView(ctx context.Context, id string) (*model.LoggedUserView, error)
	EnsureIndexes(ctx context.Context) error
}

// UserRepository implements user persistence
type UserRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewUserRepository(cfg *config.Config, db *mongo.Database) IUserRepository {
	return &UserRepository{cfg: cfg, collection: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. The index uses strength-2
// collation so uniqueness holds case-insensitively even if a caller
// bypasses email normalization.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	if err != nil {
		return fmt.Errorf("failed to ensure user indexes: %w", err)
	}
	return nil
}

func userFilterToBson(f model.UserFilter) bson.M {
	filter := bson.M{}
	if f.ID != nil {
		filter["_id"] = *f.ID
	}
	if f.Email != "" {
		filter["email"] = util.NormalizeEmail(f.Email)
	}
	if f.RefNo != "" {
		filter["refNo"] = f.RefNo
	}
	if f.NIC != "" {
		filter["nic"] = f.NIC
	}
	return filter
}

func (r *UserRepository) FindOne(ctx context.Context, filter model.UserFilter) (*model.User, error) {
	var user *model.User
	err := r.collection.FindOne(ctx, userFilterToBson(filter)).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// FindLatest returns the most recently created user matching the filter.
func (r *UserRepository) FindLatest(ctx context.Context, filter model.UserFilter) (*model.User, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var user *model.User
	err := r.collection.FindOne(ctx, userFilterToBson(filter), opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// validateNewUser enforces the schema-level required fields and the
// email format.
func validateNewUser(u *model.User) error {
	switch {
	case u.Firstname == "":
		return apperr.NewValidationError("First name is required")
	case u.Lastname == "":
		return apperr.NewValidationError("Last name is required")
	case u.Role.IsZero():
		return apperr.NewValidationError("Role is required")
	case u.Department.IsZero():
		return apperr.NewValidationError("Department is required")
	case u.NIC == "":
		return apperr.NewValidationError("NIC number is required")
	case u.Mobile == "":
		return apperr.NewValidationError("Mobile is required")
	case u.Password == "":
		return apperr.NewValidationError("Password is required")
	}
	if err := validate.Var(u.Email, "required,email"); err != nil {
		return apperr.NewValidationError("Invalid Email")
	}
	return nil
}

// Create inserts a new user. The password is replaced with its salted
// hash before the write; the plaintext never reaches the store.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := validateNewUser(user); err != nil {
		return nil, err
	}
	hash, err := util.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash
	user.Email = util.NormalizeEmail(user.Email)

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &apperr.DuplicateKeyError{Field: "email"}
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// UpdateOne merge-updates a user: only the fields set on update are
// written. A password in the update set is checked against the policy
// before hashing; on violation no store call is made.
func (r *UserRepository) UpdateOne(ctx context.Context, filter model.UserFilter, update model.UserUpdate) (*model.User, error) {
	set := bson.M{}
	if update.Password != nil {
		if !util.ValidatePassword(*update.Password) {
			return nil, &apperr.WeakPasswordError{}
		}
		hash, err := util.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		set["password"] = hash
	}
	if update.Email != nil {
		if err := validate.Var(*update.Email, "required,email"); err != nil {
			return nil, apperr.NewValidationError("Invalid Email")
		}
		set["email"] = util.NormalizeEmail(*update.Email)
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}
	if update.RefNo != nil {
		set["refNo"] = *update.RefNo
	}
	if update.Firstname != nil {
		set["firstname"] = *update.Firstname
	}
	if update.Lastname != nil {
		set["lastname"] = *update.Lastname
	}
	if update.NIC != nil {
		set["nic"] = *update.NIC
	}
	if update.Mobile != nil {
		set["mobile"] = *update.Mobile
	}
	if update.ImageURL != nil {
		set["imageUrl"] = *update.ImageURL
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}
	if update.Archived != nil {
		set["archived"] = *update.Archived
	}
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user *model.User
	err := r.collection.FindOneAndUpdate(ctx, userFilterToBson(filter), bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, &apperr.DuplicateKeyError{Field: "email"}
		}
		return nil, err
	}
	return user, nil
}

// buildUserListPipeline builds the paged user listing aggregation:
// archived records excluded, departments and roles joined left-outer,
// a query-only searchable text synthesized for the search match and
// stripped from the output, then one facet computing the page slice and
// the pre-pagination total from the same filtered set.
func buildUserListPipeline(q model.UserListQuery, departmentID *primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"archived": false}}},
	}
	pipeline = append(pipeline, lookupStage("departments", "department")...)
	pipeline = append(pipeline, lookupStage("roles", "role")...)

	secondary := bson.M{}
	if q.Filters.Active != nil {
		secondary["active"] = *q.Filters.Active
	}
	if departmentID != nil {
		secondary["department._id"] = *departmentID
	}
	if len(secondary) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: secondary}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"_id":        1,
		"refNo":      1,
		"firstname":  1,
		"lastname":   1,
		"email":      1,
		"mobile":     1,
		"nic":        1,
		"imageUrl":   1,
		"active":     1,
		"createdAt":  1,
		"updatedAt":  1,
		"role":       bson.M{"name": 1},
		"department": bson.M{"name": 1},
		"text": searchableText(
			"refNo", "firstname", "lastname", "email", "mobile", "department.name",
		),
	}}})

	if q.Filters.SearchTerm != "" {
		pipeline = append(pipeline, searchMatchStage(q.Filters.SearchTerm))
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$project", Value: bson.M{"text": 0}}},
		sortStage(q.ListQuery),
		facetStage(q.ListQuery),
	)
	return pipeline
}

func (r *UserRepository) ListPaged(ctx context.Context, query model.UserListQuery) (*model.PagedResult[model.UserListItem], error) {
	query.ListQuery = normalizeListQuery(query.ListQuery)

	var departmentID *primitive.ObjectID
	if query.Filters.Department != "" {
		oid, err := util.ParseObjectID(query.Filters.Department)
		if err != nil {
			return nil, err
		}
		departmentID = &oid
	}

	cursor, err := r.collection.Aggregate(ctx, buildUserListPipeline(query, departmentID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []facetResult[model.UserListItem]
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &model.PagedResult[model.UserListItem]{Records: []model.UserListItem{}}, nil
	}
	return toPagedResult(results[0]), nil
}

// buildLoggedUserPipeline builds the single-record projection for the
// authenticated user: role name joined, display name synthesized from
// the first and last names, missing parts becoming empty strings.
func buildLoggedUserPipeline(id primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, lookupStage("roles", "role")...)
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"_id":       1,
		"refNo":     1,
		"name":      searchableText("firstname", "lastname"),
		"email":     1,
		"mobile":    1,
		"imageUrl":  1,
		"active":    1,
		"createdAt": 1,
		"updatedAt": 1,
		"role":      bson.M{"name": 1},
	}}})
	return pipeline
}

func (r *UserRepository) LoggedUserView(ctx context.Context, id string) (*model.LoggedUserView, error) {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	cursor, err := r.collection.Aggregate(ctx, buildLoggedUserPipeline(oid))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var views []model.LoggedUserView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}
