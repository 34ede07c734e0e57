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
	"staffhub/pkg/apperr"
	"staffhub/pkg/util"
)

// ILeaveRepository defines leave-request persistence
type ILeaveRepository interface {
	Create(ctx context.Context, leave *model.LeaveRequest) (*model.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status model.LeaveStatus) (*model.LeaveRequest, error)
	ListPaged(ctx context.Context, query model.LeaveListQuery) (*model.PagedResult[model.LeaveRequest], error)
	MonthlySummary(ctx context.Context, teacher string) (*model.LeaveSummary, error)
}

// LeaveRepository implements leave-request persistence
type LeaveRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	refNo      IRefNoGenerator
}

func NewLeaveRepository(cfg *config.Config, db *mongo.Database, refNo IRefNoGenerator) ILeaveRepository {
	return &LeaveRepository{cfg: cfg, collection: db.Collection("leaves"), refNo: refNo}
}

// Create inserts a leave request. A missing reference number is
// assigned from the generator; a supplied one is preserved unchanged.
// Assignment happens exactly once, at creation.
func (r *LeaveRepository) Create(ctx context.Context, leave *model.LeaveRequest) (*model.LeaveRequest, error) {
	if leave.RefNo == "" {
		refNo, err := r.refNo.Next(ctx)
		if err != nil {
			return nil, err
		}
		leave.RefNo = refNo
	}
	if leave.Status == "" {
		leave.Status = model.LeaveStatusPending
	}

	now := time.Now()
	leave.CreatedAt = now
	leave.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, leave)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		leave.ID = oid
	}
	return leave, nil
}

// UpdateStatus replaces only the status field of the addressed request.
// The update surface is deliberately this narrow: status is the single
// field callers may change after creation.
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id string, status model.LeaveStatus) (*model.LeaveRequest, error) {
	oid, err := util.ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var leave *model.LeaveRequest
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		opts,
	).Decode(&leave)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return leave, nil
}

// buildLeaveListPipeline builds the paged leave listing aggregation.
// Same shape as the user listing: archived excluded, searchable text
// synthesized then stripped, discrete status and category filters, one
// facet for page plus total.
func buildLeaveListPipeline(q model.LeaveListQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"archived": false}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":            1,
			"refNo":          1,
			"teacherName":    1,
			"category":       1,
			"designation":    1,
			"type":           1,
			"fromDate":       1,
			"toDate":         1,
			"leaveDays":      1,
			"reason":         1,
			"reliefAssignee": 1,
			"status":         1,
			"createdBy":      1,
			"createdAt":      1,
			"updatedAt":      1,
			"text": searchableText(
				"refNo", "teacherName", "category", "type", "reason", "reliefAssignee",
			),
		}}},
	}

	match := bson.M{}
	if q.Filters.SearchTerm != "" {
		match["text"] = bson.M{"$regex": q.Filters.SearchTerm, "$options": "i"}
	}
	if q.Filters.Status != "" {
		match["status"] = q.Filters.Status
	}
	if q.Filters.Category != "" {
		match["category"] = q.Filters.Category
	}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$project", Value: bson.M{"text": 0}}},
		sortStage(q.ListQuery),
		facetStage(q.ListQuery),
	)
	return pipeline
}

func (r *LeaveRepository) ListPaged(ctx context.Context, query model.LeaveListQuery) (*model.PagedResult[model.LeaveRequest], error) {
	query.ListQuery = normalizeListQuery(query.ListQuery)

	cursor, err := r.collection.Aggregate(ctx, buildLeaveListPipeline(query))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []facetResult[model.LeaveRequest]
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &model.PagedResult[model.LeaveRequest]{Records: []model.LeaveRequest{}}, nil
	}
	return toPagedResult(results[0]), nil
}

// monthBounds returns the first instant of now's calendar month and the
// last instant (23:59:59.999 on the last day), in now's location.
func monthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 999*int(time.Millisecond), now.Location())
	return start, end
}

// buildMonthlySummaryPipeline groups the teacher's requests created in
// [start, end] by category, then reshapes the groups into the three
// fixed counters.
func buildMonthlySummaryPipeline(teacher string, start, end time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"teacherName": teacher,
			"createdAt":   bson.M{"$gte": start, "$lte": end},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"sick":   categoryCounter(model.LeaveCategorySick),
			"casual": categoryCounter(model.LeaveCategoryCasual),
			"earned": categoryCounter(model.LeaveCategoryEarned),
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":    0,
			"sick":   1,
			"casual": 1,
			"earned": 1,
		}}},
	}
}

// categoryCounter sums the per-category count into a named counter,
// contributing zero for every other category.
func categoryCounter(category model.LeaveCategory) bson.M {
	return bson.M{"$sum": bson.M{
		"$cond": bson.A{bson.M{"$eq": bson.A{"$_id", string(category)}}, "$count", 0},
	}}
}

// MonthlySummary returns the per-category counts of the teacher's
// requests created this calendar month, or nil when there are none.
func (r *LeaveRepository) MonthlySummary(ctx context.Context, teacher string) (*model.LeaveSummary, error) {
	start, end := monthBounds(time.Now())

	cursor, err := r.collection.Aggregate(ctx, buildMonthlySummaryPipeline(teacher, start, end))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []model.LeaveSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, nil
	}
	return &summaries[0], nil
}
