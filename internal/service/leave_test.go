package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"staffhub/internal/config"
	"staffhub/internal/model"
	"staffhub/pkg/apperr"
)

// fakeLeaveRepo is an in-memory ILeaveRepository.
type fakeLeaveRepo struct {
	created   []*model.LeaveRequest
	byID      map[string]*model.LeaveRequest
	summary   *model.LeaveSummary
	refNoSeq  int
	lastQuery model.LeaveListQuery
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{byID: map[string]*model.LeaveRequest{}}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, leave *model.LeaveRequest) (*model.LeaveRequest, error) {
	if leave.RefNo == "" {
		f.refNoSeq++
		leave.RefNo = fmt.Sprintf("LVE-%05d", f.refNoSeq)
	}
	leave.ID = primitive.NewObjectID()
	f.created = append(f.created, leave)
	f.byID[leave.ID.Hex()] = leave
	return leave, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status model.LeaveStatus) (*model.LeaveRequest, error) {
	leave, ok := f.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	leave.Status = status
	return leave, nil
}

func (f *fakeLeaveRepo) ListPaged(ctx context.Context, query model.LeaveListQuery) (*model.PagedResult[model.LeaveRequest], error) {
	f.lastQuery = query
	return &model.PagedResult[model.LeaveRequest]{Records: []model.LeaveRequest{}}, nil
}

func (f *fakeLeaveRepo) MonthlySummary(ctx context.Context, teacher string) (*model.LeaveSummary, error) {
	return f.summary, nil
}

func newLeaveService(repo *fakeLeaveRepo) *LeaveService {
	return NewLeaveService(config.New(), repo)
}

func TestLeaveCreateStampsActor(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	actor := primitive.NewObjectID()

	leave, err := svc.Create(context.Background(), &model.LeaveRequest{
		TeacherName: "A. Perera",
		Category:    model.LeaveCategorySick,
	}, actor.Hex())
	require.NoError(t, err)
	assert.Equal(t, actor, leave.CreatedBy, "requester id comes from the authenticated actor")
	assert.NotEmpty(t, leave.RefNo)
}

func TestLeaveCreatePreservesSuppliedRefNo(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)

	leave, err := svc.Create(context.Background(), &model.LeaveRequest{
		RefNo:    "CUSTOM-042",
		Category: model.LeaveCategoryEarned,
	}, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM-042", leave.RefNo)
}

func TestLeaveCreateRejectsMalformedActor(t *testing.T) {
	svc := newLeaveService(newFakeLeaveRepo())
	_, err := svc.Create(context.Background(), &model.LeaveRequest{}, "bogus")
	assert.True(t, apperr.IsInvalidIdentifier(err))
}

func TestLeaveCreateRejectsUnknownCategory(t *testing.T) {
	svc := newLeaveService(newFakeLeaveRepo())
	_, err := svc.Create(context.Background(), &model.LeaveRequest{
		Category: "SABBATICAL",
	}, primitive.NewObjectID().Hex())
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestLeaveUpdateStatusRequiresArguments(t *testing.T) {
	svc := newLeaveService(newFakeLeaveRepo())

	_, err := svc.UpdateStatus(context.Background(), "", model.LeaveStatusApproved)
	assert.ErrorIs(t, err, apperr.ErrMissingArgument)

	_, err = svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), "")
	assert.ErrorIs(t, err, apperr.ErrMissingArgument)
}

func TestLeaveUpdateStatusUnknownState(t *testing.T) {
	svc := newLeaveService(newFakeLeaveRepo())
	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), "maybe")
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestLeaveUpdateStatusNotFound(t *testing.T) {
	svc := newLeaveService(newFakeLeaveRepo())
	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), model.LeaveStatusRejected)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLeaveUpdateStatus(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)

	created, err := svc.Create(context.Background(), &model.LeaveRequest{
		Category: model.LeaveCategoryCasual,
	}, primitive.NewObjectID().Hex())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID.Hex(), model.LeaveStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusApproved, updated.Status)
}

func TestMonthlySummaryZeroFill(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)

	// No rows for the period: callers still get a summary.
	summary, err := svc.MonthlySummary(context.Background(), "A. Perera")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, &model.LeaveSummary{}, summary)

	repo.summary = &model.LeaveSummary{Sick: 1, Casual: 1}
	summary, err = svc.MonthlySummary(context.Background(), "A. Perera")
	require.NoError(t, err)
	assert.Equal(t, &model.LeaveSummary{Sick: 1, Casual: 1, Earned: 0}, summary)
}
