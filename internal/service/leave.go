package service

import (
	"context"

	"staffhub/internal/config"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperr"
	"staffhub/pkg/util"
)

// LeaveService handles leave-request business logic
type LeaveService struct {
	repo repository.ILeaveRepository
	cfg  *config.Config
}

// NewLeaveService creates a new leave service
func NewLeaveService(cfg *config.Config, repo repository.ILeaveRepository) *LeaveService {
	return &LeaveService{repo: repo, cfg: cfg}
}

// Create stamps the authenticated actor as the requester and delegates.
func (s *LeaveService) Create(ctx context.Context, leave *model.LeaveRequest, actorID string) (*model.LeaveRequest, error) {
	oid, err := util.ParseObjectID(actorID)
	if err != nil {
		return nil, err
	}
	leave.CreatedBy = oid

	if leave.Category != "" && !model.ValidLeaveCategory(leave.Category) {
		return nil, apperr.NewValidationError("unknown leave category %q", leave.Category)
	}
	return s.repo.Create(ctx, leave)
}

// UpdateStatus changes the workflow state of the addressed request.
// Both arguments must be present; the repository fails with ErrNotFound
// when no record matches the id.
func (s *LeaveService) UpdateStatus(ctx context.Context, id string, status model.LeaveStatus) (*model.LeaveRequest, error) {
	if id == "" || status == "" {
		return nil, apperr.ErrMissingArgument
	}
	if !model.ValidLeaveStatus(status) {
		return nil, apperr.NewValidationError("unknown leave status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// ListPaged returns one page of the leave listing plus the total count.
func (s *LeaveService) ListPaged(ctx context.Context, query model.LeaveListQuery) (*model.PagedResult[model.LeaveRequest], error) {
	return s.repo.ListPaged(ctx, query)
}

// MonthlySummary returns the teacher's per-category counts for the
// current month. Callers always get a summary: a teacher with no
// records this month gets the zero-filled default.
func (s *LeaveService) MonthlySummary(ctx context.Context, teacher string) (*model.LeaveSummary, error) {
	summary, err := s.repo.MonthlySummary(ctx, teacher)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		summary = &model.LeaveSummary{}
	}
	return summary, nil
}
