package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staffhub/internal/middleware"
	"staffhub/internal/model"
	"staffhub/internal/service"
)

// LeaveHandler handles leave-request HTTP requests
type LeaveHandler struct {
	leaveService *service.LeaveService
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

type createLeaveRequest struct {
	RefNo          string    `json:"refNo"`
	TeacherName    string    `json:"teacherName" binding:"required"`
	Category       string    `json:"category" binding:"required"`
	Designation    string    `json:"designation"`
	Type           string    `json:"type"`
	FromDate       time.Time `json:"fromDate" binding:"required"`
	ToDate         time.Time `json:"toDate" binding:"required"`
	LeaveDays      float64   `json:"leaveDays"`
	Reason         string    `json:"reason"`
	ReliefAssignee string    `json:"reliefAssignee"`
}

// Create handles POST /leaves
func (h *LeaveHandler) Create(c *gin.Context) {
	var req createLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	leave, err := h.leaveService.Create(c.Request.Context(), &model.LeaveRequest{
		RefNo:          req.RefNo,
		TeacherName:    req.TeacherName,
		Category:       model.LeaveCategory(req.Category),
		Designation:    req.Designation,
		Type:           req.Type,
		FromDate:       req.FromDate,
		ToDate:         req.ToDate,
		LeaveDays:      req.LeaveDays,
		Reason:         req.Reason,
		ReliefAssignee: req.ReliefAssignee,
	}, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Leave request created", leave))
}

type updateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /leaves/:id/status
func (h *LeaveHandler) UpdateStatus(c *gin.Context) {
	var req updateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	leave, err := h.leaveService.UpdateStatus(c.Request.Context(), c.Param("id"), model.LeaveStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Leave status updated", leave))
}

// Query handles POST /leaves/query (paged listing)
func (h *LeaveHandler) Query(c *gin.Context) {
	var query model.LeaveListQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	result, err := h.leaveService.ListPaged(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Summary handles GET /leaves/summary/:teacher
func (h *LeaveHandler) Summary(c *gin.Context) {
	summary, err := h.leaveService.MonthlySummary(c.Request.Context(), c.Param("teacher"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
