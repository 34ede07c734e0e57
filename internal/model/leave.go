package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveCategory enumerates the leave categories tracked by the monthly
// summary.
type LeaveCategory string

const (
	LeaveCategorySick   LeaveCategory = "SICK"
	LeaveCategoryCasual LeaveCategory = "CASUAL"
	LeaveCategoryEarned LeaveCategory = "EARNED"
)

// ValidLeaveCategory reports whether c is a known category.
func ValidLeaveCategory(c LeaveCategory) bool {
	switch c {
	case LeaveCategorySick, LeaveCategoryCasual, LeaveCategoryEarned:
		return true
	}
	return false
}

// LeaveStatus is the workflow state of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// ValidLeaveStatus reports whether s is a known workflow state.
func ValidLeaveStatus(s LeaveStatus) bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

// LeaveRequest represents one leave application submitted by or for a
// teacher.
type LeaveRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RefNo          string             `bson:"refNo" json:"refNo"`
	TeacherName    string             `bson:"teacherName" json:"teacherName"`
	Category       LeaveCategory      `bson:"category" json:"category"`
	Designation    string             `bson:"designation" json:"designation"`
	Type           string             `bson:"type" json:"type"`
	FromDate       time.Time          `bson:"fromDate" json:"fromDate"`
	ToDate         time.Time          `bson:"toDate" json:"toDate"`
	LeaveDays      float64            `bson:"leaveDays" json:"leaveDays"`
	Reason         string             `bson:"reason" json:"reason"`
	ReliefAssignee string             `bson:"reliefAssignee" json:"reliefAssignee"`
	Status         LeaveStatus        `bson:"status" json:"status"`
	CreatedBy      primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	Archived       bool               `bson:"archived" json:"archived"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LeaveSummary holds the per-category counts of a teacher's leave
// requests for the current calendar month. Categories with no records
// in the period stay zero.
type LeaveSummary struct {
	Sick   int `bson:"sick" json:"sick"`
	Casual int `bson:"casual" json:"casual"`
	Earned int `bson:"earned" json:"earned"`
}
