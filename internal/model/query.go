package model

// Sort directions for listing queries.
const (
	SortAsc  = 1
	SortDesc = -1
)

// ListQuery carries pagination and sorting for the paged listings.
// PageIndex is one-indexed: page 1 is the first page and the skip is
// (PageIndex-1)*PageSize. Repositories clamp PageIndex to at least 1
// and PageSize to the configured maximum.
type ListQuery struct {
	PageIndex int    `json:"pageIndex"`
	PageSize  int    `json:"pageSize"`
	SortField string `json:"sortField,omitempty"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

// UserListFilters enumerates the recognized filters of the paged user
// listing. Zero values mean "not applied".
type UserListFilters struct {
	// SearchTerm matches case-insensitively against the synthesized
	// searchable text (refNo, names, email, mobile, department name).
	SearchTerm string `json:"searchTerm,omitempty"`
	// Active filters on the active flag when non-nil.
	Active *bool `json:"status,omitempty"`
	// Department is the hex id of the department to match exactly.
	Department string `json:"depart,omitempty"`
}

// UserListQuery is the full input of the paged user listing.
type UserListQuery struct {
	ListQuery
	Filters UserListFilters `json:"filters"`
}

// LeaveListFilters enumerates the recognized filters of the paged leave
// listing.
type LeaveListFilters struct {
	// SearchTerm matches case-insensitively against the synthesized
	// searchable text (refNo, teacher name, category, type, reason,
	// relief assignee).
	SearchTerm string `json:"searchTerm,omitempty"`
	// Status filters on the workflow state when non-empty.
	Status LeaveStatus `json:"status,omitempty"`
	// Category filters on the leave category when non-empty.
	Category LeaveCategory `json:"category,omitempty"`
}

// LeaveListQuery is the full input of the paged leave listing.
type LeaveListQuery struct {
	ListQuery
	Filters LeaveListFilters `json:"filters"`
}

// PagedResult is the output of a paged listing: one page of records and
// the total count of all records matching the filters, independent of
// pagination.
type PagedResult[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
}
