package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"staffhub/internal/model"
	"staffhub/pkg/apperr"
)

type failingRefNo struct{}

func (failingRefNo) Next(ctx context.Context) (string, error) {
	return "", errors.New("counter unavailable")
}

// A missing reference number is drawn from the generator before the
// insert; a generator failure fails the create.
func TestCreateAssignsRefNoBeforeInsert(t *testing.T) {
	r := &LeaveRepository{refNo: failingRefNo{}}
	_, err := r.Create(context.Background(), &model.LeaveRequest{})
	assert.EqualError(t, err, "counter unavailable")
}

func TestUpdateStatusRejectsMalformedID(t *testing.T) {
	r := &LeaveRepository{}
	_, err := r.UpdateStatus(context.Background(), "not-an-id", model.LeaveStatusApproved)
	assert.True(t, apperr.IsInvalidIdentifier(err))
}

func TestMonthBounds(t *testing.T) {
	loc := time.FixedZone("UTC+5:30", 5*3600+1800)

	now := time.Date(2024, time.February, 15, 12, 30, 0, 0, loc)
	start, end := monthBounds(now)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, loc), start)
	// 2024 is a leap year.
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, loc), end)

	now = time.Date(2025, time.December, 1, 0, 0, 0, 0, loc)
	start, end = monthBounds(now)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 999000000, loc), end)
	assert.Equal(t, loc, start.Location(), "bounds stay in the caller's calendar")
}

func TestBuildLeaveListPipelineShape(t *testing.T) {
	q := model.LeaveListQuery{
		ListQuery: normalizeListQuery(model.ListQuery{}),
		Filters: model.LeaveListFilters{
			SearchTerm: "medical",
			Status:     model.LeaveStatusPending,
			Category:   model.LeaveCategorySick,
		},
	}
	p := buildLeaveListPipeline(q)

	first := p[0][0]
	require.Equal(t, "$match", first.Key)
	assert.Equal(t, bson.M{"archived": false}, first.Value)

	// Searchable text synthesized from the leave fields.
	project := stageValues(p, "$project")[0].(bson.M)
	text := project["text"].(bson.M)
	parts := text["$concat"].(bson.A)
	assert.Len(t, parts, 11, "six fields joined by five separators")

	// Search, status and category land in one secondary match.
	var sawFilters bool
	for _, m := range stageValues(p, "$match") {
		doc, ok := m.(bson.M)
		if !ok {
			continue
		}
		if _, hasText := doc["text"]; hasText {
			sawFilters = true
			assert.Equal(t, model.LeaveStatusPending, doc["status"])
			assert.Equal(t, model.LeaveCategorySick, doc["category"])
		}
	}
	assert.True(t, sawFilters)

	// Text stripped, then sort, then facet.
	projects := stageValues(p, "$project")
	assert.Equal(t, bson.M{"text": 0}, projects[len(projects)-1])
	assert.Equal(t, "$sort", p[len(p)-2][0].Key)
	assert.Equal(t, "$facet", p[len(p)-1][0].Key)
}

func TestBuildLeaveListPipelineNoFilters(t *testing.T) {
	p := buildLeaveListPipeline(model.LeaveListQuery{ListQuery: normalizeListQuery(model.ListQuery{})})
	// Only the archived exclusion matches; no secondary filter stage.
	assert.Len(t, stageValues(p, "$match"), 1)
}

func TestBuildMonthlySummaryPipeline(t *testing.T) {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 30, 23, 59, 59, 999000000, time.UTC)
	p := buildMonthlySummaryPipeline("A. Perera", start, end)

	match := stageValue(p, "$match").(bson.M)
	assert.Equal(t, "A. Perera", match["teacherName"])
	created := match["createdAt"].(bson.M)
	assert.Equal(t, start, created["$gte"])
	assert.Equal(t, end, created["$lte"])

	groups := stageValues(p, "$group")
	require.Len(t, groups, 2)
	byCategory := groups[0].(bson.M)
	assert.Equal(t, "$category", byCategory["_id"])

	reshape := groups[1].(bson.M)
	for _, counter := range []string{"sick", "casual", "earned"} {
		assert.Contains(t, reshape, counter)
	}

	project := stageValue(p, "$project").(bson.M)
	assert.Equal(t, 0, project["_id"], "group id never reaches the caller")
}

func TestCategoryCounter(t *testing.T) {
	counter := categoryCounter(model.LeaveCategoryEarned)
	cond := counter["$sum"].(bson.M)["$cond"].(bson.A)
	require.Len(t, cond, 3)
	assert.Equal(t, bson.M{"$eq": bson.A{"$_id", "EARNED"}}, cond[0])
	assert.Equal(t, "$count", cond[1])
	assert.Equal(t, 0, cond[2])
}
