package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"staffhub/internal/config"
	"staffhub/internal/model"
)

// normalizeListQuery clamps pagination and fills sort defaults.
// PageIndex is one-indexed across every listing.
func normalizeListQuery(q model.ListQuery) model.ListQuery {
	if q.PageIndex < 1 {
		q.PageIndex = 1
	}
	if q.PageSize < 1 {
		q.PageSize = config.DefaultPageSize
	} else if q.PageSize > config.MaxPageSize {
		q.PageSize = config.MaxPageSize
	}
	if q.SortField == "" {
		q.SortField = "createdAt"
	}
	if q.SortOrder != model.SortAsc {
		q.SortOrder = model.SortDesc
	}
	return q
}

// searchableText builds the $concat expression synthesizing the
// query-only text field: each source field null-coalesced to "" and
// joined with single spaces.
func searchableText(fields ...string) bson.M {
	parts := make(bson.A, 0, len(fields)*2-1)
	for i, f := range fields {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, bson.M{"$ifNull": bson.A{"$" + f, ""}})
	}
	return bson.M{"$concat": parts}
}

// searchMatchStage matches term case-insensitively against the
// synthesized text field.
func searchMatchStage(term string) bson.D {
	return bson.D{{Key: "$match", Value: bson.M{
		"text": bson.M{"$regex": term, "$options": "i"},
	}}}
}

// lookupStage joins a referenced collection as a left-outer lookup and
// unwinds it null-preserving, so unmatched references keep the record.
func lookupStage(from, localField string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         from,
			"localField":   localField,
			"foreignField": "_id",
			"as":           localField,
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + localField,
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// sortStage sorts by the caller-specified field and direction.
func sortStage(q model.ListQuery) bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{{Key: q.SortField, Value: q.SortOrder}}}}
}

// facetStage splits the filtered set into a page slice and a total
// count computed from the same input in one pass.
func facetStage(q model.ListQuery) bson.D {
	return bson.D{{Key: "$facet", Value: bson.M{
		"data": bson.A{
			bson.M{"$skip": int64((q.PageIndex - 1) * q.PageSize)},
			bson.M{"$limit": int64(q.PageSize)},
		},
		"total": bson.A{
			bson.M{"$count": "count"},
		},
	}}}
}

// facetResult is the decode target of a facet listing pipeline.
type facetResult[T any] struct {
	Data  []T `bson:"data"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

// toPagedResult flattens a facet document into the listing contract.
func toPagedResult[T any](res facetResult[T]) *model.PagedResult[T] {
	out := &model.PagedResult[T]{Records: res.Data}
	if out.Records == nil {
		out.Records = []T{}
	}
	if len(res.Total) > 0 {
		out.Total = res.Total[0].Count
	}
	return out
}
