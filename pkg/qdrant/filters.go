package qdrant

import (
	qdrant "github.com/qdrant/go-client/qdrant"
)

// FilterCondition is the interface for all filter conditions.
type FilterCondition interface {
	ToQdrantCondition() []*qdrant.Condition
}

// TextCondition matches a keyword payload field exactly.
type TextCondition struct {
	Key   string
	Value string
}

func (c TextCondition) ToQdrantCondition() []*qdrant.Condition {
	return []*qdrant.Condition{qdrant.NewMatch(c.Key, c.Value)}
}

// TextContainsCondition performs a full-text match against a payload field:
// the condition holds when the field contains the given text. This is what
// backs the provenance-substring filter on retrieval.
type TextContainsCondition struct {
	Key  string
	Text string
}

func (c TextContainsCondition) ToQdrantCondition() []*qdrant.Condition {
	return []*qdrant.Condition{qdrant.NewMatchText(c.Key, c.Text)}
}

// BoolCondition matches a boolean payload field.
type BoolCondition struct {
	Key   string
	Value bool
}

func (c BoolCondition) ToQdrantCondition() []*qdrant.Condition {
	return []*qdrant.Condition{qdrant.NewMatchBool(c.Key, c.Value)}
}

// ConditionSet holds conditions for a single clause.
type ConditionSet struct {
	Conditions []FilterCondition
}

// FilterSet supports Must (AND), Should (OR), and MustNot (NOT) clauses.
// Use with SearchRequest.Filters to restrict search results.
//
// Example:
//
//	filters := &FilterSet{
//	    Must: &ConditionSet{
//	        Conditions: []FilterCondition{
//	            TextContainsCondition{Key: "source", Text: "handbook"},
//	        },
//	    },
//	}
type FilterSet struct {
	Must    *ConditionSet // AND - all conditions must match
	Should  *ConditionSet // OR - at least one condition must match
	MustNot *ConditionSet // NOT - none of the conditions may match
}

// buildFilter constructs a Qdrant filter from a FilterSet.
func buildFilter(filters *FilterSet) *qdrant.Filter {
	if filters == nil {
		return nil
	}

	filter := &qdrant.Filter{}

	if filters.Must != nil {
		filter.Must = buildConditions(filters.Must)
	}
	if filters.Should != nil {
		filter.Should = buildConditions(filters.Should)
	}
	if filters.MustNot != nil {
		filter.MustNot = buildConditions(filters.MustNot)
	}

	if len(filter.Must) == 0 && len(filter.Should) == 0 && len(filter.MustNot) == 0 {
		return nil
	}

	return filter
}

// buildConditions converts a ConditionSet to Qdrant conditions.
func buildConditions(cs *ConditionSet) []*qdrant.Condition {
	if cs == nil {
		return nil
	}

	var conditions []*qdrant.Condition
	for _, c := range cs.Conditions {
		conditions = append(conditions, c.ToQdrantCondition()...)
	}
	return conditions
}
