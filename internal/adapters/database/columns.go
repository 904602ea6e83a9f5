package database

import (
	"gallery/internal/core/queue"
)

// Column names arrive from query strings; only identifiers on these lists
// are ever interpolated into SQL. Values always go through bound parameters.

var sortColumns = map[string]bool{
	"id":          true,
	"title":       true,
	"views":       true,
	"downloads":   true,
	"created":     true,
	"updated":     true,
	"accept_date": true,
}

var filterColumns = map[string]bool{
	"id":  true,
	"uid": true,
}

var counterColumns = map[string]bool{
	"views":     true,
	"downloads": true,
}

func allowedSortColumn(col string) bool    { return sortColumns[col] }
func allowedFilterColumn(col string) bool  { return filterColumns[col] }
func allowedCounterColumn(col string) bool { return counterColumns[col] }

// filterClause renders a named queue filter as a predicate over t.queue_code.
// A single-code range uses equality, matching the legacy queries.
func filterClause(f queue.Filter) (clause string, args []interface{}, ok bool) {
	lo, hi, ok := f.Range()
	if !ok {
		return "", nil, false
	}
	if lo == hi {
		return "t.queue_code = ?", []interface{}{lo}, true
	}
	return "t.queue_code BETWEEN ? AND ?", []interface{}{lo, hi}, true
}
