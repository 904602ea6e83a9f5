package database

import (
	"reflect"
	"testing"

	"gallery/internal/core/queue"
)

func TestFilterClause(t *testing.T) {
	tests := []struct {
		name   string
		filter queue.Filter
		clause string
		args   []interface{}
	}{
		{"all is the pending range", queue.FilterAll, "t.queue_code BETWEEN ? AND ?", []interface{}{1, 2}},
		{"accepted collapses to equality", queue.FilterAccepted, "t.queue_code = ?", []interface{}{0}},
		{"queued spans accepted and pending", queue.FilterQueued, "t.queue_code BETWEEN ? AND ?", []interface{}{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args, ok := filterClause(tt.filter)
			if !ok {
				t.Fatalf("filterClause(%q) ok = false", tt.filter)
			}
			if clause != tt.clause {
				t.Errorf("clause = %q, want %q", clause, tt.clause)
			}
			if !reflect.DeepEqual(args, tt.args) {
				t.Errorf("args = %v, want %v", args, tt.args)
			}
		})
	}
}

func TestFilterClause_unknownFilter(t *testing.T) {
	if _, _, ok := filterClause(queue.Filter("declined")); ok {
		t.Error("filterClause(declined) ok = true, want false")
	}
}

func TestColumnAllowLists(t *testing.T) {
	if !allowedSortColumn("created") || allowedSortColumn("queue_code; DROP TABLE users") {
		t.Error("sort column allow-list broken")
	}
	if !allowedFilterColumn("uid") || allowedFilterColumn("username") {
		t.Error("filter column allow-list broken")
	}
	if !allowedCounterColumn("views") || !allowedCounterColumn("downloads") || allowedCounterColumn("ghost") {
		t.Error("counter column allow-list broken")
	}
}
