package database

import (
	"context"
	"strings"
	"testing"

	"gallery/internal/config"
	"gallery/internal/core/queue"
	subPort "gallery/internal/ports/submission"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// dryRunDB swaps config.DB for a handle that only renders SQL. The driver
// never dials: SkipInitializeWithVersion and DisableAutomaticPing keep
// gorm.Open offline, and DryRun keeps every statement unexecuted.
func dryRunDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "gallery:gallery@tcp(127.0.0.1:3306)/gallery?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("opening dry-run db: %v", err)
	}
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

// renderList builds the listing statement for q and returns its SQL and vars.
func renderList(t *testing.T, q subPort.ListQuery) (string, []interface{}) {
	t.Helper()
	repo := NewSubmissionRepositoryDatabase()
	tx, err := repo.listStmt(context.Background(), queue.KindGames, q)
	if err != nil {
		t.Fatalf("listStmt() error = %v", err)
	}
	var rows []submissionRow
	stmt := tx.Scan(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestListStmt_paginationTranslation(t *testing.T) {
	dryRunDB(t)

	tests := []struct {
		name       string
		page, size int
		wantOffset int
	}{
		{"first page", 0, 25, 0},
		{"second page", 1, 25, 25},
		{"deep page", 7, 10, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, vars := renderList(t, subPort.ListQuery{
				Filter:   queue.FilterAccepted,
				Page:     tt.page,
				PageSize: tt.size,
			})

			if !strings.Contains(sql, "LIMIT ? OFFSET ?") {
				t.Fatalf("sql = %q, missing LIMIT/OFFSET placeholders", sql)
			}
			if len(vars) < 2 {
				t.Fatalf("vars = %v, want at least limit and offset", vars)
			}
			limit, offset := vars[len(vars)-2], vars[len(vars)-1]
			if limit != tt.size {
				t.Errorf("limit var = %v, want %d", limit, tt.size)
			}
			if offset != tt.wantOffset {
				t.Errorf("offset var = %v, want %d", offset, tt.wantOffset)
			}
		})
	}
}

// Consecutive pages must not overlap: page p ends where page p+1 begins.
func TestListStmt_consecutivePagesAreDisjoint(t *testing.T) {
	dryRunDB(t)

	const size = 20
	_, vars0 := renderList(t, subPort.ListQuery{Filter: queue.FilterAccepted, Page: 0, PageSize: size})
	_, vars1 := renderList(t, subPort.ListQuery{Filter: queue.FilterAccepted, Page: 1, PageSize: size})

	offset0 := vars0[len(vars0)-1].(int)
	offset1 := vars1[len(vars1)-1].(int)
	if offset1 != offset0+size {
		t.Errorf("page 1 offset = %d, want page 0 offset %d + page size %d", offset1, offset0, size)
	}
}

func TestListStmt_filterAndGhostPredicates(t *testing.T) {
	dryRunDB(t)

	sql, _ := renderList(t, subPort.ListQuery{
		Filter:   queue.FilterQueued,
		PageSize: 10,
		Equals:   []subPort.ColumnValue{{Column: "uid", Value: int64(12)}},
	})

	for _, want := range []string{
		"t.ghost = 0",
		"t.queue_code BETWEEN ? AND ?",
		"t.uid = ?",
		"LEFT JOIN users ON users.id = t.uid",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("sql = %q, missing %q", sql, want)
		}
	}
}

func TestListStmt_rejectsUnlistedColumns(t *testing.T) {
	dryRunDB(t)
	repo := NewSubmissionRepositoryDatabase()

	_, err := repo.listStmt(context.Background(), queue.KindGames, subPort.ListQuery{
		Filter:   queue.FilterAccepted,
		PageSize: 10,
		Equals:   []subPort.ColumnValue{{Column: "username", Value: "x"}},
	})
	if err == nil {
		t.Error("listStmt() accepted an unlisted equality column")
	}

	_, err = repo.listStmt(context.Background(), queue.KindGames, subPort.ListQuery{
		Filter:     queue.FilterAccepted,
		PageSize:   10,
		SortColumn: "queue_code; DROP TABLE users",
	})
	if err == nil {
		t.Error("listStmt() accepted an unlisted sort column")
	}
}
