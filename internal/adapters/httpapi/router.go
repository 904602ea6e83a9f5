package httpapi

import (
	"context"
	"net/http"

	"gallery/internal/adapters/httpapi/middleware"
	"gallery/internal/core/queue"
	subPort "gallery/internal/ports/submission"

	"github.com/gin-gonic/gin"
)

// SubmissionUseCase is the inbound port the controllers need.
type SubmissionUseCase interface {
	List(ctx context.Context, kind queue.Kind, q subPort.ListQuery) ([]*subPort.SubmissionDTO, error)
	Detail(ctx context.Context, kind queue.Kind, id int64) (*subPort.SubmissionDTO, error)
	Download(ctx context.Context, kind queue.Kind, id int64) (string, error)
	History(ctx context.Context, kind queue.Kind, rid int64) ([]*subPort.UpdateRecordDTO, error)
	Delete(ctx context.Context, kind queue.Kind, id int64) error
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(subUC SubmissionUseCase, staffSecret []byte) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())

	sc := NewSubmissionController(subUC)
	qc := NewQueueController(subUC)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public gallery routes: accepted submissions only.
	gallery := r.Group("/gallery")
	gallery.GET("/:kind/submissions", sc.List)
	gallery.GET("/:kind/submissions/:id", sc.Detail)
	gallery.GET("/:kind/submissions/:id/history", sc.History)
	gallery.GET("/:kind/submissions/:id/download", sc.Download)

	// Staff routes: queue views and hard deletes, behind the staff token.
	staff := r.Group("/staff", middleware.StaffAuth(staffSecret))
	staff.GET("/:kind/queue", qc.Queue)
	staff.DELETE("/:kind/submissions/:id", qc.DeleteSubmission)

	return r
}
