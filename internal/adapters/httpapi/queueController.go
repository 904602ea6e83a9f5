package httpapi

import (
	"errors"
	"net/http"

	"gallery/internal/core/queue"
	subPort "gallery/internal/ports/submission"

	"github.com/gin-gonic/gin"
)

type QueueController struct{ sc SubmissionUseCase }

func NewQueueController(sc SubmissionUseCase) *QueueController {
	return &QueueController{sc: sc}
}

// Queue serves the staff moderation views: ?filter=all|accepted|queued.
func (ctl *QueueController) Queue(c *gin.Context) {
	kind, ok := queue.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown kind"})
		return
	}

	filter, ok := queue.ParseFilter(c.DefaultQuery("filter", string(queue.FilterAll)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	q.Filter = filter

	subs, err := ctl.sc.List(c.Request.Context(), kind, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list queue"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"filter": filter, "submissions": subs})
}

// DeleteSubmission hard-deletes one submission. Staff only.
func (ctl *QueueController) DeleteSubmission(c *gin.Context) {
	kind, id, ok := parseKindID(c)
	if !ok {
		return
	}

	err := ctl.sc.Delete(c.Request.Context(), kind, id)
	if errors.Is(err, subPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete submission"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
