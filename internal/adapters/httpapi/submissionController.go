package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"gallery/internal/core/queue"
	subPort "gallery/internal/ports/submission"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct{ sc SubmissionUseCase }

func NewSubmissionController(sc SubmissionUseCase) *SubmissionController {
	return &SubmissionController{sc: sc}
}

// List serves the public gallery listing. Only accepted submissions are
// visible here; the queue filters belong to the staff routes.
func (ctl *SubmissionController) List(c *gin.Context) {
	kind, ok := queue.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown kind"})
		return
	}

	q, ok := parseListQuery(c)
	if !ok {
		return
	}
	q.Filter = queue.FilterAccepted

	subs, err := ctl.sc.List(c.Request.Context(), kind, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

func (ctl *SubmissionController) Detail(c *gin.Context) {
	kind, id, ok := parseKindID(c)
	if !ok {
		return
	}

	sub, err := ctl.sc.Detail(c.Request.Context(), kind, id)
	if errors.Is(err, subPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch submission"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (ctl *SubmissionController) History(c *gin.Context) {
	kind, id, ok := parseKindID(c)
	if !ok {
		return
	}

	history, err := ctl.sc.History(c.Request.Context(), kind, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (ctl *SubmissionController) Download(c *gin.Context) {
	kind, id, ok := parseKindID(c)
	if !ok {
		return
	}

	fileURL, err := ctl.sc.Download(c.Request.Context(), kind, id)
	if errors.Is(err, subPort.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve download"})
		return
	}
	c.Redirect(http.StatusFound, fileURL)
}

// parseKindID pulls the kind and id path params, writing the error response
// itself on failure.
func parseKindID(c *gin.Context) (queue.Kind, int64, bool) {
	kind, ok := queue.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown kind"})
		return "", 0, false
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return "", 0, false
	}
	return kind, id, true
}

// parseListQuery reads the shared listing params: page, page_size, sort,
// asc, and the whitelisted uid equality filter.
func parseListQuery(c *gin.Context) (subPort.ListQuery, bool) {
	var q subPort.ListQuery

	pageStr := c.DefaultQuery("page", "0")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return q, false
	}

	sizeStr := c.DefaultQuery("page_size", "20")
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
		return q, false
	}

	q.Page = page
	q.PageSize = size
	q.SortColumn = c.Query("sort")
	q.Ascending = c.Query("asc") == "1"

	if uidStr := c.Query("uid"); uidStr != "" {
		uid, err := strconv.ParseInt(uidStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uid"})
			return q, false
		}
		q.Equals = append(q.Equals, subPort.ColumnValue{Column: "uid", Value: uid})
	}

	return q, true
}
