package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/epicstalent-sudo/level-up-backend/model"
)

// SearchResponse is the HTTP form of a search: the ranked results plus request metadata.
type SearchResponse struct {
	model.SearchResponse
	QueryID string `json:"query_id"` // unique UUID for this search query
	Took    int64  `json:"took"`     // milliseconds
}

// SearchHandler handles candidate search requests.
// Request Body: model.SearchRequest; an empty body searches everything.
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req model.SearchRequest

	// Bind JSON directly with error handling
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			SendRequestTooLargeError(c, maxBytesErr.Limit)
			return
		}
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateSearchRequest(api.validate, &req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	outcome := api.searcher.SearchWithOutcome(req)

	responseTime := time.Since(startTime)
	queryID := uuid.New().String()

	if api.analytics != nil {
		event := model.SearchEvent{
			QueryID:      queryID,
			Query:        req.Query,
			SearchType:   outcome.SearchType,
			ResponseTime: responseTime,
			ResultCount:  outcome.Response.Count,
			Timestamp:    startTime,
		}

		// Track the event asynchronously to avoid slowing down the response
		go func() {
			if err := api.analytics.TrackSearchEvent(event); err != nil {
				api.logger.Warn("failed to track search event", "error", err)
			}
		}()
	}

	c.JSON(http.StatusOK, SearchResponse{
		SearchResponse: outcome.Response,
		QueryID:        queryID,
		Took:           responseTime.Milliseconds(),
	})
}
