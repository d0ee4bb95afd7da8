package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/epicstalent-sudo/level-up-backend/services"
)

// API holds dependencies for API handlers.
type API struct {
	searcher  services.CandidateSearcher
	stats     services.StatsProvider
	analytics services.AnalyticsTracker
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewAPI creates a new API handler structure. analytics may be nil to disable tracking.
func NewAPI(searcher services.CandidateSearcher, stats services.StatsProvider, analytics services.AnalyticsTracker, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		searcher:  searcher,
		stats:     stats,
		analytics: analytics,
		validate:  NewValidator(),
		logger:    logger,
	}
}

// RouterConfig controls the middleware stack installed by NewRouter.
type RouterConfig struct {
	MaxRequestBytes int64
	CORSAllowOrigin string
}

// NewRouter builds a gin engine with the standard middleware stack and every route.
func NewRouter(cfg RouterConfig, apiHandler *API) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestIDMiddleware(),
		RecoveryMiddleware(apiHandler.logger),
		LoggerMiddleware(apiHandler.logger),
		CORSMiddleware(cfg.CORSAllowOrigin),
	)
	if cfg.MaxRequestBytes > 0 {
		router.Use(RequestSizeLimitMiddleware(cfg.MaxRequestBytes))
	}

	SetupRoutes(router, apiHandler)
	return router
}

// SetupRoutes defines all the API routes for the candidate search service.
func SetupRoutes(router *gin.Engine, apiHandler *API) {
	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.POST("/search", apiHandler.SearchHandler)              // Search candidates
		apiRoutes.GET("/stats", apiHandler.GetStatsHandler)              // Dataset and index statistics
		apiRoutes.GET("/analytics", apiHandler.GetAnalyticsHandler)      // Search analytics dashboard
		apiRoutes.GET("/candidates/:id", apiHandler.GetCandidateHandler) // Get a single candidate
	}

	router.NoRoute(func(c *gin.Context) {
		SendError(c, http.StatusNotFound, ErrorCodeRouteNotFound,
			"No route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "candidate-search",
		"timestamp": time.Now().Unix(),
	})
}

// GetStatsHandler returns statistics for the loaded dataset and its index
func (api *API) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.stats.Stats())
}

// GetCandidateHandler returns one candidate by id.
func (api *API) GetCandidateHandler(c *gin.Context) {
	candidateID := c.Param("id")
	if result := ValidateCandidateID(candidateID); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	candidate, err := api.searcher.Candidate(candidateID)
	if err != nil {
		SendCandidateNotFoundError(c, candidateID)
		return
	}

	c.JSON(http.StatusOK, candidate)
}
