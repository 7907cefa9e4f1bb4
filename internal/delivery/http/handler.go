package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wellnest/backend/internal/domain"
	"github.com/wellnest/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	search   *usecase.SearchService
	sessions *usecase.SessionManager
	wellness *usecase.WellnessService
	profiles domain.ProfileStore
	log      *logrus.Logger
	debug    bool
}

// NewHandler creates a new HTTP handler. When debug is true, error responses
// carry the underlying error text; production responses stay non-technical.
func NewHandler(
	search *usecase.SearchService,
	sessions *usecase.SessionManager,
	wellness *usecase.WellnessService,
	profiles domain.ProfileStore,
	log *logrus.Logger,
	debug bool,
) *Handler {
	return &Handler{
		search:   search,
		sessions: sessions,
		wellness: wellness,
		profiles: profiles,
		log:      log,
		debug:    debug,
	}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "wellnest-backend",
		"version": "1.0.0",
	})
}

// errorBody builds the error payload; raw detail only leaks in debug mode.
func (h *Handler) errorBody(publicMsg string, err error) gin.H {
	body := gin.H{"error": publicMsg}
	if h.debug && err != nil {
		body["message"] = err.Error()
	}
	return body
}

// respondError maps domain errors to status codes with non-technical messages.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, h.errorBody("Invalid request", err))
	case errors.Is(err, domain.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, h.errorBody("Food not found", err))
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, h.errorBody("Profile not found", err))
	default:
		h.log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, h.errorBody("Internal server error", err))
	}
}

// SearchFoods handles GET /api/nutrition/search.
func (h *Handler) SearchFoods(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, h.errorBody("Query parameter is required", nil))
		return
	}

	pageSize, err := intQuery(c, "pageSize")
	if err != nil {
		c.JSON(http.StatusBadRequest, h.errorBody("pageSize must be a positive integer", err))
		return
	}
	pageNumber, err := intQuery(c, "pageNumber")
	if err != nil {
		c.JSON(http.StatusBadRequest, h.errorBody("pageNumber must be a positive integer", err))
		return
	}

	page, err := h.search.Search(c.Request.Context(), query, pageSize, pageNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// intQuery parses an optional positive integer query parameter; 0 means the
// parameter was absent and the service default applies.
func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, domain.ErrInvalidRequest
	}
	return v, nil
}

// GetFoodDetails handles GET /api/nutrition/food/:id.
func (h *Handler) GetFoodDetails(c *gin.Context) {
	details, err := h.search.FoodDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// addEntryRequest is the body of a log-entry creation. AmountGrams is a
// pointer so an omitted amount (default 100 g) is distinguishable from an
// explicit zero, which is rejected.
type addEntryRequest struct {
	Food        domain.FoodRecord `json:"food" binding:"required"`
	AmountGrams *float64          `json:"amountGrams"`
}

// AddLogEntry handles POST /api/log/:sessionId/entries.
func (h *Handler) AddLogEntry(c *gin.Context) {
	var req addEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, h.errorBody("Invalid request body", err))
		return
	}
	if req.Food.FdcID == 0 || req.Food.Description == "" {
		c.JSON(http.StatusBadRequest, h.errorBody("Food record requires fdcId and description", nil))
		return
	}

	amount := float64(usecase.DefaultAmountGrams)
	if req.AmountGrams != nil {
		amount = *req.AmountGrams
	}

	log := h.sessions.Log(c.Param("sessionId"))
	entry, err := log.AddEntry(req.Food, amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListLogEntries handles GET /api/log/:sessionId/entries.
func (h *Handler) ListLogEntries(c *gin.Context) {
	log := h.sessions.Log(c.Param("sessionId"))
	c.JSON(http.StatusOK, gin.H{"entries": log.Entries()})
}

// RemoveLogEntry handles DELETE /api/log/:sessionId/entries/:id.
// Removing an unknown id succeeds: a duplicate click must be safe.
func (h *Handler) RemoveLogEntry(c *gin.Context) {
	log := h.sessions.Log(c.Param("sessionId"))
	log.RemoveEntry(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GetDailyTotals handles GET /api/log/:sessionId/totals.
func (h *Handler) GetDailyTotals(c *gin.Context) {
	log := h.sessions.Log(c.Param("sessionId"))
	totals := log.Totals()
	goals := log.Goals()

	c.JSON(http.StatusOK, gin.H{
		"totals": totals,
		"goals":  goals,
		"progress": gin.H{
			"calories": usecase.ProgressPercentage(totals.Calories, goals.Calories),
			"protein":  usecase.ProgressPercentage(totals.Protein, goals.Protein),
			"carbs":    usecase.ProgressPercentage(totals.Carbs, goals.Carbs),
			"fat":      usecase.ProgressPercentage(totals.Fat, goals.Fat),
		},
	})
}

// GetQuote handles GET /api/wellness/quote.
func (h *Handler) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, h.wellness.Quote())
}

// GetWeather handles GET /api/wellness/weather.
func (h *Handler) GetWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.wellness.Weather())
}

// GetTips handles GET /api/wellness/tips.
func (h *Handler) GetTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tips": h.wellness.Tips()})
}

// GetMoodSuggestions handles GET /api/wellness/mood/:mood/suggestions.
func (h *Handler) GetMoodSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mood":        c.Param("mood"),
		"suggestions": h.wellness.MoodSuggestions(c.Param("mood")),
	})
}

// PutProfile handles PUT /api/profile/:id. The blob is stored as-is; profile
// contents are a client concern.
func (h *Handler) PutProfile(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, h.errorBody("Unable to read request body", err))
		return
	}

	if err := h.profiles.Put(c.Request.Context(), c.Param("id"), body, 0); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProfile handles GET /api/profile/:id.
func (h *Handler) GetProfile(c *gin.Context) {
	body, err := h.profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
