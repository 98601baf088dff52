package analytics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	snippetAnalytics "github.com/dinerozz/snippet-analytics-backend/internal/analytics"
	"github.com/dinerozz/snippet-analytics-backend/internal/entity"
	"github.com/dinerozz/snippet-analytics-backend/internal/model/response/wrapper"
	"github.com/dinerozz/snippet-analytics-backend/internal/repository"
	service "github.com/dinerozz/snippet-analytics-backend/internal/service/analytics_service"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type AnalyticsService interface {
	UserSeries(ctx context.Context, userID uuid.UUID, q service.SeriesQuery) (*snippetAnalytics.Result, error)
	TeamSeries(ctx context.Context, teamID uuid.UUID, q service.SeriesQuery) (*snippetAnalytics.Result, error)
	HomeDashboard(ctx context.Context, userID uuid.UUID, date entity.Date, trendline bool) (*snippetAnalytics.Result, error)
	TeamSummary(ctx context.Context, teamID uuid.UUID) (*entity.TeamSummary, error)
	SkillRadar(ctx context.Context, userID uuid.UUID) ([]entity.SkillScore, error)
	SkillHistory(ctx context.Context, userID uuid.UUID) ([]entity.Series, error)
	SkillMatrix(ctx context.Context, companyID uuid.UUID) ([]entity.SkillMatrixRow, error)
}

type AnalyticsHandler struct {
	service AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetHome godoc
// @Summary Home dashboard
// @Description Week around the selected day, pooled with direct reports for managers
// @Tags analytics
// @Produce json
// @Param date query string false "Selected day (YYYY-MM-DD), defaults to today"
// @Param trendline query bool false "Add a trendline series"
// @Success 200 {object} wrapper.ResponseWrapper{data=analytics.Result}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 401 {object} wrapper.ErrorWrapper
// @Failure 502 {object} wrapper.ErrorWrapper
// @Router /analytics/home [get]
func (h *AnalyticsHandler) GetHome(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var date entity.Date
	if raw := c.Query("date"); raw != "" {
		parsed, err := entity.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		date = parsed
	}

	trendline, err := boolQuery(c, "trendline", false)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	result, err := h.service.HomeDashboard(c.Request.Context(), userID, date, trendline)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: result, Success: true})
}

// GetUserSeries godoc
// @Summary User series
// @Description Chart series for one user
// @Tags analytics
// @Produce json
// @Param id path string true "User ID"
// @Param window query string false "lastWeek, lastMonth, lastYear, calendar or anchored"
// @Param start query string false "Calendar window start (YYYY-MM-DD)"
// @Param end query string false "Calendar window end (YYYY-MM-DD)"
// @Param anchor query string false "Anchored window day (YYYY-MM-DD)"
// @Param metric query string false "sentiment, green, orange, red or length"
// @Param policy query string false "none, daily_average or pooled"
// @Param trendline query bool false "Add a trendline series"
// @Param weekday query bool false "Add weekday averages"
// @Param critical query bool false "Add the critical series"
// @Param threshold query number false "Critical threshold override"
// @Success 200 {object} wrapper.ResponseWrapper{data=analytics.Result}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Failure 502 {object} wrapper.ErrorWrapper
// @Router /analytics/users/{id}/series [get]
func (h *AnalyticsHandler) GetUserSeries(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	query, err := parseSeriesQuery(c, seriesDefaults{})
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	result, err := h.service.UserSeries(c.Request.Context(), userID, query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: result, Success: true})
}

// GetTeamSeries godoc
// @Summary Team series
// @Description Daily-average team series with weekday averages and critical days
// @Tags analytics
// @Produce json
// @Param id path string true "Team ID"
// @Param window query string false "lastWeek, lastMonth, lastYear, calendar or anchored"
// @Param start query string false "Calendar window start (YYYY-MM-DD)"
// @Param end query string false "Calendar window end (YYYY-MM-DD)"
// @Param metric query string false "sentiment, green, orange, red or length"
// @Param policy query string false "daily_average or pooled"
// @Param trendline query bool false "Add a trendline series"
// @Param weekday query bool false "Add weekday averages, on by default"
// @Param critical query bool false "Add the critical series, on by default"
// @Param threshold query number false "Critical threshold override"
// @Success 200 {object} wrapper.ResponseWrapper{data=analytics.Result}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Failure 502 {object} wrapper.ErrorWrapper
// @Router /analytics/teams/{id}/series [get]
func (h *AnalyticsHandler) GetTeamSeries(c *gin.Context) {
	teamID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	query, err := parseSeriesQuery(c, seriesDefaults{weekday: true, critical: true})
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	result, err := h.service.TeamSeries(c.Request.Context(), teamID, query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: result, Success: true})
}

// GetTeamSummary godoc
// @Summary Team summary
// @Description Member count and the average of daily merged scores over all snippets
// @Tags analytics
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.TeamSummary}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Failure 502 {object} wrapper.ErrorWrapper
// @Router /analytics/teams/{id}/summary [get]
func (h *AnalyticsHandler) GetTeamSummary(c *gin.Context) {
	teamID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	summary, err := h.service.TeamSummary(c.Request.Context(), teamID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: summary, Success: true})
}

// GetUserSkills godoc
// @Summary Skills radar
// @Description Latest rating per company skill, unrated skills score 0
// @Tags analytics
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.SkillScore}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /analytics/users/{id}/skills [get]
func (h *AnalyticsHandler) GetUserSkills(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	scores, err := h.service.SkillRadar(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: scores, Success: true})
}

// GetUserSkillHistory godoc
// @Summary Skill rating history
// @Description One series per rated skill, a point per rating
// @Tags analytics
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.Series}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /analytics/users/{id}/skills/history [get]
func (h *AnalyticsHandler) GetUserSkillHistory(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	history, err := h.service.SkillHistory(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: history, Success: true})
}

// GetSkillMatrix godoc
// @Summary Skills matrix summary
// @Description Per-skill total and average across company users
// @Tags analytics
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} wrapper.ResponseWrapper{data=[]entity.SkillMatrixRow}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Router /analytics/companies/{id}/skills/matrix [get]
func (h *AnalyticsHandler) GetSkillMatrix(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	rows, err := h.service.SkillMatrix(c.Request.Context(), companyID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: rows, Success: true})
}

type seriesDefaults struct {
	weekday  bool
	critical bool
}

func parseSeriesQuery(c *gin.Context, defaults seriesDefaults) (service.SeriesQuery, error) {
	var q service.SeriesQuery

	q.Window.Kind = entity.WindowKind(c.DefaultQuery("window", string(entity.WindowLastWeek)))
	for _, field := range []struct {
		key  string
		dest *entity.Date
	}{
		{"start", &q.Window.Start},
		{"end", &q.Window.End},
		{"anchor", &q.Window.Anchor},
	} {
		if raw := c.Query(field.key); raw != "" {
			parsed, err := entity.ParseDate(raw)
			if err != nil {
				return q, fmt.Errorf("invalid %s: %w", field.key, err)
			}
			*field.dest = parsed
		}
	}
	if q.Window.Kind == entity.WindowCalendar && (q.Window.Start.IsZero() || q.Window.End.IsZero()) {
		return q, errors.New("calendar window needs start and end")
	}
	if q.Window.Kind == entity.WindowAnchored && q.Window.Anchor.IsZero() {
		return q, errors.New("anchored window needs anchor")
	}

	metric, err := snippetAnalytics.ParseMetric(c.Query("metric"))
	if err != nil {
		return q, err
	}
	q.Metric = metric

	if raw := c.Query("policy"); raw != "" {
		q.Policy = snippetAnalytics.MergePolicy(raw)
		if !q.Policy.Valid() {
			return q, fmt.Errorf("%w: %q", snippetAnalytics.ErrUnknownPolicy, raw)
		}
	}

	if q.Trendline, err = boolQuery(c, "trendline", false); err != nil {
		return q, err
	}
	if q.Weekday, err = boolQuery(c, "weekday", defaults.weekday); err != nil {
		return q, err
	}
	if q.Critical, err = boolQuery(c, "critical", defaults.critical); err != nil {
		return q, err
	}

	if raw := c.Query("threshold"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return q, fmt.Errorf("invalid threshold %q", raw)
		}
		q.Threshold = &threshold
		q.Critical = true
	}

	return q, nil
}

func boolQuery(c *gin.Context, key string, def bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}

func pathUUID(c *gin.Context, key string) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param(key))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid " + key, Success: false})
		return uuid.Nil, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return uuid.Nil, false
	}

	s, _ := raw.(string)
	id, err := uuid.FromString(s)
	if err != nil {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid user ID", Success: false})
		return uuid.Nil, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	var fetchErr *service.UpstreamFetchError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	case errors.Is(err, snippetAnalytics.ErrUnknownMetric),
		errors.Is(err, snippetAnalytics.ErrUnknownPolicy),
		errors.Is(err, snippetAnalytics.ErrUnknownWindowKind),
		errors.Is(err, service.ErrPolicyNeedsTeam):
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	default:
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
	}
}
