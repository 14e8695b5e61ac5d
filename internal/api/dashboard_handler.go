package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jwhitfield/ember-api/internal/api/shared"
	"github.com/jwhitfield/ember-api/internal/domain"
	"github.com/jwhitfield/ember-api/internal/service"
)

// maxHistoryLimit bounds the ?limit= query parameter on the history endpoint.
const maxHistoryLimit = 100

// DashboardHandler handles risk-dashboard API requests.
type DashboardHandler struct {
	assessmentService service.AssessmentService
}

// NewDashboardHandler creates a new DashboardHandler with the given dependencies.
func NewDashboardHandler(assessmentService service.AssessmentService) *DashboardHandler {
	return &DashboardHandler{
		assessmentService: assessmentService,
	}
}

// GetStatus handles GET /dashboard/status. It computes a fresh risk
// assessment over the user's trailing window, persists it, and returns it.
func (h *DashboardHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	assessment, err := h.assessmentService.ComputeStatus(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute risk status")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAssessmentResponse(assessment))
}

// GetHistory handles GET /dashboard/history, returning the user's most recent
// persisted assessments, newest first. An optional ?limit= parameter caps the
// result count.
func (h *DashboardHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	limit := service.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxHistoryLimit {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	assessments, err := h.assessmentService.History(r.Context(), userID, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load assessment history")
		return
	}

	resp := HistoryResponse{Assessments: make([]AssessmentResponse, 0, len(assessments))}
	for i := range assessments {
		resp.Assessments = append(resp.Assessments, toAssessmentResponse(&assessments[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func toAssessmentResponse(a *domain.RiskAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:         a.ID,
		Date:       a.Date,
		RiskLevel:  string(a.RiskLevel),
		RiskScore:  a.RiskScore,
		Insights:   a.Insights,
		ComputedAt: a.ComputedAt.Format(time.RFC3339),
	}
}
