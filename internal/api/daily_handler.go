package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jwhitfield/ember-api/internal/api/shared"
	"github.com/jwhitfield/ember-api/internal/domain"
	"github.com/jwhitfield/ember-api/internal/domain/risk"
	"github.com/jwhitfield/ember-api/internal/store"
)

// DailyHandler handles daily check-in API requests: serving the day's
// question pair and recording self-report answers.
type DailyHandler struct {
	riskService risk.Service
	answerStore store.AnswerStore
	validator   *validator.Validate

	// timeFunc allows tests to pin "today"
	timeFunc func() time.Time
}

// NewDailyHandler creates a new DailyHandler with the given dependencies.
func NewDailyHandler(riskService risk.Service, answerStore store.AnswerStore) *DailyHandler {
	return &DailyHandler{
		riskService: riskService,
		answerStore: answerStore,
		validator:   validator.New(),
		timeFunc:    time.Now,
	}
}

// GetQuestions handles GET /daily/questions. The pair is a pure function of
// the UTC calendar day, so every user sees the same two questions.
func (h *DailyHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	today := h.timeFunc().UTC()
	q1, q2 := h.riskService.DailyQuestions(today)

	shared.RespondWithJSON(w, r, http.StatusOK, DailyQuestionsResponse{
		Date: today.Format(domain.DateLayout),
		Questions: []QuestionResponse{
			{ID: q1.ID, Text: q1.Text, Category: string(q1.Category)},
			{ID: q2.ID, Text: q2.Text, Category: string(q2.Category)},
		},
	})
}

// SubmitResponse handles POST /daily/response, recording one self-report
// answer. The answer value must be on the 1-5 scale and the question ID must
// belong to the rotation pool; answers to either of the day's questions or
// any other pool question are accepted.
func (h *DailyHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req DailyResponseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if !h.riskService.KnowsQuestion(req.QuestionID) {
		HandleAPIError(w, r, domain.ErrUnknownQuestion, "")
		return
	}

	record, err := domain.NewAnswerRecord(userID, req.QuestionID, req.AnswerValue)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.answerStore.Create(r.Context(), record); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, DailyResponseResponse{
		ID:         record.ID,
		QuestionID: record.QuestionID,
		Date:       record.Date,
		RecordedAt: record.RecordedAt.Format(time.RFC3339),
	})
}
