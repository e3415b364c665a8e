package handler

import (
	"net/http"
	"sotestenv/internal/service"
	"strconv"

	"github.com/gorilla/mux"
)

// QuestionHandler handles question catalog endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// GetCatalog handles GET /api/questions
func (h *QuestionHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.questionSvc.GetCatalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load question catalog")
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

// Get handles GET /api/questions/{num}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	num, err := strconv.Atoi(mux.Vars(r)["num"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question number")
		return
	}

	question, err := h.questionSvc.GetByNum(r.Context(), num)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load question")
		return
	}
	if question == nil {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}

	writeJSON(w, http.StatusOK, question)
}
