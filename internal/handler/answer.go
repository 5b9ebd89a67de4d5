package handler

import (
	"net/http"

	"github.com/msomdec/qa-board/internal/service"
)

// AnswerHandler handles answer-related HTTP requests.
type AnswerHandler struct {
	answers *service.AnswerService
}

// NewAnswerHandler creates a new AnswerHandler.
func NewAnswerHandler(answers *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

type answerRequest struct {
	Content string `json:"content"`
}

// HandleListForQuestion returns the answers under a question in
// insertion order.
func (h *AnswerHandler) HandleListForQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(w, r)
	if !ok {
		return
	}

	answers, err := h.answers.GetAnswersForQuestion(r.Context(), questionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnswerDTOs(answers))
}

// HandleCreate creates an answer under a question, authored by the
// acting user. 404 when the parent question does not exist.
func (h *AnswerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	questionID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req answerRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := h.answers.Create(r.Context(), questionID, user.Username, req.Content)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	answer, err := h.answers.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnswerDTO(answer))
}

// HandleUpdate overwrites an answer's content under the owner-or-admin
// rule.
func (h *AnswerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req answerRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.answers.Update(r.Context(), id, req.Content, user.Username); err != nil {
		writeDomainError(w, err)
		return
	}

	answer, err := h.answers.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnswerDTO(answer))
}

// HandleDisconnect anonymizes the answer's author; author-only, no
// admin override.
func (h *AnswerHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	applied, err := h.answers.Disconnect(r.Context(), id, user.Username)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"disconnected": applied})
}

// HandleDelete permanently removes an answer. Admin-gated by routing.
func (h *AnswerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.answers.DeletePermanently(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
