package handler

import (
	"net/http"
	"strconv"

	"github.com/msomdec/qa-board/internal/service"
)

// QuestionHandler handles question-related HTTP requests.
type QuestionHandler struct {
	questions *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

type questionRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// HandleList returns every question in insertion order.
func (h *QuestionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.ListAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionDTOs(questions))
}

// HandleGet returns a single question by id.
func (h *QuestionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	question, err := h.questions.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionDTO(question))
}

// HandleCreate creates a question authored by the acting user.
func (h *QuestionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req questionRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := h.questions.Create(r.Context(), user.Username, req.Title, req.Body)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	question, err := h.questions.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuestionDTO(question))
}

// HandleUpdate overwrites a question's title and body. The services
// enforce the owner-or-admin rule.
func (h *QuestionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req questionRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.questions.Update(r.Context(), id, req.Title, req.Body, user.Username); err != nil {
		writeDomainError(w, err)
		return
	}

	question, err := h.questions.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionDTO(question))
}

// HandleDisconnect anonymizes the question's author. Only the author
// themself can do this; a mismatched request is reported as not applied
// rather than an error.
func (h *QuestionHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	applied, err := h.questions.Disconnect(r.Context(), id, user.Username)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"disconnected": applied})
}

// HandleDelete permanently removes a question and its answers. Routing
// puts this behind the admin gate; the service itself does not check.
func (h *QuestionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.questions.DeletePermanently(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path value, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
