package handler

import (
	"net/http"

	"github.com/msomdec/qa-board/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Reads are
// public; mutations require an acting user, and the permanent-delete
// routes additionally require the admin role, since the services
// deliberately perform no check of their own there.
func RegisterRoutes(mux *http.ServeMux, registry *service.RegistryService, questions *service.QuestionService, answers *service.AnswerService) {
	authHandler := NewAuthHandler(registry)
	questionHandler := NewQuestionHandler(questions)
	answerHandler := NewAnswerHandler(answers)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("POST /api/register", authHandler.HandleRegister)

	mux.HandleFunc("GET /api/questions", questionHandler.HandleList)
	mux.HandleFunc("GET /api/questions/{id}", questionHandler.HandleGet)
	mux.HandleFunc("GET /api/questions/{id}/answers", answerHandler.HandleListForQuestion)

	mux.Handle("POST /api/questions", RequireAuth(registry, http.HandlerFunc(questionHandler.HandleCreate)))
	mux.Handle("PUT /api/questions/{id}", RequireAuth(registry, http.HandlerFunc(questionHandler.HandleUpdate)))
	mux.Handle("POST /api/questions/{id}/disconnect", RequireAuth(registry, http.HandlerFunc(questionHandler.HandleDisconnect)))
	mux.Handle("POST /api/questions/{id}/answers", RequireAuth(registry, http.HandlerFunc(answerHandler.HandleCreate)))
	mux.Handle("PUT /api/answers/{id}", RequireAuth(registry, http.HandlerFunc(answerHandler.HandleUpdate)))
	mux.Handle("POST /api/answers/{id}/disconnect", RequireAuth(registry, http.HandlerFunc(answerHandler.HandleDisconnect)))

	mux.Handle("DELETE /api/questions/{id}", RequireAdmin(registry, http.HandlerFunc(questionHandler.HandleDelete)))
	mux.Handle("DELETE /api/answers/{id}", RequireAdmin(registry, http.HandlerFunc(answerHandler.HandleDelete)))
}
