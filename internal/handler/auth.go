package handler

import (
	"net/http"

	"github.com/msomdec/qa-board/internal/domain"
	"github.com/msomdec/qa-board/internal/service"
)

// AuthHandler handles account registration.
type AuthHandler struct {
	registry *service.RegistryService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(registry *service.RegistryService) *AuthHandler {
	return &AuthHandler{registry: registry}
}

type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// HandleRegister creates a new account. The role defaults to "user"
// when omitted.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleUser
	}

	user, err := h.registry.Register(r.Context(), req.Username, req.Password, role, req.Email, req.DisplayName)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserDTO(user))
}
