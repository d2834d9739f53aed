package http

import (
	"errors"
	"net/http"

	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
	"github.com/vncsmyrnk/careerguide/internal/metrics"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
// @Summary      Exchanges credentials for an access token
// @Description  Accepts an OAuth2 password form where `username` carries the email.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  domain.Token
// @Failure      400
// @Failure      401
// @Router       /users/auth [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, badRequest("failed to parse form"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		respondError(w, r, badRequest("username and password are required"))
		return
	}

	token, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		}
		respondError(w, r, err)
		return
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	writeJSON(w, http.StatusOK, token)
}
