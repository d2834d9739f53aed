package http

import (
	"net/http"

	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

type createUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Password string  `json:"plain_password" validate:"required"`
}

type updateUserRequest struct {
	Email    *string        `json:"email" validate:"omitempty,email"`
	FullName optionalString `json:"full_name" validate:"omitempty,max=255"`
	Active   *bool          `json:"active"`
}

// Create godoc
// @Summary      Registers a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      201  {object}  domain.User
// @Failure      400
// @Router       /users/new [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req, false); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.Create(r.Context(), ports.CreateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// GetMe godoc
// @Summary      Returns the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401
// @Router       /users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, r, errNotAuthenticated)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// List godoc
// @Summary      Lists users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        offset  query  int  false  "Offset"
// @Param        limit   query  int  false  "Limit (max 100)"
// @Success      200  {array}  domain.User
// @Failure      400
// @Failure      401
// @Router       /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	users, err := h.service.List(r.Context(), page)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Get godoc
// @Summary      Returns a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      401
// @Failure      404
// @Router       /users/{user_id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Update godoc
// @Summary      Partially updates a user
// @Description  Only the fields present in the body are changed. A null full_name clears it.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      400
// @Failure      404
// @Router       /users/{user_id} [patch]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req, true); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := h.service.Update(r.Context(), id, domain.UserUpdate{
		Email:    req.Email,
		FullName: req.FullName.patch(),
		Active:   req.Active,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Delete godoc
// @Summary      Deletes a user
// @Description  Profile and messages of the user are removed with it.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  http.okResponse
// @Failure      401
// @Failure      404
// @Router       /users/{user_id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
