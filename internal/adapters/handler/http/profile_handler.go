package http

import (
	"net/http"

	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		service: service,
	}
}

type profileRequest struct {
	Interests      *string `json:"interests" validate:"omitempty,max=2000"`
	Skills         *string `json:"skills" validate:"omitempty,max=2000"`
	EducationLevel *string `json:"education_level" validate:"omitempty,max=255"`
	Goals          *string `json:"goals" validate:"omitempty,max=2000"`
}

// profilePatchRequest clears a field sent as null and leaves absent fields untouched.
type profilePatchRequest struct {
	Interests      optionalString `json:"interests" validate:"omitempty,max=2000"`
	Skills         optionalString `json:"skills" validate:"omitempty,max=2000"`
	EducationLevel optionalString `json:"education_level" validate:"omitempty,max=255"`
	Goals          optionalString `json:"goals" validate:"omitempty,max=2000"`
}

// Create godoc
// @Summary      Creates the profile of the authenticated user
// @Description  A user owns at most one profile. The caller is always bound as the owner.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Profile
// @Failure      400
// @Failure      401
// @Router       /profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, r, errNotAuthenticated)
		return
	}

	var req profileRequest
	if err := decodeJSON(r, &req, true); err != nil {
		respondError(w, r, err)
		return
	}

	profile, err := h.service.Create(r.Context(), user.ID, ports.ProfileInput{
		Interests:      req.Interests,
		Skills:         req.Skills,
		EducationLevel: req.EducationLevel,
		Goals:          req.Goals,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// GetMe godoc
// @Summary      Returns the profile of the authenticated user
// @Description  Responds with null when no profile was created yet.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401
// @Router       /profiles/me [get]
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, r, errNotAuthenticated)
		return
	}

	profile, err := h.service.GetMine(r.Context(), user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Get godoc
// @Summary      Returns the profile of a user
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  domain.Profile
// @Failure      401
// @Failure      404
// @Router       /profiles/{user_id} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	profile, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Update godoc
// @Summary      Partially updates the profile of a user
// @Description  Absent fields are kept, fields sent as null are cleared.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  domain.Profile
// @Failure      400
// @Failure      401
// @Failure      404
// @Router       /profiles/{user_id} [patch]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req profilePatchRequest
	if err := decodeJSON(r, &req, true); err != nil {
		respondError(w, r, err)
		return
	}

	profile, err := h.service.Update(r.Context(), userID, domain.ProfileUpdate{
		Interests:      req.Interests.patch(),
		Skills:         req.Skills.patch(),
		EducationLevel: req.EducationLevel.patch(),
		Goals:          req.Goals.patch(),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Delete godoc
// @Summary      Deletes the profile of a user
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  http.okResponse
// @Failure      401
// @Failure      404
// @Router       /profiles/{user_id} [delete]
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "user_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
