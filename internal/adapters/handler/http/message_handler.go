package http

import (
	"net/http"

	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
)

type MessageHandler struct {
	service ports.GuidanceService
}

func NewMessageHandler(service ports.GuidanceService) *MessageHandler {
	return &MessageHandler{
		service: service,
	}
}

type generateRequest struct {
	UserPrompt *string `json:"user_prompt" validate:"omitempty,max=4000"`
}

// Generate returns a handler producing guidance of the given type for the caller.
//
// @Summary      Generates career guidance for the authenticated user
// @Description  Requires an existing profile. The body and its `user_prompt` are optional.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Message
// @Failure      401
// @Failure      404
// @Failure      500
// @Router       /messages/career-paths [post]
// @Router       /messages/job-insights [post]
// @Router       /messages/roadmaps [post]
func (h *MessageHandler) Generate(msgType domain.MessageType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			respondError(w, r, errNotAuthenticated)
			return
		}

		var req generateRequest
		if err := decodeJSON(r, &req, true); err != nil {
			respondError(w, r, err)
			return
		}

		message, err := h.service.Generate(r.Context(), ports.GenerateInput{
			UserID: user.ID,
			Type:   msgType,
			Hint:   req.UserPrompt,
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, message)
	}
}

// List godoc
// @Summary      Lists guidance messages of all users
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        offset  query  int  false  "Offset"
// @Param        limit   query  int  false  "Limit (max 100)"
// @Success      200  {array}  domain.Message
// @Failure      400
// @Failure      401
// @Router       /messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	messages, err := h.service.List(r.Context(), page)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// ListMine godoc
// @Summary      Lists the guidance history of the authenticated user
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        offset  query  int  false  "Offset"
// @Param        limit   query  int  false  "Limit (max 100)"
// @Success      200  {array}  domain.Message
// @Failure      400
// @Failure      401
// @Router       /messages/me [get]
func (h *MessageHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, r, errNotAuthenticated)
		return
	}

	page, err := parsePage(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	messages, err := h.service.ListByUser(r.Context(), user.ID, page)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// Get godoc
// @Summary      Returns a guidance message by id
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        message_id  path  string  true  "Message ID"
// @Success      200  {object}  domain.Message
// @Failure      401
// @Failure      404
// @Router       /messages/{message_id} [get]
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "message_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	message, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, message)
}

// Delete godoc
// @Summary      Deletes a guidance message
// @Description  Responds with the deleted message.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        message_id  path  string  true  "Message ID"
// @Success      200  {object}  domain.Message
// @Failure      401
// @Failure      404
// @Router       /messages/{message_id} [delete]
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "message_id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	message, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, message)
}
