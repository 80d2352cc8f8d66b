package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	messagesvc "github.com/heartmarshall/positive-vibes/internal/service/message"
)

type messageService interface {
	Submit(ctx context.Context, input messagesvc.SubmitInput) (*domain.Message, error)
	ListForUsername(ctx context.Context, username string) ([]domain.Message, error)
}

// MessageHandler serves anonymous submission and message listing.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type submitRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Submit handles POST /messages. No account is needed.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.Submit(r.Context(), messagesvc.SubmitInput{
		Username: req.Username,
		Message:  req.Message,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(*m))
}

// ListForUser handles GET /users/{username}/messages. Only the owner or an
// admin may read them.
func (h *MessageHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListForUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponses(list))
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		Username:  m.Username,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func toMessageResponses(list []domain.Message) []messageResponse {
	out := make([]messageResponse, len(list))
	for i, m := range list {
		out[i] = toMessageResponse(m)
	}
	return out
}
