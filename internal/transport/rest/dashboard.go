package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/internal/i18n"
	"github.com/heartmarshall/positive-vibes/internal/realtime"
	"github.com/heartmarshall/positive-vibes/internal/service/dashboard"
	"github.com/heartmarshall/positive-vibes/internal/service/session"
	"github.com/heartmarshall/positive-vibes/internal/share"
)

type dashboardService interface {
	Owner(ctx context.Context) (*domain.Profile, error)
	List(ctx context.Context, username string) ([]domain.Message, error)
	Open(ctx context.Context, username string) (*dashboard.Feed, realtime.Subscription, error)
	Share(ctx context.Context, owner string, messageID uuid.UUID, platform share.Platform, locale i18n.Locale) (share.Plan, error)
	PersonalLink(username string) string
	Export(ctx context.Context) error
}

const defaultHeartbeat = 25 * time.Second

// sessionEvents lets a stream watch for its owner signing out.
type sessionEvents interface {
	Subscribe(fn func(session.Event)) (unsubscribe func())
}

// DashboardHandler serves the owner's private feed, its live stream and
// the share plans.
type DashboardHandler struct {
	svc       dashboardService
	sessions  sessionEvents
	heartbeat time.Duration
	log       *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler. heartbeat is the interval
// of keep-alive comments on the event stream.
func NewDashboardHandler(svc dashboardService, sessions sessionEvents, heartbeat time.Duration, logger *slog.Logger) *DashboardHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &DashboardHandler{
		svc:       svc,
		sessions:  sessions,
		heartbeat: heartbeat,
		log:       logger.With("handler", "dashboard"),
	}
}

type dashboardResponse struct {
	Username string            `json:"username"`
	Link     string            `json:"link"`
	Messages []messageResponse `json:"messages"`
}

type sharePlanResponse struct {
	Platform      string `json:"platform"`
	Action        string `json:"action"`
	URL           string `json:"url,omitempty"`
	Text          string `json:"text"`
	Link          string `json:"link"`
	ClipboardText string `json:"clipboardText"`
}

// Messages handles GET /dashboard/messages.
func (h *DashboardHandler) Messages(w http.ResponseWriter, r *http.Request) {
	owner, err := h.svc.Owner(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.List(r.Context(), owner.Username)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Username: owner.Username,
		Link:     h.svc.PersonalLink(owner.Username),
		Messages: toMessageResponses(list),
	})
}

// Stream handles GET /dashboard/stream as Server-Sent Events. The first
// event is a "snapshot" of the stored feed; every later push is a "message"
// event. The stream ends when the client leaves, the server shuts down or
// the owner signs out.
func (h *DashboardHandler) Stream(w http.ResponseWriter, r *http.Request) {
	owner, err := h.svc.Owner(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	unsubscribe := h.sessions.Subscribe(func(ev session.Event) {
		if ev.Kind == session.SignedOut && ev.UserID == owner.UserID {
			cancel()
		}
	})
	defer unsubscribe()

	feed, sub, err := h.svc.Open(ctx, owner.Username)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer sub.Close() //nolint:errcheck

	rc := http.NewResponseController(w)
	// The stream outlives the server's write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "snapshot", toMessageResponses(feed.Messages())); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		h.log.ErrorContext(ctx, "event stream not flushable", slog.String("error", err.Error()))
		return
	}

	h.log.DebugContext(ctx, "stream opened", slog.String("username", owner.Username))
	defer h.log.DebugContext(context.WithoutCancel(ctx), "stream closed", slog.String("username", owner.Username))

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-sub.Events():
			if !ok {
				return
			}
			if !feed.Prepend(m) {
				continue
			}
			if err := writeEvent(w, "message", toMessageResponse(m)); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

// Share handles GET /dashboard/messages/{id}/share?platform=.
func (h *DashboardHandler) Share(w http.ResponseWriter, r *http.Request) {
	owner, err := h.svc.Owner(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a valid UUID"))
		return
	}

	platform, err := share.ParsePlatform(r.URL.Query().Get("platform"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	plan, err := h.svc.Share(r.Context(), owner.Username, id, platform, i18n.FromContext(r.Context()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sharePlanResponse{
		Platform:      plan.Platform.String(),
		Action:        string(plan.Action),
		URL:           plan.URL,
		Text:          plan.Text,
		Link:          plan.Link,
		ClipboardText: plan.ClipboardText(),
	})
}

// Export handles POST /dashboard/export. The feature is permanently disabled.
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Export(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
