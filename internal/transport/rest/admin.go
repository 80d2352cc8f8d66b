package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/internal/service/admin"
)

type adminService interface {
	Overview(ctx context.Context) (*admin.Overview, error)
	Stats(ctx context.Context) (*domain.AdminStats, error)
	TopUsers(ctx context.Context) ([]domain.UserStat, error)
	Users(ctx context.Context) ([]domain.Profile, error)
	Promote(ctx context.Context, username string) (*admin.Overview, error)
}

// AdminHandler serves admin REST endpoints. Routes are mounted behind
// middleware.AdminOnly and the service checks the role again.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type statsResponse struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalMessages   int64 `json:"totalMessages"`
	ActiveUsernames int64 `json:"activeUsernames"`
}

type userStatResponse struct {
	Username     string    `json:"username"`
	MessageCount int64     `json:"messageCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type overviewResponse struct {
	Stats    statsResponse      `json:"stats"`
	TopUsers []userStatResponse `json:"topUsers"`
	Profiles []profileResponse  `json:"profiles"`
}

// Overview handles GET /admin/overview.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverviewResponse(o))
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(*s))
}

// TopUsers handles GET /admin/top-users.
func (h *AdminHandler) TopUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.TopUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserStatResponses(list))
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Users(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponses(list))
}

// Promote handles POST /admin/users/{username}/promote and answers with the
// refetched overview.
func (h *AdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Promote(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverviewResponse(o))
}

func toStatsResponse(s domain.AdminStats) statsResponse {
	return statsResponse{
		TotalUsers:      s.TotalUsers,
		TotalMessages:   s.TotalMessages,
		ActiveUsernames: s.ActiveUsernames,
	}
}

func toUserStatResponses(list []domain.UserStat) []userStatResponse {
	out := make([]userStatResponse, len(list))
	for i, u := range list {
		out[i] = userStatResponse{Username: u.Username, MessageCount: u.MessageCount, UpdatedAt: u.UpdatedAt}
	}
	return out
}

func toProfileResponses(list []domain.Profile) []profileResponse {
	out := make([]profileResponse, len(list))
	for i := range list {
		out[i] = *toProfileResponse(&list[i])
	}
	return out
}

func toOverviewResponse(o *admin.Overview) overviewResponse {
	return overviewResponse{
		Stats:    toStatsResponse(o.Stats),
		TopUsers: toUserStatResponses(o.TopUsers),
		Profiles: toProfileResponses(o.Profiles),
	}
}
