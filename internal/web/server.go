// Package web renders the server-side HTML front end: landing, link
// generator, dashboard, admin, auth and the public submission form.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/internal/i18n"
	"github.com/heartmarshall/positive-vibes/internal/service/admin"
	authsvc "github.com/heartmarshall/positive-vibes/internal/service/auth"
	messagesvc "github.com/heartmarshall/positive-vibes/internal/service/message"
	"github.com/heartmarshall/positive-vibes/internal/service/session"
	"github.com/heartmarshall/positive-vibes/internal/share"
	"github.com/heartmarshall/positive-vibes/internal/transport/middleware"
	"github.com/heartmarshall/positive-vibes/pkg/ctxutil"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const maxFormBytes = 16 << 10

type sessionService interface {
	Load(ctx context.Context, accessToken, refreshToken string) (session.State, error)
	SignIn(ctx context.Context, email, password string) (session.State, error)
	SignUp(ctx context.Context, email, password, username string) (session.State, error)
	CreateProfile(ctx context.Context, st session.State, username string) (session.State, error)
	SignOut(ctx context.Context, sess *session.Session) (session.State, error)
}

type messageService interface {
	Submit(ctx context.Context, input messagesvc.SubmitInput) (*domain.Message, error)
}

type dashboardService interface {
	List(ctx context.Context, username string) ([]domain.Message, error)
	PersonalLink(username string) string
}

type adminService interface {
	Overview(ctx context.Context) (*admin.Overview, error)
	Promote(ctx context.Context, username string) (*admin.Overview, error)
}

// Options configures cookie handling.
type Options struct {
	RefreshTTL    time.Duration
	SecureCookies bool
}

// Server renders the HTML views chosen by Resolve.
type Server struct {
	log       *slog.Logger
	sessions  sessionService
	messages  messageService
	dashboard dashboardService
	admin     adminService
	opts      Options
	pages     map[View]*template.Template
}

// New parses the embedded templates and creates a Server.
func New(logger *slog.Logger, sessions sessionService, messages messageService, dash dashboardService, adm adminService, opts Options) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Server{
		log:       logger.With("handler", "web"),
		sessions:  sessions,
		messages:  messages,
		dashboard: dash,
		admin:     adm,
		opts:      opts,
		pages:     pages,
	}, nil
}

var templateFuncs = template.FuncMap{
	"t":    i18n.Lookup,
	"date": i18n.FormatDate,
	"num":  i18n.FormatNumber,
}

func parsePages() (map[View]*template.Template, error) {
	views := []View{ViewLanding, ViewGenerator, ViewDashboard, ViewAdmin, ViewAuth, ViewSubmission, ViewNotFound}
	pages := make(map[View]*template.Template, len(views))
	for _, v := range views {
		tmpl, err := template.New(string(v)).Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+string(v)+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", v, err)
		}
		pages[v] = tmpl
	}
	return pages, nil
}

// Static serves the embedded stylesheet and script under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: " + err.Error())
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

// page is the data every template receives.
type page struct {
	Locale      i18n.Locale
	OtherLocale i18n.Locale
	State       session.State
	Notice      string
	Error       string
	Data        any
	Client      map[string]any
}

// ServeHTTP loads the caller's session, routes the request and renders the
// resulting view.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	st := s.loadState(w, r)

	d := Resolve(r.Method, r.URL.Path, st)
	switch {
	case d.IsRedirect():
		http.Redirect(w, r, d.Redirect, http.StatusSeeOther)
		return
	case d.Status == http.StatusMethodNotAllowed:
		http.Error(w, http.StatusText(d.Status), d.Status)
		return
	}

	r = r.WithContext(callerContext(r.Context(), st))

	switch d.View {
	case ViewLanding:
		s.render(w, r, http.StatusOK, ViewLanding, st, nil, pageMessages{})
	case ViewGenerator:
		s.generator(w, r, st)
	case ViewDashboard:
		s.dashboardView(w, r, st)
	case ViewAdmin:
		s.adminView(w, r, st)
	case ViewAuth:
		s.authView(w, r, st)
	case ViewSignOut:
		s.signOut(w, r, st)
	case ViewSubmission:
		s.submission(w, r, st, d.Username)
	default:
		s.render(w, r, http.StatusNotFound, ViewNotFound, st, nil, pageMessages{})
	}
}

// loadState resolves the session from the cookies and persists a rotated pair.
func (s *Server) loadState(w http.ResponseWriter, r *http.Request) session.State {
	access, refresh := middleware.SessionTokens(r)
	st, err := s.sessions.Load(r.Context(), access, refresh)
	if err != nil {
		s.log.ErrorContext(r.Context(), "load session", slog.String("error", err.Error()))
		return session.State{}
	}
	if st.Rotated {
		s.setCookies(w, st)
	}
	return st
}

// callerContext carries the caller into service calls. The role comes from
// the stored profile, which is fresher than the token claim.
func callerContext(ctx context.Context, st session.State) context.Context {
	if !st.SignedIn() {
		return ctx
	}
	ctx = ctxutil.WithUserID(ctx, st.Session.UserID)
	role := st.Session.Role
	if st.Profile != nil {
		role = st.Profile.Role.String()
	}
	return ctxutil.WithRole(ctx, role)
}

func (s *Server) setCookies(w http.ResponseWriter, st session.State) {
	middleware.SetSessionCookies(w, st.Session.AccessToken, st.Session.RefreshToken, s.opts.RefreshTTL, s.opts.SecureCookies)
}

// pageMessages are localization keys for the notices above the content.
type pageMessages struct {
	notice string
	err    string
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, v View, st session.State, data any, msgs pageMessages) {
	l := i18n.FromContext(r.Context())
	other := i18n.Bengali
	if l == i18n.Bengali {
		other = i18n.English
	}

	p := page{
		Locale:      l,
		OtherLocale: other,
		State:       st,
		Data:        data,
		Client: map[string]any{
			"strings":    i18n.Strings(l),
			"dateLocale": l.Tag().String(),
		},
	}
	if msgs.notice != "" {
		p.Notice = i18n.Lookup(l, msgs.notice)
	}
	if msgs.err != "" {
		p.Error = i18n.Lookup(l, msgs.err)
	}

	var buf bytes.Buffer
	if err := s.pages[v].ExecuteTemplate(&buf, "layout", p); err != nil {
		s.log.ErrorContext(r.Context(), "render view",
			slog.String("view", string(v)),
			slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w) //nolint:errcheck
}

// ---------------------------------------------------------------------------
// Generator / Dashboard
// ---------------------------------------------------------------------------

type generatorData struct {
	Link string
}

func (s *Server) generator(w http.ResponseWriter, r *http.Request, st session.State) {
	var data generatorData
	if st.HasProfile() {
		data.Link = s.dashboard.PersonalLink(st.Profile.Username)
	}
	s.render(w, r, http.StatusOK, ViewGenerator, st, data, pageMessages{})
}

type messageView struct {
	ID   string
	Text string
	Date string
	ISO  string
}

type dashboardData struct {
	Username  string
	Link      string
	Messages  []messageView
	Platforms []share.Platform
}

func (s *Server) dashboardView(w http.ResponseWriter, r *http.Request, st session.State) {
	username := st.Profile.Username
	data := dashboardData{
		Username:  username,
		Link:      s.dashboard.PersonalLink(username),
		Platforms: share.Platforms(),
	}

	list, err := s.dashboard.List(r.Context(), username)
	if err != nil {
		s.log.ErrorContext(r.Context(), "load dashboard", slog.String("error", err.Error()))
		s.render(w, r, http.StatusInternalServerError, ViewDashboard, st, data, pageMessages{err: "loadFailed"})
		return
	}

	l := i18n.FromContext(r.Context())
	for _, m := range list {
		data.Messages = append(data.Messages, messageView{
			ID:   m.ID.String(),
			Text: m.Message,
			Date: i18n.FormatDate(l, m.CreatedAt),
			ISO:  m.CreatedAt.Format(time.RFC3339),
		})
	}
	s.render(w, r, http.StatusOK, ViewDashboard, st, data, pageMessages{})
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

func (s *Server) adminView(w http.ResponseWriter, r *http.Request, st session.State) {
	ctx := r.Context()
	var msgs pageMessages

	var (
		o   *admin.Overview
		err error
	)
	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		o, err = s.admin.Promote(ctx, r.PostForm.Get("username"))
		if err == nil {
			msgs.notice = "promoted"
		} else {
			s.log.WarnContext(ctx, "promote failed", slog.String("error", err.Error()))
			msgs.err = "loadFailed"
		}
	}
	if o == nil {
		o, err = s.admin.Overview(ctx)
	}
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUnauthorized) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.log.ErrorContext(ctx, "admin overview", slog.String("error", err.Error()))
		s.render(w, r, http.StatusInternalServerError, ViewAdmin, st, &admin.Overview{}, pageMessages{err: "loadFailed"})
		return
	}

	s.render(w, r, http.StatusOK, ViewAdmin, st, o, msgs)
}

// ---------------------------------------------------------------------------
// Auth / Sign out
// ---------------------------------------------------------------------------

type authData struct {
	Email    string
	Username string
}

func (s *Server) authView(w http.ResponseWriter, r *http.Request, st session.State) {
	if r.Method != http.MethodPost {
		s.render(w, r, http.StatusOK, ViewAuth, st, authData{}, pageMessages{})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := r.PostForm
	data := authData{Email: form.Get("email"), Username: form.Get("username")}

	var (
		next session.State
		err  error
	)
	switch form.Get("action") {
	case "signin":
		if st.SignedIn() {
			break
		}
		next, err = s.sessions.SignIn(r.Context(), form.Get("email"), form.Get("password"))
	case "signup":
		if st.SignedIn() {
			break
		}
		next, err = s.sessions.SignUp(r.Context(), form.Get("email"), form.Get("password"), form.Get("username"))
	case "profile":
		next, err = s.sessions.CreateProfile(r.Context(), st, form.Get("username"))
		if errors.Is(err, domain.ErrConflict) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	default:
		s.render(w, r, http.StatusBadRequest, ViewAuth, st, data, pageMessages{err: "invalidInput"})
		return
	}
	if err != nil {
		status, key := authFailure(err)
		if status == http.StatusInternalServerError {
			s.log.ErrorContext(r.Context(), "auth form", slog.String("error", err.Error()))
		}
		s.render(w, r, status, ViewAuth, st, data, pageMessages{err: key})
		return
	}

	if next.SignedIn() && next.Session.AccessToken != "" {
		s.setCookies(w, next)
	}
	target := "/generator"
	if next.SignedIn() && !next.HasProfile() {
		target = "/auth"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// authFailure maps an auth error to a status and a localized notice key.
func authFailure(err error) (int, string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		if msg, _ := ve.Lookup("username"); msg == authsvc.UsernameTakenMessage {
			return http.StatusConflict, "usernameTaken"
		}
		return http.StatusBadRequest, "invalidInput"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "invalidCredentials"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "emailTaken"
	default:
		return http.StatusInternalServerError, "loadFailed"
	}
}

func (s *Server) signOut(w http.ResponseWriter, r *http.Request, st session.State) {
	if _, err := s.sessions.SignOut(r.Context(), st.Session); err != nil {
		s.log.ErrorContext(r.Context(), "sign out", slog.String("error", err.Error()))
	}
	middleware.ClearSessionCookies(w, s.opts.SecureCookies)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ---------------------------------------------------------------------------
// Submission
// ---------------------------------------------------------------------------

type submissionData struct {
	Username string
	Message  string
	Sent     bool
}

func (s *Server) submission(w http.ResponseWriter, r *http.Request, st session.State, username string) {
	data := submissionData{Username: username}
	if r.Method != http.MethodPost {
		s.render(w, r, http.StatusOK, ViewSubmission, st, data, pageMessages{})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	data.Message = r.PostForm.Get("message")

	if _, err := s.messages.Submit(r.Context(), messagesvc.SubmitInput{Username: username, Message: data.Message}); err != nil {
		status, key := submitFailure(err)
		if status == http.StatusInternalServerError {
			s.log.ErrorContext(r.Context(), "submit message", slog.String("error", err.Error()))
		}
		s.render(w, r, status, ViewSubmission, st, data, pageMessages{err: key})
		return
	}

	data.Message = ""
	data.Sent = true
	s.render(w, r, http.StatusOK, ViewSubmission, st, data, pageMessages{})
}

func submitFailure(err error) (int, string) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return http.StatusInternalServerError, "sendFailed"
	}
	switch msg, ok := ve.Lookup("message"); {
	case !ok:
		return http.StatusBadRequest, "invalidInput"
	case msg == "required":
		return http.StatusBadRequest, "messageRequired"
	case msg == domain.MessageInvalidText:
		return http.StatusBadRequest, "messageInvalid"
	default:
		return http.StatusBadRequest, "messageTooLong"
	}
}
