package web

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/positive-vibes/internal/domain"
	"github.com/heartmarshall/positive-vibes/internal/service/session"
)

// View names a page of the front end.
type View string

const (
	ViewLanding    View = "landing"
	ViewGenerator  View = "generator"
	ViewDashboard  View = "dashboard"
	ViewAdmin      View = "admin"
	ViewAuth       View = "auth"
	ViewSubmission View = "submission"
	ViewSignOut    View = "signout"
	ViewNotFound   View = "notfound"
)

// Decision is the outcome of routing a request: a view to render, or a
// redirect. Status is set for answers that are neither.
type Decision struct {
	View     View
	Redirect string
	// Username is the recipient of a submission view.
	Username string
	Status   int
}

// IsRedirect reports whether the decision is a redirect.
func (d Decision) IsRedirect() bool { return d.Redirect != "" }

func render(v View) Decision { return Decision{View: v} }
func redirect(path string) Decision { return Decision{Redirect: path} }
func methodNotAllowed() Decision { return Decision{Status: http.StatusMethodNotAllowed} }
func notFound() Decision { return Decision{View: ViewNotFound, Status: http.StatusNotFound} }
func isRead(method string) bool { return method == http.MethodGet || method == http.MethodHead }
func isReadOrPost(method string) bool { return isRead(method) || method == http.MethodPost }

// Resolve maps a request to a view for the caller's session state. It has
// no side effects.
func Resolve(method, path string, st session.State) Decision {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}

	switch path {
	case "/":
		if !isRead(method) {
			return methodNotAllowed()
		}
		return render(ViewLanding)

	case "/generator":
		if !isRead(method) {
			return methodNotAllowed()
		}
		if st.SignedIn() && !st.HasProfile() {
			return redirect("/auth")
		}
		return render(ViewGenerator)

	case "/dashboard":
		if !isRead(method) {
			return methodNotAllowed()
		}
		if !st.HasProfile() {
			return redirect("/auth")
		}
		return render(ViewDashboard)

	case "/admin":
		if !isReadOrPost(method) {
			return methodNotAllowed()
		}
		if !st.HasProfile() {
			return redirect("/auth")
		}
		if !st.IsAdmin() {
			return redirect("/")
		}
		return render(ViewAdmin)

	case "/auth":
		if !isReadOrPost(method) {
			return methodNotAllowed()
		}
		if st.HasProfile() {
			return redirect("/")
		}
		return render(ViewAuth)

	case "/signout":
		if method != http.MethodPost {
			return methodNotAllowed()
		}
		return render(ViewSignOut)
	}

	// Anything that could not have been signed up as a username is not a link.
	username := domain.NormalizeUsername(strings.TrimPrefix(path, "/"))
	if strings.Contains(username, "/") || domain.ValidateUsername(username) != "" {
		return notFound()
	}
	if !isReadOrPost(method) {
		return methodNotAllowed()
	}
	return Decision{View: ViewSubmission, Username: username}
}
