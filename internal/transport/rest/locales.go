package rest

import (
	"net/http"

	"github.com/heartmarshall/positive-vibes/internal/i18n"
)

type localeResponse struct {
	Locale  string            `json:"locale"`
	Strings map[string]string `json:"strings"`
}

// Locale handles GET /locales/{lang} with the whole string table.
func Locale(w http.ResponseWriter, r *http.Request) {
	l, ok := i18n.Parse(r.PathValue("lang"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown locale")
		return
	}
	writeJSON(w, http.StatusOK, localeResponse{Locale: l.String(), Strings: i18n.Strings(l)})
}
