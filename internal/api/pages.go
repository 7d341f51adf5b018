package api

import "net/http"

type contentPageData struct {
	Title    string
	Username string
}

// StaticPage returns a handler rendering one of the fixed content pages.
// The authenticated username is shown when the page sits behind the gate.
func StaticPage(tmpl, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, _ := CurrentUser(r.Context())
		renderPage(w, http.StatusOK, tmpl, contentPageData{Title: title, Username: username})
	}
}
