package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/chandra447/item-tracker/internal/aggregator"
	"github.com/chandra447/item-tracker/internal/middleware"
	"github.com/chandra447/item-tracker/internal/models"
)

// The page shells are deliberately minimal: they give the route gate real
// navigations to act on and the dashboard a server-rendered listing. All
// interactive behavior lives in the JSON API.
var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head><title>{{.Title}} - Item Tracker</title></head>
<body>
<h1>{{.Title}}</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Items}}<table>
<tr><th>Name</th><th>Latest price</th><th>Created</th></tr>
{{range .Items}}<tr>
<td>{{.Item.Name}}</td>
<td>{{if .LatestPrice}}{{printf "%.2f" .LatestPrice.Price}}{{else}}&mdash;{{end}}</td>
<td>{{.Item.Created.Format "Jan 2, 2006"}}</td>
</tr>{{end}}
</table>{{end}}
{{if .Body}}<p>{{.Body}}</p>{{end}}
</body>
</html>
`))

type pageData struct {
	Title string
	Body  string
	Error string
	Items []models.ItemWithPrice
}

func renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		slog.Error("page render failed", "page", data.Title, "error", err)
	}
}

// rootPage sends visitors to the dashboard or the login page depending on
// the auth cookie, mirroring the gate's rules.
func (h *Handler) rootPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess != nil && sess.IsValid() {
		http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
		return
	}
	http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
}

func (h *Handler) loginPage(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, pageData{Title: "Sign in", Body: "POST /api/login with email and password."})
}

func (h *Handler) registerPage(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, pageData{Title: "Create account", Body: "POST /api/register with name, email and password."})
}

func (h *Handler) forgotPasswordPage(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, pageData{Title: "Forgot password", Body: "POST /api/password-reset/request with your email."})
}

func (h *Handler) resetPasswordPage(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, pageData{Title: "Reset password", Body: "POST /api/password-reset/confirm with the emailed token."})
}

func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil || !sess.IsValid() {
		renderPage(w, pageData{Title: "Profile", Error: "Your session has expired. Please sign in again."})
		return
	}
	user, _ := sess.User()
	renderPage(w, pageData{Title: "Profile", Body: user.Name + " <" + user.Email + ">"})
}

// dashboardPage renders the aggregated item listing. The gate already
// bounced visitors without a cookie; a present-but-stale cookie surfaces
// here as a failed fetch.
func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil || !sess.IsValid() {
		renderPage(w, pageData{Title: "Dashboard", Error: "Your session has expired. Please sign in again."})
		return
	}
	user, _ := sess.User()

	items, err := h.agg.FetchItems(r.Context(), sess.Token(), user.ID)
	if err != nil {
		slog.Error("dashboard fetch failed", "user_id", user.ID, "error", err)
		renderPage(w, pageData{Title: "Dashboard", Error: "Could not load your items. Please try again."})
		return
	}
	aggregator.SortItems(items, aggregator.SortCreated)

	renderPage(w, pageData{Title: "Dashboard", Items: items})
}
