package routes

import (
	"embed"
	"html/template"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"reminder-app/reminder/models"
	"reminder-app/reminder/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"truncate":      truncate,
	"priorityClass": priorityClass,
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

// render writes a page, draining pending flashes into it. The session is
// saved first since the cookie has to precede the body.
func render(c *gin.Context, status int, name string, data gin.H) {
	s := session.Default(c)
	data["Flashes"] = s.Flashes()
	if err := s.Save(c); err != nil {
		c.Error(err)
	}
	c.HTML(status, name, data)
}

// redirectWithFlash queues message for the next page and redirects there.
func redirectWithFlash(c *gin.Context, location, message string) {
	s := session.Default(c)
	if message != "" {
		s.AddFlash(message)
	}
	if err := s.Save(c); err != nil {
		c.Error(err)
	}
	c.Redirect(http.StatusFound, location)
}

// renderError records err for the request log and answers with a generic page.
func renderError(c *gin.Context, err error) {
	c.Error(err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Message":   "Interner Fehler.",
		"RequestID": c.Writer.Header().Get("X-Request-ID"),
	})
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "…"
}

func priorityClass(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return "high"
	case models.PriorityLow:
		return "low"
	default:
		return "normal"
	}
}
