package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

// Views holds the three routed pages.
type Views struct {
	Login        *Lazy
	Registration *Lazy
	Dashboard    *Lazy
}

func New(fallbackDelay time.Duration, logger zerolog.Logger) *Views {
	return &Views{
		Login:        NewLazy("login", parsePage("login.html"), fallbackDelay, logger),
		Registration: NewLazy("registration", parsePage("registration.html"), fallbackDelay, logger),
		Dashboard:    NewLazy("dashboard", parsePage("dashboard.html"), fallbackDelay, logger),
	}
}

var funcs = template.FuncMap{
	"join":        strings.Join,
	"title":       capitalize,
	"selectedAny": selectedAny,
}

func parsePage(name string) Loader {
	return func() (*template.Template, error) {
		return template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func selectedAny(choices []Choice) bool {
	for _, c := range choices {
		if c.Selected {
			return true
		}
	}
	return false
}

// Assets serves the embedded stylesheet and profile images under /assets/.
func Assets() http.Handler {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}
	files := http.StripPrefix("/assets/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}
