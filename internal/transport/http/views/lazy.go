package views

import (
	"bytes"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FallbackHTML is served while a view is still loading.
const FallbackHTML = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><meta http-equiv="refresh" content="1"><title>Employee Payroll</title></head>
<body><div>Loading...</div></body>
</html>
`

type Loader func() (*template.Template, error)

type attempt struct {
	done chan struct{}
	tmpl *template.Template
	err  error
}

// Lazy defers loading a view until the first request that needs it. Page
// navigations that arrive before the view is ready get the fallback page;
// form posts wait for it.
type Lazy struct {
	name   string
	loader Loader
	delay  time.Duration
	logger zerolog.Logger

	mu      sync.Mutex
	current *attempt
}

func NewLazy(name string, loader Loader, delay time.Duration, logger zerolog.Logger) *Lazy {
	return &Lazy{
		name:   name,
		loader: loader,
		delay:  delay,
		logger: logger.With().Str("view", name).Logger(),
	}
}

// Ready reports whether the view has loaded successfully.
func (l *Lazy) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return false
	}
	select {
	case <-l.current.done:
		return l.current.err == nil
	default:
		return false
	}
}

func (l *Lazy) start() *attempt {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		select {
		case <-l.current.done:
			if l.current.err == nil {
				return l.current
			}
		default:
			return l.current
		}
	}
	a := &attempt{done: make(chan struct{})}
	l.current = a
	go l.load(a)
	return a
}

func (l *Lazy) load(a *attempt) {
	started := time.Now()
	a.tmpl, a.err = l.loader()
	if a.err != nil {
		l.logger.Error().Err(a.err).Msg("view load failed")
	} else {
		l.logger.Debug().Dur("took", time.Since(started)).Msg("view loaded")
	}
	close(a.done)
}

// Render writes the view with data and reports whether data reached the
// client. A failed load answers 500 and is retried by the next request.
func (l *Lazy) Render(w http.ResponseWriter, r *http.Request, status int, data any) bool {
	a := l.start()

	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		timer := time.NewTimer(l.delay)
		defer timer.Stop()
		select {
		case <-a.done:
		case <-timer.C:
			writeFallback(w)
			return false
		case <-r.Context().Done():
			return false
		}
	} else {
		select {
		case <-a.done:
		case <-r.Context().Done():
			return false
		}
	}

	if a.err != nil {
		http.Error(w, "view unavailable", http.StatusInternalServerError)
		return false
	}
	if err := renderHTMLTemplate(w, status, a.tmpl, data); err != nil {
		l.logger.Error().Err(err).Msg("template render failed")
		http.Error(w, "template render failed", http.StatusInternalServerError)
		return false
	}
	return true
}

func writeFallback(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(FallbackHTML))
}

func renderHTMLTemplate(w http.ResponseWriter, status int, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
