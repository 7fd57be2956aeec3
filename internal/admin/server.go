// HTTP front end serving the parameter manual
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"sar2tools/internal/manual"
)

const cookiePrefix = "sar2_"

// Server serves one manual document. Preferences live in cookies so every
// browser keeps its own filter.
type Server struct {
	Doc *manual.Document
	log *slog.Logger
	mux *http.ServeMux
}

// NewServer wires the routes for doc.
func NewServer(doc *manual.Document, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{Doc: doc, log: log.With("component", "admin"), mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /index.json", s.handleIndexJSON)
	s.mux.HandleFunc("GET /manual.pdf", s.handlePDF)
	s.mux.HandleFunc("GET /record/{name}", s.handleRecord)
	s.mux.HandleFunc("POST /prefs", s.handlePrefs)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start listens on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("serving manual", "addr", addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) prefs(r *http.Request) manual.Preferences {
	return manual.LoadPreferences(cookieStore{r: r})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Doc.WriteHTML(w, manual.PageOptions{Prefs: s.prefs(r), PrefsAction: "/prefs"}); err != nil {
		s.log.Error("render page", "err", err)
	}
}

func (s *Server) handleIndexJSON(w http.ResponseWriter, r *http.Request) {
	entries := manual.Filter(s.Doc.Index, s.prefs(r))
	if entries == nil {
		entries = []manual.NavEntry{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	p := s.prefs(r)
	w.Header().Set("Content-Type", "application/pdf")
	if err := s.Doc.WritePDF(w, manual.PDFOptions{Prefs: &p}); err != nil {
		s.log.Error("render pdf", "err", err)
	}
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.Doc.Lookup(r.PathValue("name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(manual.PlainText(rec)))
}

func (s *Server) handlePrefs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p := manual.Preferences{Types: []string{}, Filter: r.PostForm.Get("filter")}
	for _, t := range r.PostForm["types"] {
		if !p.Selected(t) {
			p = p.Toggle(t)
		}
	}
	if err := p.Save(cookieStore{w: w}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Debug("preferences saved", "types", p.Types, "filter", p.Filter)
	if r.Header.Get(syncHeader) != "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// syncHeader marks a background preference post from the page script.
const syncHeader = "X-Prefs-Sync"

// cookieStore reads preferences from a request and writes them to a response.
type cookieStore struct {
	r *http.Request
	w http.ResponseWriter
}

func (c cookieStore) Get(key string) (string, bool) {
	if c.r == nil {
		return "", false
	}
	ck, err := c.r.Cookie(cookiePrefix + key)
	if err != nil {
		return "", false
	}
	v, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return "", false
	}
	return v, true
}

func (c cookieStore) Set(key, value string) error {
	if c.w == nil {
		return errors.New("cookie store is read-only")
	}
	http.SetCookie(c.w, &http.Cookie{
		Name:     cookiePrefix + key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   365 * 24 * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
