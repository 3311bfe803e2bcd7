package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iedon/game-catalog-go/contact"
	"github.com/iedon/game-catalog-go/results"
	"github.com/iedon/game-catalog-go/site"
	"github.com/iedon/game-catalog-go/templatex"
)

const (
	darkModeCookie  = "darkMode"
	searchParam     = "search"
	maxContactBytes = 64 << 10
)

type searchResponse struct {
	State     string         `json:"state"`
	Query     string         `json:"query"`
	MinLength int            `json:"minLength,omitempty"`
	Nodes     []results.Node `json:"nodes"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	outcome := s.svc.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, searchResponse{
		State:     outcome.Kind.String(),
		Query:     outcome.Query,
		MinLength: outcome.MinLength,
		Nodes:     results.Render(outcome),
	})
}

func (s *Server) handleSearchIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	etag := s.svc.SearchIndexETag()
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(s.svc.SearchIndex())
	}
}

func (s *Server) handlePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var payload struct {
		DarkMode bool `json:"darkMode"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     darkModeCookie,
		Value:    strconv.FormatBool(payload.DarkMode),
		Path:     s.cfg.BasePath(),
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"darkMode": payload.DarkMode})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.Contact.Enabled {
		s.writeNotFound(w, r)
		return
	}
	opts := pageOptions(r)
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		html, err := s.svc.RenderContactPage(templatex.ContactView{}, opts)
		s.writePage(w, r, http.StatusOK, html, err)
	case http.MethodPost:
		if !s.contacts.Allow(remoteHost(r.RemoteAddr)) {
			writeError(w, http.StatusTooManyRequests, "too many submissions")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxContactBytes)
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form")
			return
		}
		form := contact.Form{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Message: r.PostForm.Get("message"),
		}
		view := templatex.ContactView{Name: form.Name, Email: form.Email, Message: form.Message}
		status := http.StatusOK
		if errs := contact.Validate(form); !errs.Valid() {
			view.Errors = errs
			status = http.StatusUnprocessableEntity
		} else {
			view = templatex.ContactView{Sent: true}
			s.logger.Info("contact submission", "name", strings.TrimSpace(form.Name), "email", form.Email, "chars", utf8.RuneCountInString(form.Message))
		}
		html, err := s.svc.RenderContactPage(view, opts)
		s.writePage(w, r, status, html, err)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if s.static.serve(w, r) {
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	opts := pageOptions(r)
	var (
		html []byte
		err  error
	)
	switch route := cleanPath(r.URL.Path); route {
	case "/", "/index", "/index.html":
		html, err = s.svc.RenderIndexPage(opts)
	case "/search-results", "/search-results.html":
		html, err = s.svc.RenderResultsPage(s.svc.Search(r.URL.Query().Get(searchParam)), opts)
	default:
		html, err = s.svc.RenderEntryPage(route, opts)
	}
	if errors.Is(err, site.ErrNotFound) {
		s.writeNotFound(w, r)
		return
	}
	s.writePage(w, r, http.StatusOK, html, err)
}

func (s *Server) writeNotFound(w http.ResponseWriter, r *http.Request) {
	html, err := s.svc.RenderNotFoundPage(r.URL.Path, pageOptions(r))
	s.writePage(w, r, http.StatusNotFound, html, err)
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, html []byte, err error) {
	if err != nil {
		s.logger.Error("render page", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	writeHTML(w, r, status, html)
}

func pageOptions(r *http.Request) site.PageOptions {
	cookie, err := r.Cookie(darkModeCookie)
	if err != nil {
		return site.PageOptions{}
	}
	return site.PageOptions{DarkMode: cookie.Value == "true"}
}
