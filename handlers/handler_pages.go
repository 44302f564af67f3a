package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MatBureau/devops-portfolio/internal/blog"
	"github.com/MatBureau/devops-portfolio/internal/metrics"
	"github.com/MatBureau/devops-portfolio/internal/pages"
	"github.com/MatBureau/devops-portfolio/internal/visitlog"
)

// Site serves the portfolio pages and records each visit in Journal.
type Site struct {
	PublicDir string
	Journal   *visitlog.Journal
	Renderer  *pages.Renderer
	Posts     *blog.Store
	Metrics   *metrics.Metrics
}

func (s *Site) visit(page, message string) {
	err := s.Journal.Append(message)
	if err != nil {
		slog.Warn("visit log append failed", "page", page, "err", err)
	}
	s.Metrics.ObserveVisit(page, err)
}

// File serves a file under PublicDir after recording the visit.
func (s *Site) File(page, message string, elem ...string) http.HandlerFunc {
	path := filepath.Join(append([]string{s.PublicDir}, elem...)...)
	return func(w http.ResponseWriter, r *http.Request) {
		s.visit(page, message)
		http.ServeFile(w, r, path)
	}
}

// Wrapped renders a fragment under PublicDir inside the site layout.
func (s *Site) Wrapped(page, message string, elem ...string) http.HandlerFunc {
	path := filepath.Join(append([]string{s.PublicDir}, elem...)...)
	return func(w http.ResponseWriter, r *http.Request) {
		s.visit(page, message)
		content, err := os.ReadFile(path)
		if err != nil {
			slog.Error("reading page", "path", path, "err", err)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.renderHTML(w, func(buf *bytes.Buffer) error { return s.Renderer.Layout(buf, content) })
	}
}

func (s *Site) BlogIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := s.Posts.List()
	if err != nil {
		slog.Error("loading posts", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.renderHTML(w, func(buf *bytes.Buffer) error { return s.Renderer.BlogIndex(buf, posts) })
}

func (s *Site) BlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.Posts.Find(r.PathValue("id"))
	if errors.Is(err, blog.ErrNotFound) {
		writeText(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		slog.Error("loading posts", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.renderHTML(w, func(buf *bytes.Buffer) error { return s.Renderer.BlogPost(buf, *post) })
}

func (s *Site) renderHTML(w http.ResponseWriter, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Error("rendering page", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
