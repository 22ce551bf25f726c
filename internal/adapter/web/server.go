package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"portfolio/internal/application/port/input"
	"portfolio/internal/application/port/output"
	"portfolio/internal/domain/entity"
	"portfolio/internal/usecase/contact"
)

// contactService and documentService are the two usecases the adapter
// fronts, narrowed to what the handlers call.
type contactService interface {
	Submit(ctx context.Context, form entity.ContactForm) (entity.ContactValidation, error)
}

type documentService interface {
	Export(ctx context.Context, req entity.DocumentRequest) (entity.Document, error)
}

type placeholderService interface {
	LQIP(src []byte) (string, error)
}

type Config struct {
	Addr        string
	ServiceName string
}

type Server struct {
	cfg     Config
	srv     *http.Server
	logger  output.LoggerPort
	contact      contactService
	resume       documentService
	placeholders placeholderService
	compute      input.ComputeService
}

func NewServer(
	cfg Config,
	contactUC contactService,
	resumeUC documentService,
	placeholders placeholderService,
	compute input.ComputeService,
	logger output.LoggerPort,
) *Server {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "portfolio"
	}

	s := &Server{
		cfg:          cfg,
		logger:       logger,
		contact:      contactUC,
		resume:       resumeUC,
		placeholders: placeholders,
		compute:      compute,
	}

	requestLogger := httplog.NewLogger(cfg.ServiceName, httplog.Options{
		Concise: true,
		JSON:    true,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httplog.RequestLogger(requestLogger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", s.handleContact)
		r.Post("/resume/pdf", s.handleResumePDF)
		r.Post("/images/placeholder", s.handlePlaceholder)
		r.Get("/healthz", s.handleHealthz)
	})

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening", "addr", s.cfg.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http serve: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var form entity.ContactForm
	if !decodeJSON(w, r, &form) {
		return
	}

	validation, err := s.contact.Submit(r.Context(), form)
	switch {
	case errors.Is(err, contact.ErrInvalidForm):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "validation failed",
			"validation": validation,
		})
	case err != nil:
		s.logger.Error("Contact submission failed", "error", err)
		writeError(w, http.StatusBadGateway, "message could not be delivered")
	default:
		writeJSON(w, http.StatusAccepted, map[string]any{
			"status":     "sent",
			"validation": validation,
		})
	}
}

func (s *Server) handleResumePDF(w http.ResponseWriter, r *http.Request) {
	var req entity.DocumentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Kind == "" {
		req.Kind = entity.DocumentResume
	}

	doc, err := s.resume.Export(r.Context(), req)
	if err != nil {
		var renderErr *output.RenderError
		if errors.As(err, &renderErr) {
			writeError(w, renderErr.Status, renderErr.Detail)
			return
		}
		s.logger.Error("Document export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "document export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}

func (s *Server) handlePlaceholder(w http.ResponseWriter, r *http.Request) {
	src, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImageBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "image too large")
		return
	}
	if len(src) == 0 {
		writeError(w, http.StatusBadRequest, "empty image body")
		return
	}

	lqip, err := s.placeholders.LQIP(src)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "unsupported image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"lqip": lqip})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	health := s.compute.LastHealth()
	if health == nil {
		writeJSON(w, http.StatusOK, map[string]any{"status": "starting"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"worker": health,
	})
}
