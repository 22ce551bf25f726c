package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/application/port/output"
	"portfolio/internal/domain/entity"
	"portfolio/internal/infrastructure/logger"
	"portfolio/internal/usecase/contact"
)

type stubContact struct {
	validation entity.ContactValidation
	err        error
}

func (s *stubContact) Submit(context.Context, entity.ContactForm) (entity.ContactValidation, error) {
	return s.validation, s.err
}

type stubResume struct {
	doc entity.Document
	err error
}

func (s *stubResume) Export(context.Context, entity.DocumentRequest) (entity.Document, error) {
	return s.doc, s.err
}

type stubCompute struct {
	health *entity.HealthReport
}

func (s *stubCompute) ProcessAnimations(context.Context, entity.AnimationRequest) []entity.AnimatedElement {
	return nil
}
func (s *stubCompute) OptimizeScroll(context.Context, entity.ScrollRequest) []entity.ScrollPosition {
	return nil
}
func (s *stubCompute) CalculateMetrics(context.Context, entity.MetricsRequest) entity.PerformanceReport {
	return entity.PerformanceReport{}
}
func (s *stubCompute) ProcessTestimonials(context.Context, []entity.Testimonial) []entity.ProcessedTestimonial {
	return nil
}
func (s *stubCompute) OptimizeProjects(context.Context, []entity.Project) []entity.OptimizedProject {
	return nil
}
func (s *stubCompute) CalculateStarRatings(context.Context, []entity.StarRatingInput) []entity.StarRating {
	return nil
}
func (s *stubCompute) ValidateContactForm(context.Context, entity.ContactForm) entity.ContactValidation {
	return entity.ContactValidation{}
}
func (s *stubCompute) OptimizeImages(context.Context, []entity.ImageInput) []entity.OptimizedImage {
	return nil
}
func (s *stubCompute) Stats(context.Context) entity.WorkerStats { return entity.WorkerStats{} }
func (s *stubCompute) ClearCache(context.Context) error         { return nil }
func (s *stubCompute) LastHealth() *entity.HealthReport         { return s.health }

type stubPlaceholders struct {
	lqip string
	err  error
}

func (s *stubPlaceholders) LQIP([]byte) (string, error) { return s.lqip, s.err }

func newTestServer(c *stubContact, r *stubResume, cp *stubCompute) *Server {
	if c == nil {
		c = &stubContact{}
	}
	if r == nil {
		r = &stubResume{}
	}
	if cp == nil {
		cp = &stubCompute{}
	}
	return NewServer(Config{Addr: ":0"}, c, r, &stubPlaceholders{lqip: "data:image/jpeg;base64,AA=="}, cp, logger.NewNop())
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleContact_Accepted(t *testing.T) {
	srv := newTestServer(&stubContact{
		validation: entity.ContactValidation{IsFormValid: true},
	}, nil, nil)

	rec := postJSON(t, srv.Handler(), "/api/contact", entity.ContactForm{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "A long enough message",
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sent", resp["status"])
}

func TestHandleContact_ValidationFailure(t *testing.T) {
	srv := newTestServer(&stubContact{
		validation: entity.ContactValidation{
			Fields: map[string]bool{"email": false},
		},
		err: contact.ErrInvalidForm,
	}, nil, nil)

	rec := postJSON(t, srv.Handler(), "/api/contact", entity.ContactForm{Email: "bad"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestHandleContact_DeliveryFailure(t *testing.T) {
	srv := newTestServer(&stubContact{
		validation: entity.ContactValidation{IsFormValid: true},
		err:        errors.New("smtp down"),
	}, nil, nil)

	rec := postJSON(t, srv.Handler(), "/api/contact", entity.ContactForm{})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleContact_BadBody(t *testing.T) {
	srv := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResumePDF_OK(t *testing.T) {
	srv := newTestServer(nil, &stubResume{
		doc: entity.Document{Filename: "resume-en.pdf", Data: []byte("%PDF-1.4")},
	}, nil)

	rec := postJSON(t, srv.Handler(), "/api/resume/pdf", entity.DocumentRequest{Kind: entity.DocumentResume})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume-en.pdf")
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
}

func TestHandleResumePDF_RenderErrorStatusPassthrough(t *testing.T) {
	srv := newTestServer(nil, &stubResume{
		err: &output.RenderError{Status: http.StatusBadGateway, Detail: "browser unreachable"},
	}, nil)

	rec := postJSON(t, srv.Handler(), "/api/resume/pdf", entity.DocumentRequest{Kind: entity.DocumentResume})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "browser unreachable")
}

func TestHandlePlaceholder(t *testing.T) {
	srv := newTestServer(nil, nil, nil)

	t.Run("returns data url", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/images/placeholder", bytes.NewReader([]byte{0xFF, 0xD8}))
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "data:image/jpeg;base64,")
	})

	t.Run("empty body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/images/placeholder", bytes.NewReader(nil))
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleHealthz(t *testing.T) {
	t.Run("before first health broadcast", func(t *testing.T) {
		srv := newTestServer(nil, nil, &stubCompute{})

		req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "starting")
	})

	t.Run("with worker health", func(t *testing.T) {
		srv := newTestServer(nil, nil, &stubCompute{
			health: &entity.HealthReport{
				Stats:     entity.WorkerStats{TasksCompleted: 3},
				CacheSize: 2,
				Timestamp: time.Now().UnixMilli(),
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp["status"])
	})
}
