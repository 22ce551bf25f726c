package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/adapter/web"
	"portfolio/internal/client"
	"portfolio/internal/domain/entity"
	"portfolio/internal/infrastructure/i18n"
	"portfolio/internal/infrastructure/images"
	"portfolio/internal/infrastructure/logger"
	"portfolio/internal/usecase/contact"
	"portfolio/internal/usecase/resume"
)

type captureMailer struct {
	sent []entity.ContactForm
}

func (m *captureMailer) Send(_ context.Context, form entity.ContactForm) error {
	m.sent = append(m.sent, form)
	return nil
}

type staticRenderer struct{}

func (staticRenderer) Render(context.Context, string, map[string]string) ([]byte, error) {
	return []byte("%PDF-1.4 static"), nil
}

func (staticRenderer) Close() error { return nil }

// newStack wires the real worker, client, usecases, and HTTP adapter
// together; only the outbound SMTP and browser edges are replaced.
func newStack(t *testing.T) (http.Handler, *captureMailer) {
	t.Helper()
	log := logger.NewNop()

	compute := client.New(log)
	t.Cleanup(compute.Stop)

	mailer := &captureMailer{}
	contactUC := contact.New(compute, mailer, log)
	resumeUC := resume.New(resume.Config{BaseURL: "http://localhost:3000"}, staticRenderer{}, i18n.Default(), log)

	srv := web.NewServer(web.Config{Addr: ":0"}, contactUC, resumeUC, images.NewPlaceholderService(), compute, log)
	return srv.Handler(), mailer
}

func TestStack_ContactSubmission(t *testing.T) {
	handler, mailer := newStack(t)

	body, err := json.Marshal(entity.ContactForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "I would like to discuss a project with you.",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].Email)
}

func TestStack_ContactValidationRejectsThroughWorker(t *testing.T) {
	handler, mailer := newStack(t)

	body, err := json.Marshal(entity.ContactForm{
		Name:    "J",
		Email:   "not-an-email",
		Message: "short",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, mailer.sent)

	var resp struct {
		Validation entity.ContactValidation `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Validation.Fields["name"])
	assert.False(t, resp.Validation.Fields["email"])
	assert.False(t, resp.Validation.Fields["message"])
}

func TestStack_ResumeExport(t *testing.T) {
	handler, _ := newStack(t)

	body, err := json.Marshal(entity.DocumentRequest{Kind: entity.DocumentResume})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/resume/pdf", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume-en.pdf")
}

func TestStack_ImagePlaceholder(t *testing.T) {
	handler, _ := newStack(t)

	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 64, B: 192, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))

	req := httptest.NewRequest(http.MethodPost, "/api/images/placeholder", buf)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data:image/jpeg;base64,")
}

func TestStack_HealthzReflectsWorkerActivity(t *testing.T) {
	handler, _ := newStack(t)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "starting", "no health broadcast before the first task")
}
