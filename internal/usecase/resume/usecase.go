package resume

import (
	"context"
	"fmt"

	"portfolio/internal/application/port/output"
	"portfolio/internal/domain/entity"
)

const defaultLocale = "en"

// Config locates the printable pages the renderer prints.
type Config struct {
	// BaseURL is the site origin serving the print routes,
	// e.g. http://localhost:3000.
	BaseURL string
}

type UseCase struct {
	cfg        Config
	renderer   output.Renderer
	translator output.Translator
	logger     output.LoggerPort
}

func New(cfg Config, renderer output.Renderer, translator output.Translator, logger output.LoggerPort) *UseCase {
	return &UseCase{
		cfg:        cfg,
		renderer:   renderer,
		translator: translator,
		logger:     logger,
	}
}

// Export renders the printable page for the requested document kind and
// returns the PDF with a locale-aware filename.
func (uc *UseCase) Export(ctx context.Context, req entity.DocumentRequest) (entity.Document, error) {
	kind := req.Kind
	if kind != entity.DocumentResume && kind != entity.DocumentCoverLetter {
		return entity.Document{}, fmt.Errorf("unknown document kind %q", req.Kind)
	}

	locale := req.Locale
	if locale == "" {
		locale = defaultLocale
	}

	url := fmt.Sprintf("%s/print/%s?lang=%s", uc.cfg.BaseURL, kind, locale)
	uc.logger.Info("Rendering document", "kind", kind, "locale", locale)

	data, err := uc.renderer.Render(ctx, url, nil)
	if err != nil {
		uc.logger.Error("Document render failed", "kind", kind, "error", err)
		return entity.Document{}, fmt.Errorf("render %s: %w", kind, err)
	}

	filename := uc.translator.Get("documents", string(kind)+"_filename", map[string]string{
		"locale": locale,
	})
	return entity.Document{Filename: filename, Data: data}, nil
}
