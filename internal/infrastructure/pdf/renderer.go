package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"portfolio/internal/application/port/output"
)

var _ output.Renderer = (*RodRenderer)(nil)

// A4 in inches, portrait.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

type Config struct {
	Headless  bool
	NoSandbox bool
	Timeout   time.Duration
}

func DefaultConfig() Config {
	return Config{
		Headless:  true,
		NoSandbox: false,
		Timeout:   30 * time.Second,
	}
}

// RodRenderer prints a page to a single-page PDF through headless Chrome.
// One browser serves the renderer's lifetime; each Render gets its own tab.
type RodRenderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

func NewRodRenderer(cfg Config) (*RodRenderer, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox)

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodRenderer{
		browser:  browser,
		launcher: l,
		timeout:  cfg.Timeout,
	}, nil
}

// Render navigates to url, fills the given selector→value pairs, and prints
// the result as an A4 portrait PDF with backgrounds.
func (r *RodRenderer) Render(ctx context.Context, url string, formFields map[string]string) ([]byte, error) {
	page, err := r.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, &output.RenderError{Status: http.StatusBadGateway, Detail: fmt.Sprintf("open page: %v", err)}
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(r.timeout)
	if err := page.WaitLoad(); err != nil {
		return nil, &output.RenderError{Status: http.StatusBadGateway, Detail: fmt.Sprintf("page load: %v", err)}
	}

	for selector, value := range formFields {
		el, err := page.Element(selector)
		if err != nil {
			return nil, &output.RenderError{Status: http.StatusUnprocessableEntity, Detail: fmt.Sprintf("form field not found: %s", selector)}
		}
		if err := el.Input(value); err != nil {
			return nil, &output.RenderError{Status: http.StatusUnprocessableEntity, Detail: fmt.Sprintf("fill %s: %v", selector, err)}
		}
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      gson.Num(paperWidthIn),
		PaperHeight:     gson.Num(paperHeightIn),
		PageRanges:      "1",
	})
	if err != nil {
		return nil, &output.RenderError{Status: http.StatusInternalServerError, Detail: fmt.Sprintf("print to pdf: %v", err)}
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, &output.RenderError{Status: http.StatusInternalServerError, Detail: fmt.Sprintf("read pdf stream: %v", err)}
	}
	return data, nil
}

func (r *RodRenderer) Close() error {
	if r.browser != nil {
		_ = r.browser.Close()
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher.Cleanup()
	}
	return nil
}
