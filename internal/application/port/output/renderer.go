package output

import "context"

// Renderer turns a printable page into a single-page PDF. FormFields maps
// CSS selectors to values injected before printing. Failures are reported
// as *RenderError where an HTTP-like status is known.
type Renderer interface {
	Render(ctx context.Context, url string, formFields map[string]string) ([]byte, error)
	Close() error
}

// RenderError is a structured rendering failure.
type RenderError struct {
	Status int
	Detail string
}

func (e *RenderError) Error() string {
	return e.Detail
}
