package entity

// DocumentKind selects which printable page the PDF exporter renders.
type DocumentKind string

const (
	DocumentResume      DocumentKind = "resume"
	DocumentCoverLetter DocumentKind = "cover-letter"
)

// DocumentRequest is a PDF export request.
type DocumentRequest struct {
	Kind   DocumentKind `json:"kind"`
	Locale string       `json:"locale,omitempty"`
}

// Document is a rendered single-page PDF.
type Document struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}
