package i18n

import (
	"strings"

	"portfolio/internal/application/port/output"
)

var _ output.Translator = (*Translator)(nil)

// Catalog maps namespace to key to template. Templates interpolate
// {param} placeholders from the params map.
type Catalog map[string]map[string]string

type Translator struct {
	catalog Catalog
}

func New(catalog Catalog) *Translator {
	if catalog == nil {
		catalog = Catalog{}
	}
	return &Translator{catalog: catalog}
}

// Default returns the built-in English catalog used by the site.
func Default() *Translator {
	return New(Catalog{
		"contact": {
			"notification_subject": "New contact message: {subject}",
			"notification_body":    "From: {name} <{email}>\n\n{message}",
			"confirmation_subject": "Thanks for reaching out, {name}",
			"confirmation_body":    "Hi {name},\n\nI received your message and will get back to you soon.\n\nYour message:\n{message}",
		},
		"documents": {
			"resume_filename":       "resume-{locale}.pdf",
			"cover-letter_filename": "cover-letter-{locale}.pdf",
		},
	})
}

// Get resolves a template and interpolates params. A missing entry
// returns "namespace.key" so the caller still renders something legible.
func (t *Translator) Get(namespace, key string, params map[string]string) string {
	ns, ok := t.catalog[namespace]
	if !ok {
		return namespace + "." + key
	}
	tmpl, ok := ns[key]
	if !ok {
		return namespace + "." + key
	}
	for name, value := range params {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", value)
	}
	return tmpl
}
