package output

// Translator is a synchronous content lookup. Get returns the string under
// namespace/key with {param} placeholders interpolated; a missing entry
// yields "namespace.key" so gaps are visible instead of silent.
type Translator interface {
	Get(namespace, key string, params map[string]string) string
}
