package output

// T looks up user-facing messages. Missing keys render as the key itself so a
// broken catalog never hides an answer from the user.
type T interface {
	// T renders key for locale; data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
	DefaultLocale() string
}
