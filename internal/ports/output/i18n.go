package output

// T exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	// A "count" entry selects the plural form when the message has one.
	T(locale, key string, data map[string]any) string
}

// Localizer is a translator already bound to one locale.
type Localizer interface {
	T(key string, data map[string]any) string
}

// Bind returns a Localizer rendering every message in locale.
func Bind(t T, locale string) Localizer {
	return boundT{t: t, locale: locale}
}

type boundT struct {
	t      T
	locale string
}

func (b boundT) T(key string, data map[string]any) string {
	return b.t.T(b.locale, key, data)
}
