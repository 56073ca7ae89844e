package testsupport

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"anibot/internal/ports/output"
)

var _ output.T = (*Translator)(nil)

// Translator renders messages as "key[k=v,...]" so tests can assert on the
// exact template and parameters used. Messages without data render as "key".
// Every call is recorded.
type Translator struct {
	mu    sync.Mutex
	Calls []Call
}

// Call is one recorded translation.
type Call struct {
	Locale string
	Key    string
	Data   map[string]any
}

// NewLocalizer returns a fake translator bound to "en" and the translator itself.
func NewLocalizer() (output.Localizer, *Translator) {
	t := &Translator{}
	return output.Bind(t, "en"), t
}

func (t *Translator) T(locale, key string, data map[string]any) string {
	t.mu.Lock()
	t.Calls = append(t.Calls, Call{Locale: locale, Key: key, Data: data})
	t.mu.Unlock()
	return Render(key, data)
}

// Last returns the most recent call for key.
func (t *Translator) Last(key string) (Call, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.Calls) - 1; i >= 0; i-- {
		if t.Calls[i].Key == key {
			return t.Calls[i], true
		}
	}
	return Call{}, false
}

// Keys lists the keys translated so far, in call order.
func (t *Translator) Keys() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]string, 0, len(t.Calls))
	for _, c := range t.Calls {
		keys = append(keys, c.Key)
	}
	return keys
}

// Render is the fake rendering of key with data.
func Render(key string, data map[string]any) string {
	if len(data) == 0 {
		return key
	}
	names := make([]string, 0, len(data))
	for k := range data {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, k := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return key + "[" + strings.Join(parts, ",") + "]"
}
