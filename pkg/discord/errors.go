package discord

import "anibot/internal/domain"

// ErrorKey maps an error to the translation key of its user-facing message.
// Errors without a domain code get the generic message.
func ErrorKey(err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return "error_" + code
	}
	return "error_generic"
}
