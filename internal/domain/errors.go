package domain

import "errors"

// Domain errors.
var (
	ErrMediaNotFound    = errors.New("media not found")
	ErrUnknownMediaType = errors.New("unknown media type")
	ErrInvalidContentID = errors.New("invalid content id")
	ErrAlreadyTracked   = errors.New("content already tracked")
	ErrNotTracked       = errors.New("content not tracked")
)

// errorCodes is ordered: when a chain carries several domain errors, the
// earliest entry wins.
var errorCodes = []struct {
	sentinel error
	code     string
}{
	{ErrMediaNotFound, "media_not_found"},
	{ErrUnknownMediaType, "unknown_media_type"},
	{ErrInvalidContentID, "invalid_content_id"},
	{ErrAlreadyTracked, "already_tracked"},
	{ErrNotTracked, "not_tracked"},
}

// Code returns the stable code of the domain error found in err's chain, or
// "" when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range errorCodes {
		if errors.Is(err, c.sentinel) {
			return c.code
		}
	}
	return ""
}
