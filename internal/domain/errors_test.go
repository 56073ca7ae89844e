package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: errors.New("boom"), want: ""},
		{name: "sentinel", err: ErrNotTracked, want: "not_tracked"},
		{name: "wrapped", err: fmt.Errorf("lookup 42: %w", ErrMediaNotFound), want: "media_not_found"},
		{name: "joined", err: fmt.Errorf("track 42: %w", errors.Join(ErrNotTracked, ErrMediaNotFound)), want: "media_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestCodeIsStableForSeveralDomainErrors(t *testing.T) {
	err := fmt.Errorf("untrack 7: %w", errors.Join(ErrAlreadyTracked, ErrNotTracked, ErrUnknownMediaType))
	for range 50 {
		assert.Equal(t, "unknown_media_type", Code(err))
	}
}
