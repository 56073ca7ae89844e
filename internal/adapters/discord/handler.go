package discord

import (
	"log/slog"

	"anibot/internal/ports/input"
	"anibot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	mediaUseCase      input.MediaUseCase
	watchlistUseCase  input.WatchlistUseCase
	releaseUseCase    input.ReleaseUseCase
	translator        output.T
	defaultLocale     string
	announceChannelID string
	logger            *slog.Logger
}

// NewHandler creates a Handler. Replies use the interaction locale and fall
// back to defaultLocale; release announcements always use defaultLocale.
func NewHandler(
	mediaUseCase input.MediaUseCase,
	watchlistUseCase input.WatchlistUseCase,
	releaseUseCase input.ReleaseUseCase,
	translator output.T,
	defaultLocale string,
	announceChannelID string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		mediaUseCase:      mediaUseCase,
		watchlistUseCase:  watchlistUseCase,
		releaseUseCase:    releaseUseCase,
		translator:        translator,
		defaultLocale:     defaultLocale,
		announceChannelID: announceChannelID,
		logger:            logger,
	}
}

func (h *Handler) locale(requested string) string {
	if requested == "" {
		return h.defaultLocale
	}
	return requested
}
