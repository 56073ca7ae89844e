package input

import (
	"context"

	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

type MediaUseCase interface {
	HandleAnime(ctx context.Context, user []entities.UserEntry, filter entities.Filter, tr output.Localizer) (string, error)
	HandleManga(ctx context.Context, user []entities.UserEntry, filter entities.Filter, tr output.Localizer) (string, error)
	HandleCountdownData(ctx context.Context, user []entities.UserEntry, tr output.Localizer) (string, error)
	HandleMediaMore(ctx context.Context, contentID int, request entities.MediaType, tr output.Localizer) (string, error)
	HandleNewRelease(media *entities.Media, language string, t output.T) string
	HandleUserRelease(media *entities.Media, language string, t output.T) string
}
