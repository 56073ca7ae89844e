package input

import (
	"context"
	"time"

	"anibot/internal/domain/entities"
)

// Release is one aired episode together with who should hear about it.
type Release struct {
	Event       entities.AiringEvent
	Media       *entities.Media
	Subscribers []entities.Subscriber
}

type ReleaseUseCase interface {
	// ReleasesBetween returns tracked anime episodes that aired in (from, to].
	ReleasesBetween(ctx context.Context, from, to time.Time) ([]Release, error)
}
