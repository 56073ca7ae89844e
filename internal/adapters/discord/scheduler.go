package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "anibot/pkg/discord"
)

// messenger is the part of *discordgo.Session used to deliver announcements.
type messenger interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// RunReleaseAnnouncements announces aired episodes every interval until ctx
// is done. Each run covers the time since the last successful one.
func (h *Handler) RunReleaseAnnouncements(ctx context.Context, m messenger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastRun := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := h.announceReleases(ctx, m, lastRun, now); err != nil {
				h.logger.Error("scheduler: release announcements", "from", lastRun, "to", now, "error", err)
				continue
			}
			lastRun = now
		}
	}
}

func (h *Handler) announceReleases(ctx context.Context, m messenger, from, to time.Time) error {
	releases, err := h.releaseUseCase.ReleasesBetween(ctx, from, to)
	if err != nil {
		return err
	}

	for _, r := range releases {
		if h.announceChannelID != "" {
			content := h.mediaUseCase.HandleNewRelease(r.Media, h.defaultLocale, h.translator)
			if err := send(m, h.announceChannelID, content); err != nil {
				h.logger.Error("scheduler: announce release", "media", r.Event.MediaID, "episode", r.Event.Episode, "error", err)
			}
		}

		for _, sub := range r.Subscribers {
			content := h.mediaUseCase.HandleUserRelease(r.Media, h.locale(sub.Locale), h.translator)
			if err := sendDM(m, sub.UserID, content); err != nil {
				h.logger.Warn("scheduler: notify subscriber", "user", sub.UserID, "media", r.Event.MediaID, "error", err)
			}
		}
	}
	return nil
}

func sendDM(m messenger, userID, content string) error {
	channel, err := m.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open DM: %w", err)
	}
	return send(m, channel.ID, content)
}

func send(m messenger, channelID, content string) error {
	for _, chunk := range pkgdiscord.SplitMessage(content, pkgdiscord.MaxMessageLength) {
		if _, err := m.ChannelMessageSend(channelID, chunk); err != nil {
			return err
		}
	}
	return nil
}
