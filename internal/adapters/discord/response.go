package discord

import (
	"github.com/bwmarrin/discordgo"

	pkgdiscord "anibot/pkg/discord"
)

// Member (guild) > User (DM)
func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func messageFlags(ephemeral bool) discordgo.MessageFlags {
	if ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}

func deferResponse(s *discordgo.Session, i *discordgo.Interaction, ephemeral bool) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: messageFlags(ephemeral)},
	})
}

func editResponse(s *discordgo.Session, i *discordgo.Interaction, content string, ephemeral bool) error {
	chunks := pkgdiscord.SplitMessage(content, pkgdiscord.MaxMessageLength)
	if len(chunks) == 0 {
		return nil
	}
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &chunks[0]}); err != nil {
		return err
	}
	for _, chunk := range chunks[1:] {
		if _, err := s.FollowupMessageCreate(i, true, &discordgo.WebhookParams{
			Content: chunk,
			Flags:   messageFlags(ephemeral),
		}); err != nil {
			return err
		}
	}
	return nil
}
