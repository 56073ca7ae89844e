package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
	pkgdiscord "anibot/pkg/discord"
)

const (
	commandAnime     = "anime"
	commandManga     = "manga"
	commandCountdown = "countdown"
	commandMore      = "more"
	commandTrack     = "track"
	commandUntrack   = "untrack"
)

var filterChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "All", Value: string(entities.FilterAll)},
	{Name: "Releasing", Value: string(entities.FilterReleasing)},
	{Name: "Finished", Value: string(entities.FilterFinished)},
	{Name: "Cancelled", Value: string(entities.FilterCancelled)},
	{Name: "Not yet released", Value: string(entities.FilterNotYetReleased)},
}

var kindChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Anime", Value: string(entities.MediaTypeAnime)},
	{Name: "Manga", Value: string(entities.MediaTypeManga)},
}

func filterOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "filter",
		Description: description,
		Choices:     filterChoices,
	}
}

func mediaOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionString, Name: "kind", Description: "Anime or manga", Required: true, Choices: kindChoices},
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "id", Description: "AniList id", Required: true},
	}
}

// Commands lists the slash commands the bot registers.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: commandAnime, Description: "Show your watchlist", Options: []*discordgo.ApplicationCommandOption{filterOption("Which part of the watchlist")}},
		{Name: commandManga, Description: "Show your readlist", Options: []*discordgo.ApplicationCommandOption{filterOption("Which part of the readlist")}},
		{Name: commandCountdown, Description: "Next episodes of the anime you follow"},
		{Name: commandMore, Description: "Everything about one title", Options: mediaOptions()},
		{Name: commandTrack, Description: "Add a title to your list", Options: mediaOptions()},
		{Name: commandUntrack, Description: "Remove a title from your list", Options: mediaOptions()},
	}
}

type commandOptions map[string]*discordgo.ApplicationCommandInteractionDataOption

func newCommandOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) commandOptions {
	m := make(commandOptions, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (o commandOptions) filter() entities.Filter {
	opt, ok := o["filter"]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return entities.FilterNone
	}
	return entities.Filter(opt.StringValue())
}

func (o commandOptions) kind() entities.MediaType {
	opt, ok := o["kind"]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return entities.MediaType(opt.StringValue())
}

func (o commandOptions) id() int {
	opt, ok := o["id"]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}
	return int(opt.IntValue())
}

// commandRequest is the transport-free view of a slash command.
type commandRequest struct {
	name    string
	userID  string
	locale  string
	options commandOptions
}

// ephemeral reports whether the reply is only shown to the caller.
func (r commandRequest) ephemeral() bool {
	return r.name == commandTrack || r.name == commandUntrack
}

// HandleCommand answers a slash command: the interaction is deferred, then
// the reply replaces the placeholder and overflow goes to follow-ups.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	req := commandRequest{
		name:    data.Name,
		userID:  interactionUserID(i.Interaction),
		locale:  string(i.Locale),
		options: newCommandOptions(data.Options),
	}

	if err := deferResponse(s, i.Interaction, req.ephemeral()); err != nil {
		h.logger.Error("discord: defer interaction", "command", req.name, "error", err)
		return
	}

	content := h.execute(context.Background(), req)
	if err := editResponse(s, i.Interaction, content, req.ephemeral()); err != nil {
		h.logger.Error("discord: edit interaction", "command", req.name, "error", err)
	}
}

func (h *Handler) execute(ctx context.Context, req commandRequest) string {
	tr := output.Bind(h.translator, h.locale(req.locale))
	content, err := h.dispatch(ctx, req, tr)
	if err != nil {
		h.logger.Warn("discord: command failed", "command", req.name, "user", req.userID, "error", err)
		return tr.T(pkgdiscord.ErrorKey(err), nil)
	}
	if strings.TrimSpace(content) == "" {
		return tr.T("emptyList", nil)
	}
	return content
}

func (h *Handler) dispatch(ctx context.Context, req commandRequest, tr output.Localizer) (string, error) {
	switch req.name {
	case commandAnime:
		entries, err := h.watchlistUseCase.Entries(ctx, req.userID, entities.MediaTypeAnime)
		if err != nil {
			return "", err
		}
		return h.mediaUseCase.HandleAnime(ctx, entries, req.options.filter(), tr)
	case commandManga:
		entries, err := h.watchlistUseCase.Entries(ctx, req.userID, entities.MediaTypeManga)
		if err != nil {
			return "", err
		}
		return h.mediaUseCase.HandleManga(ctx, entries, req.options.filter(), tr)
	case commandCountdown:
		entries, err := h.watchlistUseCase.Entries(ctx, req.userID, entities.MediaTypeAnime)
		if err != nil {
			return "", err
		}
		return h.mediaUseCase.HandleCountdownData(ctx, entries, tr)
	case commandMore:
		return h.mediaUseCase.HandleMediaMore(ctx, req.options.id(), req.options.kind(), tr)
	case commandTrack:
		title, err := h.watchlistUseCase.Track(ctx, req.userID, req.options.kind(), req.options.id(), h.locale(req.locale))
		if err != nil {
			return "", err
		}
		return tr.T("tracked", map[string]any{"title": displayTitle(title)}), nil
	case commandUntrack:
		if err := h.watchlistUseCase.Untrack(ctx, req.userID, req.options.kind(), req.options.id()); err != nil {
			return "", err
		}
		return tr.T("untracked", nil), nil
	}
	return "", fmt.Errorf("unknown command %q", req.name)
}

// English > Romaji > Native > site URL
func displayTitle(title *entities.ListTitle) string {
	if title == nil {
		return ""
	}
	for _, s := range []*string{title.Title.English, title.Title.Romaji, title.Title.Native, title.SiteURL} {
		if s != nil && *s != "" {
			return *s
		}
	}
	return ""
}
