package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dapoades/slack-roster-bot/internal/domain"
	"github.com/dapoades/slack-roster-bot/internal/domain/contract"
	"github.com/dapoades/slack-roster-bot/internal/domain/service"
	"github.com/dapoades/slack-roster-bot/internal/export"
	"github.com/dapoades/slack-roster-bot/internal/roster"
	"github.com/dapoades/slack-roster-bot/internal/slackcmd"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackAPI
	rosterService contract.RosterService
	signingSecret string
}

func New(slackClient contract.SlackAPI, rosterService contract.RosterService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		rosterService: rosterService,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAddParticipant(cmd, slashCmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveParticipant(cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleListParticipants(slashCmd)
	case slackcmd.CmdShow:
		return h.handleShow(slashCmd, time.Now().UTC())
	case slackcmd.CmdNext:
		return h.handleShow(slashCmd, time.Now().UTC().AddDate(0, 0, 7))
	case slackcmd.CmdWeeks:
		return h.handleWeeks(cmd, slashCmd)
	case slackcmd.CmdSkip:
		return h.handleSkip(cmd, slashCmd)
	case slackcmd.CmdUnskip:
		return h.handleUnskip(cmd, slashCmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd, slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdAnnounce:
		return h.handleAnnounce(cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleAddParticipant(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention a user: `/roster add @user`")
	}

	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	var added []string
	for _, mention := range cmd.Args {
		userID, ok := parseMention(mention)
		if !ok {
			return h.createErrorResponse(fmt.Sprintf("Not a user mention: %s", mention))
		}

		if err := h.rosterService.AddParticipant(channel.ID, userID); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to add user: %v", err))
		}
		added = append(added, fmt.Sprintf("<@%s>", userID))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s added to the roster!", strings.Join(added, ", ")),
	}
}

func (h *SlackHandler) handleRemoveParticipant(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention a user: `/roster remove @user`")
	}

	userID, ok := parseMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Not a user mention: %s", cmd.Args[0]))
	}

	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	if err := h.rosterService.RemoveParticipant(channel.ID, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to remove user: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("👋 <@%s> removed from the roster", userID),
	}
}

func (h *SlackHandler) handleListParticipants(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	participants, err := h.rosterService.ListParticipants(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to list participants")
	}

	if len(participants) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No one is on the roster yet. Use `/roster add @user` to add participants.",
		}
	}

	var b strings.Builder
	b.WriteString("👥 *Roster participants* (rotation order):\n")
	for i, p := range participants {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.DisplayName)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleShow(slashCmd *slack.SlashCommand, at time.Time) *slack.Msg {
	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	week, err := h.rosterService.WeekFor(channel.ID, at)
	if err != nil {
		if errors.Is(err, roster.ErrNoParticipants) {
			return h.createErrorResponse("Add at least one participant first: `/roster add @user`")
		}
		return h.createErrorResponse("Failed to compute roster")
	}

	weekStart := roster.StartOfWeek(at)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         service.FormatWeek(week, weekStart, weekStart.AddDate(0, 0, 6)),
	}
}

func (h *SlackHandler) handleWeeks(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	weekCount := domain.DefaultWeeksAhead
	if len(cmd.Args) > 0 {
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil || n < 1 || n > 12 {
			return h.createErrorResponse("Usage: `/roster weeks N` with N between 1 and 12")
		}
		weekCount = n
	}

	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	schedules, err := h.rosterService.Preview(channel.ID, time.Now().UTC(), weekCount)
	if err != nil {
		if errors.Is(err, roster.ErrNoParticipants) {
			return h.createErrorResponse("Add at least one participant first: `/roster add @user`")
		}
		return h.createErrorResponse("Failed to compute schedules")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         service.FormatSchedules(schedules),
	}
}

func (h *SlackHandler) handleSkip(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/roster skip <day> [label]`, e.g. `/roster skip saturday GENERAL CLEANING`")
	}

	weekday, ok := domain.WeekdayNumbers[strings.ToLower(cmd.Args[0])]
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Unknown weekday: %s", cmd.Args[0]))
	}

	label := strings.Join(cmd.Args[1:], " ")

	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	if err := h.rosterService.SetSkipDay(channel.ID, weekday, label); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to set skip day: %v", err))
	}

	shown := label
	if shown == "" {
		shown = roster.DayOffLabel
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🚫 %s is now excluded from rotation (%s)", domain.WeekdayNames[weekday], shown),
	}
}

func (h *SlackHandler) handleUnskip(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/roster unskip <day>`")
	}

	weekday, ok := domain.WeekdayNumbers[strings.ToLower(cmd.Args[0])]
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Unknown weekday: %s", cmd.Args[0]))
	}

	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	if err := h.rosterService.ClearSkipDay(channel.ID, weekday); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to clear skip day: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s is back in the rotation", domain.WeekdayNames[weekday]),
	}
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/roster config time HH:MM` | `/roster config day <weekday>` | `/roster config weeks N`")
	}

	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	if err := h.rosterService.UpdateConfig(channel.ID, cmd.Args[0], strings.ToLower(cmd.Args[1])); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update config: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("⚙️ Config updated: %s = %s", cmd.Args[0], cmd.Args[1]),
	}
}

func (h *SlackHandler) handlePause(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	if err := h.rosterService.PauseRotation(channel.ID); err != nil {
		return h.createErrorResponse("Failed to pause roster posting")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "⏸️ Weekly roster posting paused. Use `/roster resume` to turn it back on.",
	}
}

func (h *SlackHandler) handleResume(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	if err := h.rosterService.ResumeRotation(channel.ID); err != nil {
		return h.createErrorResponse("Failed to resume roster posting")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "▶️ Weekly roster posting resumed.",
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	config, skipDays, err := h.rosterService.GetConfig(channel.ID)
	if err != nil || config == nil {
		return h.createErrorResponse("Failed to get channel status")
	}

	participants, err := h.rosterService.ListParticipants(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to get channel status")
	}

	var b strings.Builder
	b.WriteString("📋 *Roster status*\n")
	fmt.Fprintf(&b, "• Participants: %d\n", len(participants))
	fmt.Fprintf(&b, "• Posting: %s at %s UTC\n", domain.WeekdayNames[config.PostingDay], config.PostingTime)
	fmt.Fprintf(&b, "• Preview weeks: %d\n", config.WeeksAhead)
	if config.IsEnabled {
		b.WriteString("• Posting enabled: yes\n")
	} else {
		b.WriteString("• Posting enabled: no (paused)\n")
	}
	if len(skipDays) > 0 {
		b.WriteString("• Skip days:\n")
		for _, sd := range skipDays {
			label := sd.Label
			if label == "" {
				label = roster.DayOffLabel
			}
			fmt.Fprintf(&b, "    - %s: %s\n", domain.WeekdayNames[sd.Weekday], label)
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleAnnounce(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/roster announce <message>`")
	}

	channel, _, err := h.rosterService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to set up channel")
	}

	if err := h.rosterService.Announce(channel.ID, strings.Join(cmd.Args, " ")); err != nil {
		return h.createErrorResponse("Failed to send announcement")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "📢 Announcement sent",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	help := "*Roster bot commands*\n" +
		"• `/roster add @user` - add someone to the rotation\n" +
		"• `/roster remove @user` - remove someone\n" +
		"• `/roster list` - list participants in rotation order\n" +
		"• `/roster show` - show this week's roster\n" +
		"• `/roster next` - show next week's roster\n" +
		"• `/roster weeks N` - preview the next N weeks\n" +
		"• `/roster skip <day> [label]` - exclude a weekday, optionally with a label\n" +
		"• `/roster unskip <day>` - put a weekday back into rotation\n" +
		"• `/roster config time HH:MM | day <weekday> | weeks N` - posting settings\n" +
		"• `/roster pause` / `/roster resume` - toggle weekly posting\n" +
		"• `/roster status` - current settings\n" +
		"• `/roster announce <message>` - post an announcement to the channel"

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         help,
	}
}

// HandleExport serves the roster as a downloadable file. Query parameters:
// channel (Slack channel ID, required), format (ics or csv, default csv),
// weeks (default: the channel's configured preview window).
func (h *SlackHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	slackChannelID := r.URL.Query().Get("channel")
	if slackChannelID == "" {
		http.Error(w, "missing channel parameter", http.StatusBadRequest)
		return
	}

	channel, _, err := h.rosterService.SetupChannel(slackChannelID, "", "")
	if err != nil {
		http.Error(w, "failed to resolve channel", http.StatusInternalServerError)
		return
	}

	config, skipDays, err := h.rosterService.GetConfig(channel.ID)
	if err != nil || config == nil {
		http.Error(w, "failed to load channel config", http.StatusInternalServerError)
		return
	}

	weekCount := config.WeeksAhead
	if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
		n, err := strconv.Atoi(weeksParam)
		if err != nil || n < 1 || n > 52 {
			http.Error(w, "weeks must be a number between 1 and 52", http.StatusBadRequest)
			return
		}
		weekCount = n
	}

	schedules, err := h.rosterService.Preview(channel.ID, time.Now().UTC(), weekCount)
	if err != nil {
		if errors.Is(err, roster.ErrNoParticipants) {
			http.Error(w, "no participants on the roster", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "failed to compute schedules", http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("format") {
	case "ics":
		skipMap := make(map[string]string, len(skipDays))
		for _, sd := range skipDays {
			skipMap[domain.WeekdayNames[sd.Weekday]] = sd.Label
		}

		w.Header().Set("Content-Type", "text/calendar")
		w.Header().Set("Content-Disposition", `attachment; filename="roster.ics"`)
		if err := export.WriteICS(w, schedules, skipMap); err != nil {
			http.Error(w, "failed to write calendar", http.StatusInternalServerError)
		}
	case "csv", "":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="roster.csv"`)
		if err := export.WriteCSV(w, schedules); err != nil {
			http.Error(w, "failed to write csv", http.StatusInternalServerError)
		}
	default:
		http.Error(w, "format must be ics or csv", http.StatusBadRequest)
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

// parseMention extracts the user ID from a Slack mention like <@U123|name>.
func parseMention(mention string) (string, bool) {
	mention = strings.TrimSpace(mention)
	if !strings.HasPrefix(mention, "<@") || !strings.HasSuffix(mention, ">") {
		return "", false
	}

	userID := strings.TrimSuffix(strings.TrimPrefix(mention, "<@"), ">")
	if idx := strings.Index(userID, "|"); idx >= 0 {
		userID = userID[:idx]
	}

	return userID, userID != ""
}
