package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/mlemaire/gymbot/internal/domain"
	"github.com/mlemaire/gymbot/internal/domain/contract"
	"github.com/mlemaire/gymbot/internal/domain/entity"
	"github.com/mlemaire/gymbot/internal/domain/service"
)

type InteractionHandler struct {
	discord  contract.DiscordClient
	planning contract.PlanningService
	status   contract.StatusService
	gate     contract.GateService
	rules    contract.RulesService
}

func New(discord contract.DiscordClient, planning contract.PlanningService, status contract.StatusService, gate contract.GateService, rules contract.RulesService) *InteractionHandler {
	return &InteractionHandler{
		discord:  discord,
		planning: planning,
		status:   status,
		gate:     gate,
		rules:    rules,
	}
}

// HandleInteraction dispatches one inbound interaction. Nothing escaping a
// handler may take the process down: panics are caught and logged here.
func (h *InteractionHandler) HandleInteraction(i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("interaction handler panicked", "panic", r)
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(i)
	case discordgo.InteractionMessageComponent:
		h.handleButton(i)
	default:
		slog.Debug("ignoring interaction", "type", i.Type)
	}
}

func (h *InteractionHandler) handleCommand(i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != domain.CommandRoot || len(data.Options) == 0 {
		slog.Warn("unknown command", "name", data.Name)
		return
	}

	switch data.Options[0].Name {
	case domain.SubcommandState:
		h.handleStatusCommand(i)
	case domain.SubcommandSetup:
		h.handleSetupCommand(i)
	default:
		slog.Warn("unknown subcommand", "name", data.Options[0].Name)
	}
}

// handleStatusCommand publishes the status message in the invoking channel.
// Only usable from a guild text channel.
func (h *InteractionHandler) handleStatusCommand(i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		h.respondError(i, "Cette commande ne fonctionne que dans un salon du serveur.")
		return
	}

	if err := h.status.Publish(i.ChannelID); err != nil {
		slog.Error("failed to publish status", "error", err)
		h.respondError(i, "Impossible de publier le statut.")
		return
	}
	h.respondEphemeral(i, "✅ Statut publié.")
}

// handleSetupCommand acknowledges first, then runs the reconciliation: a
// full pass can exceed the interaction response deadline.
func (h *InteractionHandler) handleSetupCommand(i *discordgo.InteractionCreate) {
	h.respondEphemeral(i, "🔄 Synchronisation du planning lancée.")

	result, err := h.planning.Reconcile(context.Background())
	if err != nil {
		slog.Error("manual reconciliation failed", "error", err)
		return
	}
	slog.Info("manual reconciliation done",
		"created", len(result.Created), "deleted", len(result.Deleted), "failed", len(result.Failed))
}

func (h *InteractionHandler) handleButton(i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	actor := memberDisplayName(i)

	switch customID {
	case domain.ButtonOpenStatus:
		h.handleStatusChange(i, entity.StateOpen, actor)
	case domain.ButtonCloseStatus:
		h.handleStatusChange(i, entity.StateClosed, actor)
	case domain.ButtonRequestGateOpen:
		h.handleGateRequest(i, actor)
	case domain.ButtonAcceptRules:
		h.handleAcceptRules(i)
	default:
		slog.Warn("unknown button id", "customID", customID)
	}
}

func (h *InteractionHandler) handleStatusChange(i *discordgo.InteractionCreate, state entity.GymState, actor string) {
	h.status.UpdateStatus(state, actor)
	if err := h.status.Refresh(); err != nil {
		slog.Error("failed to refresh status message", "error", err)
		h.respondError(i, "Impossible de mettre à jour le statut.")
		return
	}
	h.respondEphemeral(i, fmt.Sprintf("✅ La salle est maintenant %s.", state))
}

func (h *InteractionHandler) handleGateRequest(i *discordgo.InteractionCreate, actor string) {
	report, err := h.gate.RequestOpen(actor)
	if errors.Is(err, service.ErrGateUnavailable) {
		h.respondEphemeral(i, "L'ouverture du portail à distance n'est pas disponible.")
		return
	}
	if err != nil {
		slog.Error("gate request failed", "error", err)
		h.respondError(i, "La demande d'ouverture a échoué.")
		return
	}

	if len(report.Failed) == 0 {
		h.respondEphemeral(i, fmt.Sprintf("📨 Demande envoyée (%d destinataire(s)).", len(report.Sent)))
		return
	}
	h.respondEphemeral(i, fmt.Sprintf("📨 Demande envoyée à %d destinataire(s), %d envoi(s) en échec.", len(report.Sent), len(report.Failed)))
}

func (h *InteractionHandler) handleAcceptRules(i *discordgo.InteractionCreate) {
	if i.Member == nil || i.Member.User == nil {
		h.respondError(i, "Action impossible en dehors du serveur.")
		return
	}
	user := i.Member.User

	err := h.rules.Accept(user.ID, user.String())
	if errors.Is(err, service.ErrRoleNotFound) {
		h.respondError(i, "Le rôle membre n'existe pas, contacte un administrateur.")
		return
	}
	if err != nil {
		slog.Error("rules acceptance failed", "user", user.ID, "error", err)
		h.respondError(i, "Impossible de valider le règlement, réessaie plus tard.")
		return
	}
	h.respondEphemeral(i, "✅ Règlement accepté, bienvenue !")
}

func (h *InteractionHandler) respondEphemeral(i *discordgo.InteractionCreate, content string) {
	err := h.discord.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		slog.Error("failed to respond to interaction", "error", err)
	}
}

func (h *InteractionHandler) respondError(i *discordgo.InteractionCreate, message string) {
	h.respondEphemeral(i, fmt.Sprintf("❌ %s", message))
}

func memberDisplayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		if i.Member.User != nil {
			return i.Member.User.Username
		}
	}
	if i.User != nil {
		return i.User.Username
	}
	return "inconnu"
}
