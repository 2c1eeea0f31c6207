package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/mlemaire/gymbot/internal/config"
	"github.com/mlemaire/gymbot/internal/discord"
	"github.com/mlemaire/gymbot/internal/domain/contract"
	"github.com/mlemaire/gymbot/internal/domain/service"
	"github.com/mlemaire/gymbot/internal/handlers"
	"github.com/mlemaire/gymbot/internal/logbook"
	"github.com/mlemaire/gymbot/internal/scheduler"
	"github.com/mlemaire/gymbot/internal/sms"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		slog.Error("failed to create discord session", "error", err)
		os.Exit(1)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions

	client := discord.NewClient(session)

	var smsSender contract.SMSSender
	if cfg.GateEnabled() {
		smsSender = sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	} else {
		slog.Info("gate feature disabled: provider credentials or destination numbers missing")
	}

	services := service.NewInstance(
		client,
		smsSender,
		logbook.New(cfg.GateLogPath, cfg.Location),
		logbook.New(cfg.RulesLogPath, cfg.Location),
		cfg,
	)

	handler := handlers.New(client, services.Planning, services.Status, services.Gate, services.Rules)
	session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		handler.HandleInteraction(i)
	})

	if err := session.Open(); err != nil {
		slog.Error("failed to open discord session", "error", err)
		os.Exit(1)
	}
	defer session.Close()

	if err := discord.RegisterCommands(session, cfg.GuildID); err != nil {
		slog.Error("failed to register commands", "error", err)
		os.Exit(1)
	}

	sched := scheduler.New(services.Planning, services.Reminder, cfg.PlanningCron, cfg.ReminderRules, cfg.Location)
	if err := sched.Initialize(); err != nil {
		slog.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// Converge the planning window right away rather than waiting for the
	// first scheduled fire.
	if _, err := services.Planning.Reconcile(context.Background()); err != nil {
		slog.Error("startup reconciliation failed", "error", err)
	}

	slog.Info("gymbot is running, press Ctrl+C to exit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
}
