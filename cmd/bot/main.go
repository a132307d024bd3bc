package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"raidbot/internal/adapters/discord"
	"raidbot/internal/application"
	"raidbot/internal/config"
	"raidbot/internal/domain/conflict"
	"raidbot/internal/domain/cycle"
	"raidbot/internal/infrastructure/database"
	"raidbot/internal/infrastructure/database/sqlc_generated"
	"raidbot/internal/infrastructure/i18n"
	"raidbot/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration invalide: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.LogConsole)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("❌ Arrêt sur erreur")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, log); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("erreur lors de l'initialisation de la base de données: %w", err)
	}
	defer pool.Close()

	q := sqlc_generated.New(pool)
	raidRepo := database.NewRaidRepository(q)
	presetRepo := database.NewPresetRepository(q)
	signupRepo := database.NewSignupRepository(q)
	characterRepo := database.NewCharacterRepository(q)
	transactor := database.NewTransactor(pool, q)

	cycles, err := cycle.New(cfg.Weekday(), cfg.CycleHour, cfg.Location())
	if err != nil {
		return err
	}
	engine := conflict.NewEngine(cycles, cfg.ProximityWindow)

	translator, err := i18n.NewTranslator(cfg.Locale, log)
	if err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}

	authority := application.StaffAuthority{}
	raidUC := application.NewRaidService(raidRepo, signupRepo, characterRepo, presetRepo, authority, log)
	notifier := discord.NewRosterNotifier(session, raidUC, cfg.NotifyRate, cfg.Location(), log)
	signupUC := application.NewSignupService(transactor, signupRepo, engine, cycles, authority, notifier, log)
	characterUC := application.NewCharacterService(characterRepo)

	handler := discord.NewHandler(raidUC, signupUC, characterUC, translator, discord.HandlerConfig{
		RaidChannelID: cfg.RaidChannelID,
		AdminRoleID:   cfg.AdminRoleID,
		OwnerRoleID:   cfg.OwnerRoleID,
		Location:      cfg.Location(),
	}, log)
	bot := discord.NewBot(session, handler, cfg.GuildID, log)

	scheduler, err := discord.NewScheduler(session, signupUC, raidUC, translator, cfg.RaidChannelID,
		cfg.Weekday(), cfg.CycleHour, cfg.Location(), log)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	return bot.Start(ctx)
}
