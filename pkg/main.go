package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	pkg "git.solsynth.dev/hypernet/hobbyhub/pkg/internal"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/cache"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/database"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/grpc"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/http/api"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" _   _       _     _           _   _       _\n| | | | ___ | |__ | |__  _   _| | | |_   _| |__\n| |_| |/ _ \\| '_ \\| '_ \\| | | | |_| | | | | '_ \\\n|  _  | (_) | |_) | |_) | |_| |  _  | |_| | |_) |\n|_| |_|\\___/|_.__/|_.__/ \\__, |_| |_|\\__,_|_.__/\n                         |___/"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("HobbyHub"), pkg.AppVersion)
	fmt.Printf("The photo sharing community for hobbyists\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("hobbyhub")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("bind", "0.0.0.0:8445")
	viper.SetDefault("grpc_bind", "0.0.0.0:7445")
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.prefix", "hobbyhub_")
	viper.SetDefault("security.session_ttl", "720h")
	viper.SetDefault("posts.max_upload_size", 8*1024*1024)
	viper.SetDefault("nats.prefix", "hobbyhub")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	if viper.GetBool("debug.enabled") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Prepare cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache.")
	}

	// Connect to message queue
	var events services.EventPublisher
	if url := viper.GetString("nats.url"); len(url) > 0 {
		if publisher, err := services.NewNatsEventPublisher(url, viper.GetString("nats.prefix")); err != nil {
			log.Error().Err(err).Msg("An error occurred when connecting to nats. Events will not be published.")
		} else {
			events = publisher
			defer publisher.Close()
			log.Info().Str("url", url).Msg("Connected to nats.")
		}
	}

	controllers := &api.Controllers{
		Events:        events,
		MaxUploadSize: viper.GetInt("posts.max_upload_size"),
	}

	// Connect to database
	switch viper.GetString("database.driver") {
	case "memory":
		log.Warn().Msg("Using in-memory post storage, all data will be lost on exit. Accounts are disabled.")
		controllers.Posts = services.NewMemoryPostStore()
	default:
		if err := database.NewGorm(); err != nil {
			log.Fatal().Err(err).Msg("An error occurred when connect to database.")
		} else if err := database.RunMigration(database.C); err != nil {
			log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
		}
		controllers.Posts = services.NewGormPostStore(database.C)

		if secret := viper.GetString("security.jwt_secret"); len(secret) == 0 {
			log.Error().Msg("No jwt secret was configured. Authentication related features will be disabled.")
		} else {
			controllers.Accounts = services.NewAccountManager(
				database.C,
				secret,
				viper.GetDuration("security.session_ttl"),
				events,
			)
			unsubscribe := controllers.Accounts.Subscribe(func(change services.AuthStateChange) {
				log.Info().Str("event", change.Event).Str("account", change.Account.ID).Msg("Authentication state changed.")
			})
			defer unsubscribe()
		}
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	server := http.NewServer(controllers)
	go server.Listen()

	grpcServer := grpc.NewGrpc()
	go func() {
		if err := grpcServer.Listen(); err != nil {
			log.Fatal().Err(err).Msg("An error occurred when starting grpc server...")
		}
	}()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")
	quartz.Stop()
	grpcServer.Stop()
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("An error occurred when shutting down server...")
	}
}
