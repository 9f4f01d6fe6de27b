package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apiadapter "github.com/avasseur/fitcoach-cli/internal/adapters/api"
	tomlrepo "github.com/avasseur/fitcoach-cli/internal/adapters/repo/toml"
	"github.com/avasseur/fitcoach-cli/internal/application"
	"github.com/avasseur/fitcoach-cli/internal/logging"
	"github.com/avasseur/fitcoach-cli/internal/ports"
)

const defaultAPIBaseURL = "http://localhost:5000/api"

type app struct {
	sessions     *application.SessionStore
	auth         *application.AuthGateway
	guard        *application.SessionGuard
	conversation *application.ConversationEngine
	dashboard    *application.DashboardAggregator
	profiles     ports.ProfileAPI
	navigator    *loginNavigator
}

func wireApp() (*app, error) {
	// A missing .env is fine, the environment wins either way.
	_ = godotenv.Load()

	logger := logging.New(os.Stderr)

	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	sessions := application.NewSessionStore(repo)

	client := &apiadapter.Client{
		BaseURL: envOrDefault("FITCOACH_API_URL", defaultAPIBaseURL),
		Tokens:  sessions,
	}

	navigator := newLoginNavigator(os.Stderr)
	sessions.Subscribe(navigator.trackSession)

	auth := application.NewAuthGateway(client, sessions)
	guard := application.NewSessionGuard(auth, navigator, logger)

	return &app{
		sessions:     sessions,
		auth:         auth,
		guard:        guard,
		conversation: application.NewConversationEngine(client, guard, ports.SystemClock{}),
		dashboard:    application.NewDashboardAggregator(client, client, guard, logger),
		profiles:     client,
		navigator:    navigator,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
