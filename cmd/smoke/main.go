// Command smoke runs a short end-to-end check against a running rewards
// backend: liveness, database round-trip, register (or login when the
// account already exists), user listing and stats.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/adapter"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/models"
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:10000", "backend base URL")
		name     = flag.String("name", "Smoke Test", "name used for registration")
		email    = flag.String("email", "smoke@example.com", "account email")
		password = flag.String("password", "smoke-password", "account password")
		timeout  = flag.Duration("timeout", 30*time.Second, "overall deadline")
		level    = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	log := logger.NewLogger("rewards-smoke", *level)

	client, err := adapter.NewClient(adapter.Config{BaseURL: *baseURL}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err = run(ctx, client, models.RegisterRequest{Name: *name, Email: *email, Password: *password}, log); err != nil {
		log.Error().Err(err).Msg("smoke check failed")
		cancel()
		os.Exit(1)
	}
	log.Info().Msg("smoke check passed")
}

func run(ctx context.Context, api adapter.RewardsAPI, account models.RegisterRequest, log *logger.Logger) error {
	status, err := api.Health(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("version", status.Version).Str("uptime", status.Uptime).Msg("server is up")

	now, err := api.TestDB(ctx)
	if err != nil {
		return err
	}
	log.Info().Time("db_time", now.Now).Msg("database reachable")

	auth, err := api.Register(ctx, account)
	if errors.Is(err, adapter.ErrConflict) {
		log.Info().Str("email", account.Email).Msg("account exists, logging in")
		auth, err = api.Login(ctx, models.LoginRequest{Email: account.Email, Password: account.Password})
	}
	if err != nil {
		return err
	}
	log.Info().Int64("user_id", auth.User.ID).Msg("authenticated")

	users, err := api.ListUsers(ctx, 0)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(users)).Msg("listed users")

	stats, err := api.Stats(ctx)
	if err != nil {
		return err
	}
	log.Info().Int64("users_count", stats.UsersCount).Msg("stats")

	return nil
}
