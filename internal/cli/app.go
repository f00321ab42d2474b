// Package cli is the interactive WolfRead client: a REPL over the session
// controller. It is a session consumer; all auth decisions live in the
// session package.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/wolfread/wolfread-go/internal/api"
	"github.com/wolfread/wolfread-go/internal/config"
	"github.com/wolfread/wolfread-go/internal/cryptox"
	"github.com/wolfread/wolfread-go/internal/logging"
	"github.com/wolfread/wolfread-go/internal/repositories/tokens"
	"github.com/wolfread/wolfread-go/internal/session"

	_ "modernc.org/sqlite"
)

// refreshLeeway is how far ahead of access-token expiry the watcher refreshes.
const refreshLeeway = time.Minute

// controller is the slice of *session.Controller the CLI needs. Kept as an
// interface so command handlers can be tested against a fake.
type controller interface {
	Start(ctx context.Context)
	Session() session.Session
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req api.RegisterRequest) error
	Logout(ctx context.Context)
	ReloadProfile(ctx context.Context) error
	UpdateProfile(ctx context.Context, fields api.ProfileUpdate) error
	ChangePassword(ctx context.Context, current, next string) (string, error)
	ConsumeOnboarding(ctx context.Context) bool
	StartRefreshWatcher(ctx context.Context, interval, leeway time.Duration)
}

type App struct {
	config     *config.Config
	controller controller
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := tokens.OpenDB(ctx, c.StatePath)
	if err != nil {
		return nil, err
	}

	sealKey, err := cryptox.LoadOrCreateKey(c.KeyPath)
	if err != nil {
		return nil, err
	}

	store := tokens.NewSQLiteRepository(db, sealKey)
	client := api.NewRESTClient(c.APIBaseURL, c.RequestTimeout, logger)
	ctrl := session.NewController(client, store, logger)

	return &App{
		config:     c,
		controller: ctrl,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.controller.Start(ctx)

	go a.controller.StartRefreshWatcher(ctx, a.config.RefreshCheckInterval, refreshLeeway)

	a.Root(ctx)
}
