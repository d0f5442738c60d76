// Package cli implements the interactive PayOrbit REPL. It is the outer
// controller the transport layer signals into: when a session is
// invalidated mid-flight, the REPL falls back to the login prompt instead
// of the transport navigating anywhere itself.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync/atomic"

	"github.com/Zestathon/payorbit/internal/client/api"
	"github.com/Zestathon/payorbit/internal/client/config"
	"github.com/Zestathon/payorbit/internal/client/session"
	"github.com/Zestathon/payorbit/internal/client/services"
	"github.com/Zestathon/payorbit/internal/client/transport"
	"github.com/Zestathon/payorbit/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     *api.Client
	store   *session.Store
	uploads *services.UploadService
	payroll *services.PayrollService
	exports *services.ExportService
	log     logging.Logger
	reader  *bufio.Reader
	db      *sql.DB

	// invalidated is set by the transport's session-invalidated signal and
	// consumed by the REPL loop exactly once per invalidation.
	invalidated atomic.Bool
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, cfg.StatePath)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(db)
	if err := store.Load(ctx); err != nil {
		db.Close()
		return nil, err
	}

	t, err := transport.New(cfg.APIBaseURL, store, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	apiClient := api.New(t, store, log)

	a := &App{
		config:  cfg,
		api:     apiClient,
		store:   store,
		uploads: services.NewUploadService(apiClient, log),
		payroll: services.NewPayrollService(apiClient, log),
		exports: services.NewExportService(apiClient, cfg.ExportDir, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}

	t.OnSessionInvalidated(a.onSessionInvalidated)
	return a, nil
}

// onSessionInvalidated receives the typed signal from the transport. The
// transport only emits it when a session was actually cleared, so the flag
// flips at most once per expiry; the REPL resets it when it falls back to
// the login prompt.
func (a *App) onSessionInvalidated() {
	a.invalidated.Store(true)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}
