package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/api"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/config"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/models"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/services"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/session"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/store"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/logging"
)

// App holds the wired client: the session manager plus the domain services,
// and the terminal state of the REPL.
type App struct {
	config     *config.Config
	session    *session.Manager
	wallet     services.WalletService
	groups     services.GroupService
	profile    services.ProfileService
	kyc        services.KYCService
	adminUsers services.AdminUserService

	screen string
	reader *bufio.Reader
}

// NewApp opens the local session database, builds the API client and wires
// every service. The returned App acts as its own Navigator: session
// redirects set the current screen shown in the prompt.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}

	st := store.NewSQLiteStore(db)
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout, session.TokenSource(st))

	app := &App{
		config:     cfg,
		wallet:     services.NewWalletService(client),
		groups:     services.NewGroupService(client, client, client),
		profile:    services.NewProfileService(client),
		kyc:        services.NewKYCService(client, client),
		adminUsers: services.NewAdminUserService(client),
		screen:     session.LoginPath,
		reader:     bufio.NewReader(os.Stdin),
	}
	app.session = session.NewManager(client, st, app, log)
	return app, nil
}

// Redirect implements session.Navigator by switching the current screen.
func (a *App) Redirect(path string) {
	if a.screen != path {
		a.screen = path
		fmt.Println("->", path)
	}
}

// Run restores the screen for an already-persisted session and starts the
// REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.session.IsAuthenticated(ctx) {
		a.screen = session.DashboardPath
		if a.session.HasRole(ctx, models.RoleAdmin) {
			a.screen = session.AdminDashboardPath
		}
	}

	fmt.Println("i-Stokvel CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *App) isAdmin(ctx context.Context) bool {
	return a.session.RequireRole(ctx, models.RoleAdmin)
}

func (a *App) status(ctx context.Context) string {
	if user := a.session.CurrentUser(ctx); user != nil {
		return fmt.Sprintf("(%s %s)", user.Email, a.screen)
	}
	return fmt.Sprintf("(%s)", a.screen)
}
