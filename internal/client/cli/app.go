package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/client/client"
	"github.com/dmitrijs2005/contactdesk/internal/client/config"
	"github.com/dmitrijs2005/contactdesk/internal/client/export"
	"github.com/dmitrijs2005/contactdesk/internal/client/repositories"
	"github.com/dmitrijs2005/contactdesk/internal/client/router"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/client/session"
	"github.com/dmitrijs2005/contactdesk/internal/client/views"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// App is the contactdesk shell: it owns the wiring between the credential
// store, the API client, the services and the views, and renders the
// mounted view after every command.
type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	in     prompter
	now    func() time.Time

	db       *sql.DB
	registry *prometheus.Registry
	store    session.Store
	auth     services.AuthService
	contacts services.ContactService
	nav      *router.Navigator
	exporter export.Exporter

	signUp    *views.SignUpView
	signIn    *views.SignInView
	verify    *views.VerifyEmailView
	dashboard *views.DashboardView
	tables    *views.TablesView

	// location whose view is currently mounted.
	location string
}

// NewApp opens local storage, builds the API client and the exporter, and
// returns a shell ready to Run. Close releases local storage.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}
	var opts []session.LocalOption
	if c.StorageKey != "" {
		sealer, err := session.OpenSealer(ctx, db, []byte(c.StorageKey))
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("open storage key: %w", err)
		}
		opts = append(opts, session.WithSealer(sealer))
	}
	store := session.NewLocalStore(db, opts...)

	registry := prometheus.NewRegistry()
	api, err := client.NewHTTPClient(c.ServerBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithMetrics(client.NewMetrics(registry)),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	exporter, err := newExporter(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(c, log, store, api, exporter, registry)
	a.db = db
	return a, nil
}

func newExporter(ctx context.Context, c *config.Config) (export.Exporter, error) {
	if c.ExportBucket == "" {
		return export.NewFileExporter(c.ExportDir), nil
	}
	s3c, err := export.NewS3Client(ctx, export.S3Options{
		Region:    c.ExportRegion,
		Endpoint:  c.ExportEndpoint,
		AccessKey: c.ExportAccessKey,
		SecretKey: c.ExportSecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("init export bucket: %w", err)
	}
	return export.NewS3Exporter(s3c, c.ExportBucket, c.ExportPrefix), nil
}

func newApp(c *config.Config, log logging.Logger, store session.Store, api client.Client, exporter export.Exporter, registry *prometheus.Registry) *App {
	auth := services.NewAuthService(api, store, log)
	contacts := services.NewContactService(api, log)
	nav := router.NewNavigator(store, log)

	return &App{
		config:    c,
		log:       log,
		out:       os.Stdout,
		now:       time.Now,
		registry:  registry,
		store:     store,
		auth:      auth,
		contacts:  contacts,
		nav:       nav,
		exporter:  exporter,
		signUp:    views.NewSignUpView(auth, nav, log),
		signIn:    views.NewSignInView(auth, nav, log),
		verify:    views.NewVerifyEmailView(auth, nav, log),
		dashboard: views.NewDashboardView(contacts, nav, log),
		tables:    views.NewTablesView(contacts, nav, log),
	}
}

// Run starts the shell on stdin and blocks until the user exits or ctx is
// cancelled. The start location is the dashboard, which sends a signed-out
// user to sign-in.
func (a *App) Run(ctx context.Context) error {
	p, err := newPrompter(a.config.HistoryFile, os.Stdin, a.out)
	if err != nil {
		return err
	}
	defer p.Close()
	a.in = p

	fmt.Fprintln(a.out, "Welcome to contactdesk (type 'help' for commands)")
	a.goTo(ctx, router.DashboardPath)

	err = runREPL(ctx, a, p, a.prompt)
	a.teardown()
	return err
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) prompt() string {
	return fmt.Sprintf("contactdesk %s> ", a.nav.Location())
}

func (a *App) isSignedIn(ctx context.Context) bool {
	st, err := a.auth.Status(ctx)
	if err != nil {
		a.log.Warn(ctx, "credential lookup failed", "error", err)
		return false
	}
	return st.SignedIn
}
