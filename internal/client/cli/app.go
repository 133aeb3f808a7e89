package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/api"
	"github.com/dmitrijs2005/gophdrive/internal/client/config"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/client/session"
	"github.com/dmitrijs2005/gophdrive/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	gateway api.Gateway
	store   session.Store
	db      *sql.DB
	user    *models.User
	files   []models.File
	folders []models.Folder
	Mode    Mode
	reader  *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	store, db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	gateway, err := api.New(c.ServerBaseURL, api.AuthTransport(c.AuthTransport), c.RequestTimeout, store, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  c,
		gateway: gateway,
		store:   store,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil || a.store.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Name + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// refresh re-fetches the dashboard snapshot. Every mutation is followed by
// a refresh; nothing is patched incrementally.
func (a *App) refresh(ctx context.Context) error {
	res := a.gateway.Dashboard(ctx)
	if !res.OK {
		return fmt.Errorf("dashboard: %s", res.Message)
	}
	a.user = res.User
	a.files = res.Files
	a.folders = res.Folders
	return nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	log.Println("Welcome to GophDrive CLI (type 'help' for commands)")

	a.warnAboutStaleCredential()
	a.resumeSession(ctx)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// resumeSession revalidates a persisted credential by calling the server.
// An invalid credential is cleared by the gateway as a side effect of the
// failed call, so a failed resume simply leaves the user logged out.
func (a *App) resumeSession(ctx context.Context) {
	if !a.store.IsAuthenticated() {
		return
	}

	res := a.gateway.Me(ctx)
	if !res.OK {
		log.Printf("Stored session is no longer valid: %s", res.Message)
		return
	}
	a.user = res.User
	log.Printf("Resumed session for %s", res.User.Name)
}

func (a *App) warnAboutStaleCredential() {
	token, ok := a.store.Get()
	if !ok {
		return
	}
	if session.TokenExpired(token, time.Now()) {
		log.Println("Stored credential has expired; you will need to log in again")
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.gateway.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode != ModeOffline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
