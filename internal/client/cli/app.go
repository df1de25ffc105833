package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/bloodbank/internal/client/client"
	"github.com/dmitrijs2005/bloodbank/internal/client/config"
	"github.com/dmitrijs2005/bloodbank/internal/client/services"
	"github.com/dmitrijs2005/bloodbank/internal/client/store"
	"github.com/dmitrijs2005/bloodbank/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	data        services.DataService
	store       store.Store
	log         logging.Logger
	credentials credentials
	adminName   string
	reader      *bufio.Reader
	out         io.Writer
	closeFn     func() error
	closeOnce   sync.Once
	closeErr    error

	mu   sync.RWMutex
	mode Mode
}

// NewApp opens the local store (SQLite unless cfg.UseMemoryStore is set),
// builds the API client and the data service.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	creds, err := newCredentials(c.AdminUser, c.AdminPasswordHash)
	if err != nil {
		return nil, err
	}

	var (
		st      store.Store
		closeFn = func() error { return nil }
	)
	if c.UseMemoryStore {
		st = store.NewMemoryStore()
		log.Info(ctx, "using in-memory local store")
	} else {
		db, err := client.InitDatabase(ctx, c.DatabasePath)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", c.DatabasePath, "err", err)
			return nil, err
		}
		st = store.NewSQLiteStore(db)
		closeFn = db.Close
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	ds := services.NewDataService(apiClient, st, log, c.HealthTimeout)

	return &App{
		config:      c,
		data:        ds,
		store:       st,
		log:         log.With("module", "cli"),
		credentials: creds,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		closeFn:     closeFn,
	}, nil
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, fmt.Sprintf("switched to %s mode", mode))
	}
}

// probe runs one connectivity check and records the resulting mode.
func (a *App) probe(ctx context.Context) bool {
	online := a.data.CheckConnection(ctx)
	if online {
		a.setMode(ctx, ModeOnline)
	} else {
		a.setMode(ctx, ModeOffline)
	}
	return online
}

// Run probes the API once, starts the status watcher and blocks in the REPL
// until the user quits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "error closing local store", "err", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to the Blood Bank CLI (type 'help' for commands)")
	a.probe(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the local store. It is safe to call more than once and
// from another goroutine while Run is still blocked on input.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.closeErr = a.closeFn()
	})
	return a.closeErr
}

func (a *App) isAdmin() bool {
	return a.adminName != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.adminName != "" {
		s = a.adminName + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher probes the API every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}
