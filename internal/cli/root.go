package cli

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/mindtrackhq/mindtrack/internal/backup"
	"github.com/mindtrackhq/mindtrack/internal/cache"
	"github.com/mindtrackhq/mindtrack/internal/constants"
	"github.com/mindtrackhq/mindtrack/internal/identity"
	"github.com/mindtrackhq/mindtrack/internal/insights"
	"github.com/mindtrackhq/mindtrack/internal/logger"
	"github.com/mindtrackhq/mindtrack/internal/storage"
	"github.com/mindtrackhq/mindtrack/internal/utils"
)

var (
	// ErrVaultLocked is returned when the supplied vault password is wrong.
	ErrVaultLocked = errors.New("vault password incorrect")
	// ErrVaultNoPassword is returned when the vault has no password yet.
	ErrVaultNoPassword = errors.New("vault password is not set; run 'mindtrack vault set-password' first")
)

type Context struct {
	Store    storage.Provider
	Identity identity.Provider
}

// DataDir returns the directory holding the store's files. The SQLite store's
// data path is the database file itself.
func (c *Context) DataDir() string {
	path := c.Store.GetDataPath()
	if strings.HasSuffix(path, ".db") {
		return filepath.Dir(path)
	}
	return path
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, err := backup.Create(c.DataDir()); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today returns today's date string in the configured timezone, falling back
// to the system timezone when settings are unavailable.
func (c *Context) Today() string {
	settings, err := c.Store.GetSettings()
	if err == nil {
		if today, err := utils.GetTodayFromSettings(settings); err == nil {
			return today
		}
	}
	return time.Now().Format(constants.DateFormat)
}

// UnlockVault verifies the vault password against the stored gate.
func (c *Context) UnlockVault(password string) error {
	stored, err := c.Store.GetVaultPassword()
	if err != nil {
		return err
	}
	if stored == "" {
		return ErrVaultNoPassword
	}
	if stored != password {
		return ErrVaultLocked
	}
	return nil
}

// IdentityClient lazily builds the process-wide identity client from settings.
// Profile reads go through the offline cache; a configured profile database
// takes precedence over REST profile reads.
func (c *Context) IdentityClient() (identity.Provider, error) {
	if c.Identity != nil {
		return c.Identity, nil
	}
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, err
	}
	if settings.IdentityURL == "" {
		return nil, errors.New("no identity endpoint configured; set identity_url in settings")
	}

	transport := cache.NewTransport(c.DataDir(), nil)
	opts := []identity.Option{
		identity.WithHTTPClient(&http.Client{Transport: transport, Timeout: 15 * time.Second}),
	}
	if settings.ProfileDB != "" {
		store, err := identity.OpenProfileStore(settings.ProfileDB)
		if err != nil {
			logger.Warn("profile database unreachable, using REST profile reads", "error", err)
		} else {
			opts = append(opts, identity.WithProfileReader(store))
		}
	}

	c.Identity = identity.NewClient(settings.IdentityURL, opts...)
	return c.Identity, nil
}

// FilterFlags are the shared list-filtering flags.
type FilterFlags struct {
	Favorites bool   `short:"f" help:"Show favorites only."`
	Search    string `short:"s" help:"Case-insensitive text search."`
	Category  string `short:"c" help:"Filter by category name."`
	From      string `help:"Start date (YYYY-MM-DD), inclusive."`
	To        string `help:"End date (YYYY-MM-DD), inclusive."`
}

// Query converts the flags into an insights query.
func (f FilterFlags) Query() insights.Query {
	return insights.Query{
		FavoritesOnly: f.Favorites,
		Search:        f.Search,
		Category:      f.Category,
		From:          f.From,
		To:            f.To,
	}
}

// FavoriteMarker renders the list-view favorite column.
func FavoriteMarker(favorite bool) string {
	if favorite {
		return "★ "
	}
	return "  "
}
