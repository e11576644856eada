// Package app assembles the catalog core into one explicitly constructed context.
//
// Construction order matters: the quota tracker and the cache exist before the
// fetcher that is handed both; the watch-state store and the artwork client are
// independent of everything else.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/auth"
	"github.com/tubevault/tubevault/catalog"
	"github.com/tubevault/tubevault/history"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/log"
	"github.com/tubevault/tubevault/quota"
	"github.com/tubevault/tubevault/storage"
	"github.com/tubevault/tubevault/tmdb"
	"github.com/tubevault/tubevault/video"
	"github.com/tubevault/tubevault/where"
	"github.com/tubevault/tubevault/youtube"
	"golang.org/x/oauth2"
)

// Config is everything the core consumes from the configuration surface.
type Config struct {
	ChannelID         string
	APIKey            string
	TokenSource       oauth2.TokenSource
	Unlisted          []string
	MaxResults        int64
	UpdateInterval    time.Duration
	ForceOnNewSession bool
	TMDBAPIKey        string
}

// Stores are the persisted documents, one per owning component.
type Stores struct {
	Quota       quota.Persister
	WatchStates history.Persister
	Catalog     catalog.Persister
}

// App is the application context handed to every command.
type App struct {
	Quota   *quota.Tracker
	Cache   *catalog.Cache
	Fetcher *catalog.Fetcher
	Watch   *history.Store
	Artwork mo.Option[*tmdb.Client]
	Policy  catalog.Policy
}

// New builds the context from already constructed collaborators.
func New(cfg Config, platform catalog.Platform, stores Stores, artwork *tmdb.Client) (*App, error) {
	tracker := quota.New(stores.Quota)
	if err := tracker.Load(); err != nil {
		return nil, fmt.Errorf("load quota: %w", err)
	}

	cache := catalog.NewCache()

	fetcher := catalog.NewFetcher(platform, cache, tracker, stores.Catalog, catalog.Options{
		ChannelID: cfg.ChannelID,
		Unlisted:  cfg.Unlisted,
	})

	a := &App{
		Quota:   tracker,
		Cache:   cache,
		Fetcher: fetcher,
		Watch:   history.New(stores.WatchStates),
		Artwork: mo.EmptyableToOption(artwork),
		Policy: catalog.Policy{
			Window:            cfg.UpdateInterval,
			ForceOnNewSession: cfg.ForceOnNewSession,
		},
	}

	return a, nil
}

// ConfigFromViper reads the configuration once.
func ConfigFromViper() Config {
	return Config{
		ChannelID:         viper.GetString(key.YoutubeChannelID),
		APIKey:            viper.GetString(key.YoutubeAPIKey),
		TokenSource:       auth.TokenSource(),
		Unlisted:          viper.GetStringSlice(key.YoutubeUnlistedVideos),
		MaxResults:        viper.GetInt64(key.YoutubeSearchMaxResults),
		UpdateInterval:    viper.GetDuration(key.CatalogUpdateInterval),
		ForceOnNewSession: viper.GetBool(key.CatalogForceRefreshOnNewSession),
		TMDBAPIKey:        lo.Ternary(viper.GetBool(key.TMDBEnable), viper.GetString(key.TMDBAPIKey), ""),
	}
}

// DefaultStores are the documents under the storage directory.
func DefaultStores() Stores {
	return Stores{
		Quota:       storage.New[quota.State](where.Quota(), 0),
		WatchStates: storage.New[map[string]*history.Entry](where.WatchStates(), 0),
		Catalog:     storage.New[catalog.Snapshot](where.Catalog(), 0),
	}
}

// FromConfig builds the context the commands use.
func FromConfig(ctx context.Context) (*App, error) {
	cfg := ConfigFromViper()

	platform, err := youtube.New(ctx, youtube.Options{
		APIKey:      cfg.APIKey,
		TokenSource: cfg.TokenSource,
		MaxResults:  cfg.MaxResults,
	})
	if err != nil {
		return nil, err
	}

	return New(cfg, platform, DefaultStores(), tmdb.New(cfg.TMDBAPIKey))
}

// Catalog returns the persisted catalog when the policy trusts it and refreshes
// it otherwise. reload reports whether this session continues a previous one.
func (a *App) Catalog(ctx context.Context, reload bool) ([]*video.Record, error) {
	snapshot := a.Fetcher.Load().OrEmpty()

	if !a.Policy.NeedsRefresh(snapshot, time.Now(), reload) {
		log.Infof("using saved catalog from %s", snapshot.LastUpdate.Format(time.RFC3339))
		return snapshot.Videos, nil
	}

	records, err := a.Fetcher.Refresh(ctx)
	if err != nil && len(records) == 0 && snapshot != nil {
		log.Warnf("refresh failed, falling back to saved catalog: %v", err)
		return snapshot.Videos, err
	}

	return records, err
}

// Saved returns the persisted catalog without refreshing it.
func (a *App) Saved() []*video.Record {
	if snapshot, ok := a.Fetcher.Load().Get(); ok {
		return snapshot.Videos
	}
	return nil
}

// Find looks id up in the persisted catalog.
func (a *App) Find(id string) mo.Option[*video.Record] {
	record, ok := lo.Find(a.Saved(), func(r *video.Record) bool {
		return r.ID == id
	})
	if !ok {
		return mo.None[*video.Record]()
	}
	return mo.Some(record)
}
