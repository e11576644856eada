// Package catalog builds the unified video catalog from the channel's public, unlisted
// and private videos.
//
// Records are fetched through a process-wide Cache, charged against the daily quota
// and deduplicated by id, first source wins. The finished catalog is persisted as a
// single snapshot that replaces the previous one.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/tubevault/tubevault/description"
	"github.com/tubevault/tubevault/log"
	"github.com/tubevault/tubevault/quota"
	"github.com/tubevault/tubevault/video"
	"github.com/tubevault/tubevault/youtube"
)

// ErrNoChannel is returned by Refresh when there is nothing to fetch from:
// no channel is configured and the unlisted allow-list is empty.
var ErrNoChannel = errors.New("no channel configured")

// Platform is the subset of the hosting platform the fetcher relies on.
type Platform interface {
	SearchChannel(ctx context.Context, channelID string) ([]string, error)
	Video(ctx context.Context, id string) (*youtube.Video, error)
	PrivateVideos(ctx context.Context, channelID string) ([]string, error)
}

// Quota is the budget every metadata lookup is charged against.
type Quota interface {
	Check() error
	Charge(cost int) error
	MarkExceeded()
}

// Options configures a Fetcher.
type Options struct {
	ChannelID string
	Unlisted  []string
}

// Fetcher orchestrates a catalog refresh.
type Fetcher struct {
	platform  Platform
	cache     *Cache
	quota     Quota
	persister Persister
	options   Options
	now       func() time.Time
}

// NewFetcher wires the fetcher to its collaborators. The cache and the quota
// tracker must already exist.
func NewFetcher(platform Platform, cache *Cache, tracker Quota, persister Persister, options Options) *Fetcher {
	return &Fetcher{
		platform:  platform,
		cache:     cache,
		quota:     tracker,
		persister: persister,
		options:   options,
		now:       time.Now,
	}
}

type source struct {
	origin video.Origin
	list   func(ctx context.Context) ([]string, error)
}

func (f *Fetcher) sources() []source {
	var sources []source

	if f.options.ChannelID != "" {
		sources = append(sources, source{
			origin: video.OriginPublic,
			list: func(ctx context.Context) ([]string, error) {
				return f.platform.SearchChannel(ctx, f.options.ChannelID)
			},
		})
	}

	sources = append(sources, source{
		origin: video.OriginUnlisted,
		list: func(context.Context) ([]string, error) {
			return f.options.Unlisted, nil
		},
	})

	if f.options.ChannelID != "" {
		sources = append(sources, source{
			origin: video.OriginPrivate,
			list: func(ctx context.Context) ([]string, error) {
				return f.platform.PrivateVideos(ctx, f.options.ChannelID)
			},
		})
	}

	return sources
}

// Refresh rebuilds the catalog: public videos first, then unlisted, then private.
//
// A source that fails is skipped. When the quota runs out the remaining work is
// abandoned and the partial catalog is returned together with quota.ErrExceeded;
// nothing is persisted in that case.
func (f *Fetcher) Refresh(ctx context.Context) ([]*video.Record, error) {
	if f.options.ChannelID == "" && len(f.options.Unlisted) == 0 {
		return nil, ErrNoChannel
	}

	if err := f.quota.Check(); err != nil {
		return nil, err
	}

	logger := log.Fields(map[string]any{"run": uuid.NewString()})
	logger.Info("refreshing catalog")
	started := f.now()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		records []*video.Record
		seen    = make(map[string]struct{})
	)

	add := func(batch []*video.Record) {
		for _, record := range batch {
			if _, ok := seen[record.ID]; ok {
				continue
			}
			seen[record.ID] = struct{}{}
			records = append(records, record)
		}
	}

	for _, src := range f.sources() {
		ids, err := src.list(ctx)
		if err != nil {
			if youtube.IsQuotaError(err) {
				f.quota.MarkExceeded()
				logger.Warnf("listing %s videos: %v", src.origin, err)
				return records, quota.ErrExceeded
			}

			logger.Warnf("skipping %s videos: %v", src.origin, err)
			continue
		}

		ids = lo.Filter(lo.Uniq(ids), func(id string, _ int) bool {
			_, ok := seen[id]
			return !ok && id != ""
		})

		batch, err := f.fetchAll(ctx, cancel, logger, ids, src.origin)
		add(batch)
		logger.Debugf("%s: %d ids, %d records", src.origin, len(ids), len(batch))

		if err != nil {
			return records, err
		}
	}

	snapshot := &Snapshot{Videos: records, LastUpdate: f.now()}
	if err := f.persister.Save(snapshot); err != nil {
		return records, fmt.Errorf("save catalog: %w", err)
	}

	logger.Infof("catalog refreshed with %d videos in %s", len(records), f.now().Sub(started))
	return records, nil
}

// fetchAll looks the ids up concurrently and returns the records in id order.
func (f *Fetcher) fetchAll(
	ctx context.Context,
	cancel context.CancelCauseFunc,
	logger *logrus.Entry,
	ids []string,
	origin video.Origin,
) ([]*video.Record, error) {
	results := make([]*video.Record, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		i, id := i, id
		wg.Add(1)
		go func() {
			defer wg.Done()

			record, err := f.Fetch(ctx, id)
			switch {
			case errors.Is(err, quota.ErrExceeded):
				cancel(quota.ErrExceeded)
			case err != nil:
				if ctx.Err() == nil {
					logger.Warnf("fetching %s: %v", id, err)
				}
			default:
				results[i] = record.OrEmpty()
			}
		}()
	}
	wg.Wait()

	records := lo.Compact(results)
	for _, record := range records {
		record.Origin = origin
		if origin == video.OriginPublic {
			record.Type = video.KindMyVideos
		}
	}

	if cause := context.Cause(ctx); cause != nil {
		if errors.Is(cause, quota.ErrExceeded) {
			return records, quota.ErrExceeded
		}
		return records, cause
	}

	return records, nil
}

// Fetch returns the record for id, from the cache when possible. An id whose
// description carries no type tag yields an absent record and no error.
func (f *Fetcher) Fetch(ctx context.Context, id string) (mo.Option[*video.Record], error) {
	if err := f.quota.Check(); err != nil {
		return mo.None[*video.Record](), err
	}

	if cached, ok := f.cache.Get(id).Get(); ok {
		return mo.Some(cached), nil
	}

	remote, err := f.platform.Video(ctx, id)
	if err != nil {
		if youtube.IsQuotaError(err) {
			f.quota.MarkExceeded()
			log.Warnf("fetching %s: %v", id, err)
			return mo.None[*video.Record](), quota.ErrExceeded
		}

		if errors.Is(err, youtube.ErrNotFound) {
			f.charge(1)
			log.Debugf("video %s not found", id)
			return mo.None[*video.Record](), nil
		}

		return mo.None[*video.Record](), err
	}

	f.charge(remote.Cost)

	tags, ok := description.Parse(remote.Description).Get()
	if !ok {
		log.Tracef("video %s has no catalog annotations", id)
		return mo.None[*video.Record](), nil
	}

	record := &video.Record{
		ID:          id,
		Title:       remote.Title,
		Description: remote.Description,
		Thumbnail:   remote.Thumbnail,
		IsPrivate:   remote.Private,
		Tags:        tags,
	}

	f.cache.Put(id, record)
	return mo.Some(record), nil
}

func (f *Fetcher) charge(cost int) {
	if err := f.quota.Charge(cost); err != nil {
		log.Errorf("charging quota: %v", err)
	}
}

// Load returns the persisted snapshot, if any.
func (f *Fetcher) Load() mo.Option[*Snapshot] {
	return f.persister.Load()
}
