// Package query remembers catalog search queries and suggests them back when completing.
package query

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/key"
	"github.com/tubevault/tubevault/storage"
	"github.com/tubevault/tubevault/where"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	mu              sync.Mutex
	store           = storage.New[map[string]*queryRecord](where.Queries(), 0)
	suggestionCache = make(map[string][]*queryRecord)
)

// Remember records q or bumps its rank by weight.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if record, ok := records[q]; ok {
		record.Rank += weight
	} else {
		records[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(suggestionCache)
	return store.Save(&records)
}

// Suggest returns the best ranked previous query matching q.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns the previous queries fuzzily matching q, most used first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestionCache[q]
	if !ok {
		for _, record := range load() {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// Clear forgets every remembered query.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	clear(suggestionCache)
	return store.Clear()
}

func load() map[string]*queryRecord {
	if records, ok := store.Load().Get(); ok && *records != nil {
		return *records
	}
	return make(map[string]*queryRecord)
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
