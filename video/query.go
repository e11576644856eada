package video

import (
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// All is the pseudo-category that selects the whole catalog.
const All = "todo"

// Search keeps the records whose title, author or one of the actors matches the query.
// An empty query keeps everything.
func Search(records []*Record, query string) []*Record {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}

	return lo.Filter(records, func(r *Record, _ int) bool {
		if fuzzy.MatchNormalizedFold(query, r.Title) || fuzzy.MatchNormalizedFold(query, r.Author) {
			return true
		}
		return lo.SomeBy(r.Actors, func(actor string) bool {
			return fuzzy.MatchNormalizedFold(query, actor)
		})
	})
}

// ByType keeps the records of the given type. All keeps everything.
func ByType(records []*Record, kind string) []*Record {
	kind = normalize(kind)
	if kind == All || kind == "" {
		return records
	}

	return lo.Filter(records, func(r *Record, _ int) bool {
		return normalize(r.Type) == kind
	})
}

// ByPerson keeps the records authored by or featuring name.
func ByPerson(records []*Record, name string) []*Record {
	return lo.Filter(records, func(r *Record, _ int) bool {
		return r.Author == name || lo.Contains(r.Actors, name)
	})
}

// Categories lists All followed by every distinct type in the catalog, alphabetically.
func Categories(records []*Record) []string {
	kinds := lo.Uniq(lo.FilterMap(records, func(r *Record, _ int) (string, bool) {
		kind := normalize(r.Type)
		return kind, kind != "" && kind != All
	}))
	slices.Sort(kinds)

	return append([]string{All}, kinds...)
}

// Group collapses episodic records to the first one seen per series so a grid shows
// one card per series. Other records are kept individually, in order.
func Group(records []*Record) []*Record {
	seen := make(map[string]struct{})

	return lo.Filter(records, func(r *Record, _ int) bool {
		if !r.Episodic() {
			return true
		}

		k := r.Type + "\x00" + r.Series
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Episodes returns every record of the same type and series as r, ordered by unit
// (courses) or season, then by episode.
func Episodes(records []*Record, r *Record) []*Record {
	episodes := lo.Filter(records, func(e *Record, _ int) bool {
		return e.Type == r.Type && e.Series == r.Series
	})

	slices.SortStableFunc(episodes, func(a, b *Record) int {
		if d := Section(a) - Section(b); d != 0 {
			return d
		}
		return deref(a.Episode) - deref(b.Episode)
	})

	return episodes
}

// Section is the season-equivalent of an episodic record: its unit for courses,
// its season otherwise.
func Section(r *Record) int {
	if r.Type == KindCourse {
		return deref(r.Unit)
	}
	return deref(r.Season)
}

// SectionName labels the section of an episodic record.
func SectionName(r *Record) string {
	if r.Type == KindCourse {
		return r.UnitName
	}
	if r.Season == nil {
		return "Season ?"
	}
	return "Season " + strconv.Itoa(*r.Season)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
