// Package description extracts catalog metadata from the bracketed [Key: Value]
// annotations of a free-text video description.
//
// Only descriptions carrying a Type tag are catalog material; Parse reports every
// other description as absent.
package description

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tubevault/tubevault/video"
	"golang.org/x/exp/slices"
)

var (
	tagPattern      = regexp.MustCompile(`\[(.*?):\s*(.*?)\]`)
	synopsisPattern = regexp.MustCompile(`(?s)\[SYNOPSIS:\s*(.*?)\]`)
	leadingDigits   = regexp.MustCompile(`^\d+`)
	leadingInteger  = regexp.MustCompile(`^\s*[+-]?\d+`)
	episodePrefix   = regexp.MustCompile(`^\d+\s*`)
)

const typeKey = "type"

type setter func(tags *video.Tags, value string)

// setters is the closed set of supported tag keys, lowercased.
var setters = map[string]setter{
	typeKey: func(t *video.Tags, v string) {
		t.Type = strings.ToLower(v)
	},
	"titulo": setSeries,
	"series": setSeries,
	"director": setAuthor,
	"autor":    setAuthor,
	"actors": func(t *video.Tags, v string) {
		t.Actors = lo.Map(strings.Split(v, ","), func(actor string, _ int) string {
			return strings.TrimSpace(actor)
		})
	},
	"season": func(t *video.Tags, v string) {
		t.Season = parseInt(v)
	},
	"episode": func(t *video.Tags, v string) {
		t.Episode = parseInt(v)
		t.EpisodeTitle = strings.TrimSpace(episodePrefix.ReplaceAllString(v, ""))
	},
	"unidad": func(t *video.Tags, v string) {
		unit := 0
		if digits := leadingDigits.FindString(v); digits != "" {
			unit, _ = strconv.Atoi(digits)
		}
		t.Unit = video.Int(unit)
		t.UnitName = v
	},
	"plataforma": func(t *video.Tags, v string) {
		t.Platform = v
	},
	"synopsis": func(t *video.Tags, v string) {
		t.Synopsis = strings.TrimSpace(v)
	},
}

func setSeries(t *video.Tags, v string) { t.Series = v }

func setAuthor(t *video.Tags, v string) { t.Author = v }

// Keys lists the supported tag keys in lowercase, sorted.
func Keys() []string {
	keys := lo.Keys(setters)
	slices.Sort(keys)
	return keys
}

// Parse scans raw for tags. Unknown keys are ignored, later occurrences of a key
// overwrite earlier ones. The result is absent when no Type tag was found.
func Parse(raw string) mo.Option[video.Tags] {
	var (
		tags  video.Tags
		typed bool
	)

	for _, match := range tagPattern.FindAllStringSubmatch(raw, -1) {
		name := strings.ToLower(match[1])
		set, ok := setters[name]
		if !ok {
			continue
		}

		if name == typeKey {
			typed = true
		}
		set(&tags, unquote(match[2]))
	}

	if tags.Synopsis == "" {
		if match := synopsisPattern.FindStringSubmatch(raw); match != nil {
			tags.Synopsis = strings.TrimSpace(match[1])
		}
	}

	if !typed {
		return mo.None[video.Tags]()
	}

	return mo.Some(tags)
}

// Synopsis returns the synopsis of a record, falling back to a multi-line
// [SYNOPSIS: ...] block of its description.
func Synopsis(r *video.Record) string {
	if r.Synopsis != "" {
		return r.Synopsis
	}

	if match := synopsisPattern.FindStringSubmatch(r.Description); match != nil {
		return strings.TrimSpace(match[1])
	}

	return ""
}

// parseInt reads the leading integer of s. Values that do not start with a number
// yield nil.
func parseInt(s string) *int {
	digits := strings.TrimSpace(leadingInteger.FindString(s))
	if digits == "" {
		return nil
	}

	n, err := strconv.Atoi(strings.TrimPrefix(digits, "+"))
	if err != nil {
		return nil
	}
	return video.Int(n)
}

// unquote strips one pair of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
