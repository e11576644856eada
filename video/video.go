// Package video defines the catalog's record type and the read-only queries the
// presentation layer runs over a catalog.
package video

import "fmt"

// Well-known values of the type tag. Any other free-form value is accepted.
const (
	KindMovie    = "movie"
	KindSeries   = "series"
	KindCourse   = "cursos"
	KindMyVideos = "mis videos"
)

// Origin is the source a record was discovered through.
type Origin string

const (
	OriginPublic   Origin = "public"
	OriginUnlisted Origin = "unlisted"
	OriginPrivate  Origin = "private"
)

// Tags holds everything extracted from the bracketed annotations of a description.
// Numeric fields are nil when the tag is missing or its value is not a number.
type Tags struct {
	Type         string   `json:"type"`
	Series       string   `json:"series,omitempty"`
	Author       string   `json:"author,omitempty"`
	Actors       []string `json:"actors,omitempty"`
	Season       *int     `json:"season,omitempty"`
	Episode      *int     `json:"episode,omitempty"`
	EpisodeTitle string   `json:"episodeTitle,omitempty"`
	Unit         *int     `json:"unit,omitempty"`
	UnitName     string   `json:"unitName,omitempty"`
	Platform     string   `json:"platform,omitempty"`
	Synopsis     string   `json:"synopsis,omitempty"`
}

// Record is the canonical unit of catalog data.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	IsPrivate   bool   `json:"isPrivate"`
	Origin      Origin `json:"origin,omitempty"`

	Tags
}

func (r *Record) String() string {
	return r.DisplayTitle()
}

// DisplayTitle is the series name for episodic content and the video title otherwise.
func (r *Record) DisplayTitle() string {
	if r.Series != "" {
		return r.Series
	}
	return r.Title
}

// Episodic reports whether the record belongs to a multi-episode group.
func (r *Record) Episodic() bool {
	return r.Type == KindSeries || r.Type == KindCourse
}

// Clone returns a copy that shares no mutable state with r.
func (r *Record) Clone() *Record {
	c := *r
	if r.Actors != nil {
		c.Actors = append([]string(nil), r.Actors...)
	}
	c.Season = cloneInt(r.Season)
	c.Episode = cloneInt(r.Episode)
	c.Unit = cloneInt(r.Unit)
	return &c
}

// WatchURL is the platform page of the video.
func WatchURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}

// EmbedURL is the autoplaying embedded player of the video.
func EmbedURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1", id)
}

// Int returns a pointer to n, for building records by hand.
func Int(n int) *int {
	return &n
}

func cloneInt(n *int) *int {
	if n == nil {
		return nil
	}
	return Int(*n)
}

func deref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
