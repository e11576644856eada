package video

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecordJSON(t *testing.T) {
	Convey("Given a fully populated record", t, func() {
		record := &Record{
			ID:          "abc",
			Title:       "Pilot",
			Description: "[Type: Series]",
			Thumbnail:   "https://i.ytimg.com/vi/abc/hqdefault.jpg",
			IsPrivate:   true,
			Origin:      OriginPrivate,
			Tags: Tags{
				Type:         KindSeries,
				Series:       "Show",
				Author:       "Someone",
				Actors:       []string{"A", "B", "A"},
				Season:       Int(1),
				Episode:      Int(7),
				EpisodeTitle: "Pilot Light",
				Synopsis:     "text",
			},
		}

		Convey("Tags are flattened into the record object", func() {
			data, err := json.Marshal(record)
			So(err, ShouldBeNil)

			var raw map[string]any
			So(json.Unmarshal(data, &raw), ShouldBeNil)
			So(raw["type"], ShouldEqual, KindSeries)
			So(raw["episodeTitle"], ShouldEqual, "Pilot Light")
			So(raw, ShouldNotContainKey, "unit")
		})

		Convey("A catalog survives a JSON round trip field for field", func() {
			catalog := []*Record{record, {ID: "m", Title: "Movie", Tags: Tags{Type: KindMovie}}}

			data, err := json.Marshal(catalog)
			So(err, ShouldBeNil)

			var back []*Record
			So(json.Unmarshal(data, &back), ShouldBeNil)
			So(back, ShouldResemble, catalog)
		})
	})
}

func TestRecordHelpers(t *testing.T) {
	Convey("Display title prefers the series name", t, func() {
		So((&Record{Title: "t", Tags: Tags{Series: "s"}}).DisplayTitle(), ShouldEqual, "s")
		So((&Record{Title: "t"}).DisplayTitle(), ShouldEqual, "t")
	})

	Convey("Clones do not share slices or numbers", t, func() {
		r := &Record{ID: "x", Tags: Tags{Actors: []string{"a"}, Season: Int(2)}}
		c := r.Clone()
		c.Actors[0] = "b"
		*c.Season = 3
		So(r.Actors[0], ShouldEqual, "a")
		So(*r.Season, ShouldEqual, 2)
	})

	Convey("URLs point at the platform", t, func() {
		So(WatchURL("abc"), ShouldEqual, "https://www.youtube.com/watch?v=abc")
		So(EmbedURL("abc"), ShouldEqual, "https://www.youtube.com/embed/abc?autoplay=1")
	})
}
