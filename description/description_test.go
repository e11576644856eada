package description

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubevault/tubevault/video"
)

func TestParse(t *testing.T) {
	Convey("Given a description with a type tag", t, func() {
		Convey("The type is lowercased", func() {
			for raw, want := range map[string]string{
				"[Type: Movie]":           "movie",
				"intro [TYPE: SERIES] x":  "series",
				"[type:Mis Videos]":       "mis videos",
				"[Type: cursos] [Foo: b]": "cursos",
			} {
				tags, ok := Parse(raw).Get()
				So(ok, ShouldBeTrue)
				So(tags.Type, ShouldEqual, want)
			}
		})

		Convey("Every supported tag is extracted", func() {
			raw := "Some text\n" +
				"[Type: Series]\n" +
				"[Titulo: Dark]\n" +
				"[Director: Baran bo Odar]\n" +
				"[Actors: Louis Hofmann , Lisa Vicari,Louis Hofmann]\n" +
				"[Season: 2]\n" +
				"[Episode: 5 The Pilot]\n" +
				"[Plataforma: Netflix]\n" +
				"[Synopsis:   A town.  ]"

			tags := Parse(raw).MustGet()
			So(tags.Series, ShouldEqual, "Dark")
			So(tags.Author, ShouldEqual, "Baran bo Odar")
			So(tags.Actors, ShouldResemble, []string{"Louis Hofmann", "Lisa Vicari", "Louis Hofmann"})
			So(*tags.Season, ShouldEqual, 2)
			So(*tags.Episode, ShouldEqual, 5)
			So(tags.EpisodeTitle, ShouldEqual, "The Pilot")
			So(tags.Platform, ShouldEqual, "Netflix")
			So(tags.Synopsis, ShouldEqual, "A town.")
		})

		Convey("Series and Autor are aliases", func() {
			tags := Parse("[Type: cursos][Series: Go][Autor: Rob]").MustGet()
			So(tags.Series, ShouldEqual, "Go")
			So(tags.Author, ShouldEqual, "Rob")
		})

		Convey("Episodes split into number and title", func() {
			tags := Parse(`[Type: series][Episode: "7 Pilot Light"]`).MustGet()
			So(*tags.Episode, ShouldEqual, 7)
			So(tags.EpisodeTitle, ShouldEqual, "Pilot Light")

			tags = Parse(`[Type: series][Episode: 7 Pilot Light]`).MustGet()
			So(*tags.Episode, ShouldEqual, 7)
			So(tags.EpisodeTitle, ShouldEqual, "Pilot Light")
		})

		Convey("Units keep their full name", func() {
			tags := Parse(`[Type: cursos][Unidad: "3 Fundamentals"]`).MustGet()
			So(*tags.Unit, ShouldEqual, 3)
			So(tags.UnitName, ShouldEqual, "3 Fundamentals")

			tags = Parse(`[Type: cursos][Unidad: Fundamentals]`).MustGet()
			So(*tags.Unit, ShouldEqual, 0)
			So(tags.UnitName, ShouldEqual, "Fundamentals")
		})

		Convey("Malformed numbers are tolerated", func() {
			tags := Parse("[Type: series][Season: two][Episode: Pilot]").MustGet()
			So(tags.Season, ShouldBeNil)
			So(tags.Episode, ShouldBeNil)
			So(tags.EpisodeTitle, ShouldEqual, "Pilot")
		})

		Convey("A multi-line synopsis block is used as fallback", func() {
			raw := "[Type: Movie]\nfoo\n[SYNOPSIS: Multi\nline text ]\nbar"
			So(Parse(raw).MustGet().Synopsis, ShouldEqual, "Multi\nline text")
		})

		Convey("A tagged synopsis wins over the fallback", func() {
			raw := "[Type: Movie][Synopsis: short]\n[SYNOPSIS: long\nform]"
			So(Parse(raw).MustGet().Synopsis, ShouldEqual, "short")
		})
	})

	Convey("Given a description without a type tag", t, func() {
		for _, raw := range []string{
			"",
			"just an upload",
			"[Series: Dark][Season: 1][Episode: 1 Secrets]",
			"[Typo: Movie]",
			"[SYNOPSIS: Multi\nline]",
		} {
			So(Parse(raw).IsAbsent(), ShouldBeTrue)
		}
	})
}

func TestKeys(t *testing.T) {
	Convey("The supported tag set is enumerable", t, func() {
		So(Keys(), ShouldResemble, []string{
			"actors", "autor", "director", "episode", "plataforma",
			"season", "series", "synopsis", "titulo", "type", "unidad",
		})
	})
}

func TestSynopsis(t *testing.T) {
	Convey("Synopsis falls back to the description", t, func() {
		So(Synopsis(&video.Record{Tags: video.Tags{Synopsis: "s"}}), ShouldEqual, "s")
		So(Synopsis(&video.Record{Description: "[SYNOPSIS: a\nb]"}), ShouldEqual, "a\nb")
		So(Synopsis(&video.Record{Description: "none"}), ShouldBeEmpty)
	})
}
