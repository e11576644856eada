package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		So(Clear(), ShouldBeNil)

		Convey("When remembering queries", func() {
			So(Remember("dark", 1), ShouldBeNil)
			So(Remember("  Darkwing Duck ", 10), ShouldBeNil)

			Convey("Suggestions are sorted by rank", func() {
				s := SuggestMany("dar")
				So(s, ShouldResemble, []string{"darkwing duck", "dark"})
				So(Suggest("dar").MustGet(), ShouldEqual, "darkwing duck")
			})

			Convey("Remembering again bumps the rank", func() {
				So(Remember("DARK", 20), ShouldBeNil)
				So(Suggest("dar").MustGet(), ShouldEqual, "dark")
			})

			Convey("Nothing is suggested when disabled", func() {
				viper.Set(key.SearchShowQuerySuggestions, false)
				So(SuggestMany("dar"), ShouldBeEmpty)
				So(Suggest("dar").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Blank queries are not remembered", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(""), ShouldBeEmpty)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  DARK  "), ShouldEqual, "dark")
		})
	})
}
