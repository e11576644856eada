package cache

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/where"
)

func init() {
	filesystem.SetMemMapFs()
}

type entry struct {
	Poster string `json:"poster"`
}

func TestCache(t *testing.T) {
	Convey("Given an empty artwork cache", t, func() {
		So(Clear(), ShouldBeNil)
		key := GenerateKey("Dark", "tv")

		Convey("Reading misses", func() {
			var e entry
			So(Read(key, &e), ShouldBeFalse)
		})

		Convey("Written entries read back", func() {
			So(Write(key, entry{Poster: "p.jpg"}), ShouldBeNil)

			var e entry
			So(Read(key, &e), ShouldBeTrue)
			So(e.Poster, ShouldEqual, "p.jpg")
		})

		Convey("Expired entries are ignored and collected", func() {
			So(Write(key, entry{Poster: "p.jpg"}), ShouldBeNil)
			old := time.Now().Add(-TTL - time.Hour)
			So(filesystem.API().Chtimes(filepath.Join(where.Artwork(), key), old, old), ShouldBeNil)

			var e entry
			So(Read(key, &e), ShouldBeFalse)
			So(CollectGarbage(), ShouldEqual, 1)
		})
	})
}

func TestGenerateKey(t *testing.T) {
	Convey("Given lookup queries", t, func() {
		Convey("Case and spacing do not matter", func() {
			So(GenerateKey(" The Wire", "tv"), ShouldEqual, GenerateKey("the wire ", "tv"))
		})

		Convey("The kind does", func() {
			So(GenerateKey("Dark", "tv"), ShouldNotEqual, GenerateKey("Dark", "movie"))
		})
	})
}
