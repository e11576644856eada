package storage

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/where"
)

func init() {
	filesystem.SetMemMapFs()
}

type document struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		store := New[document](filepath.Join(where.Storage(), t.Name()+".json"), 0)

		Convey("Loading yields nothing", func() {
			So(store.Load().IsAbsent(), ShouldBeTrue)
		})

		Convey("When a document is saved", func() {
			err := store.Save(&document{Name: "a", Items: []string{"x", "y"}})
			So(err, ShouldBeNil)

			Convey("It loads back", func() {
				doc, ok := store.Load().Get()
				So(ok, ShouldBeTrue)
				So(doc.Name, ShouldEqual, "a")
				So(doc.Items, ShouldResemble, []string{"x", "y"})
			})

			Convey("It is written to the backing file", func() {
				exists, err := filesystem.API().Exists(store.Path())
				So(err, ShouldBeNil)
				So(exists, ShouldBeTrue)
			})

			Convey("A second save replaces it wholesale", func() {
				So(store.Save(&document{Name: "b"}), ShouldBeNil)
				doc := store.Load().MustGet()
				So(doc.Name, ShouldEqual, "b")
				So(doc.Items, ShouldBeEmpty)
			})

			Convey("Clearing forgets it", func() {
				So(store.Clear(), ShouldBeNil)
				So(store.Load().IsAbsent(), ShouldBeTrue)
			})
		})
	})
}
