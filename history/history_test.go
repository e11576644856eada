package history

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/storage"
	"github.com/tubevault/tubevault/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestStore(t *testing.T) {
	Convey("Given an empty watch-state store", t, func() {
		persisted := storage.New[map[string]*Entry](filepath.Join(where.Storage(), t.Name()+".json"), 0)
		So(persisted.Clear(), ShouldBeNil)

		store := New(persisted)

		Convey("Nothing has a state", func() {
			So(store.Get("A").IsAbsent(), ShouldBeTrue)
			So(store.All(), ShouldBeEmpty)
		})

		Convey("Toggling an unseen video completes it", func() {
			state, err := store.Toggle("A")
			So(err, ShouldBeNil)
			So(state, ShouldEqual, Completed)
			So(store.Get("A").MustGet(), ShouldEqual, Completed)

			Convey("Toggling again unwatches it", func() {
				state, err := store.Toggle("A")
				So(err, ShouldBeNil)
				So(state, ShouldEqual, Unwatched)
			})
		})

		Convey("A started video toggles to completed", func() {
			So(store.Set("A", Started), ShouldBeNil)

			state, err := store.Toggle("A")
			So(err, ShouldBeNil)
			So(state, ShouldEqual, Completed)
		})

		Convey("Any state may follow any other", func() {
			So(store.Set("A", Completed), ShouldBeNil)
			So(store.Set("A", Started), ShouldBeNil)
			So(store.Get("A").MustGet(), ShouldEqual, Started)
		})

		Convey("Every set is persisted", func() {
			So(store.Set("A", Started), ShouldBeNil)
			So(store.Set("B", Completed), ShouldBeNil)

			reloaded := New(persisted)
			So(reloaded.Get("A").MustGet(), ShouldEqual, Started)
			So(reloaded.Get("B").MustGet(), ShouldEqual, Completed)
			So(reloaded.All()["B"].Timestamp.IsZero(), ShouldBeFalse)
		})

		Convey("Subscribers see every change", func() {
			var changes []Change
			store.Subscribe(func(c Change) {
				changes = append(changes, c)
			})

			So(store.Set("A", Started), ShouldBeNil)
			_, err := store.Toggle("A")
			So(err, ShouldBeNil)

			So(changes, ShouldHaveLength, 2)
			So(changes[0].ID, ShouldEqual, "A")
			So(changes[0].Entry.State, ShouldEqual, Started)
			So(changes[1].Entry.State, ShouldEqual, Completed)
		})
	})
}

func TestParseState(t *testing.T) {
	Convey("Given state names", t, func() {
		Convey("Known names parse", func() {
			for _, state := range States {
				parsed, err := ParseState(string(state))
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, state)
			}
		})

		Convey("Unknown names are rejected", func() {
			_, err := ParseState("halfway")
			So(err, ShouldNotBeNil)
		})
	})
}
