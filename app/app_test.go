package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubevault/tubevault/catalog"
	"github.com/tubevault/tubevault/filesystem"
	"github.com/tubevault/tubevault/history"
	"github.com/tubevault/tubevault/quota"
	"github.com/tubevault/tubevault/storage"
	"github.com/tubevault/tubevault/video"
	"github.com/tubevault/tubevault/where"
	"github.com/tubevault/tubevault/youtube"
)

func init() {
	filesystem.SetMemMapFs()
}

type platform struct {
	searches int
	err      error
}

func (p *platform) SearchChannel(context.Context, string) ([]string, error) {
	p.searches++
	return []string{"A"}, p.err
}

func (p *platform) PrivateVideos(context.Context, string) ([]string, error) {
	return nil, nil
}

func (p *platform) Video(_ context.Context, id string) (*youtube.Video, error) {
	return &youtube.Video{ID: id, Title: "Video " + id, Description: "[Type: movie]", Cost: 1}, nil
}

func testStores(name string) Stores {
	dir := filepath.Join(where.Storage(), name)
	stores := Stores{
		Quota:       storage.New[quota.State](filepath.Join(dir, "quota.json"), 0),
		WatchStates: storage.New[map[string]*history.Entry](filepath.Join(dir, "watch.json"), 0),
		Catalog:     storage.New[catalog.Snapshot](filepath.Join(dir, "catalog.json"), 0),
	}
	So(stores.Quota.Save(nil), ShouldBeNil)
	So(stores.WatchStates.Save(nil), ShouldBeNil)
	So(stores.Catalog.Save(nil), ShouldBeNil)
	return stores
}

func TestApp(t *testing.T) {
	Convey("Given an application context", t, func() {
		p := &platform{}
		stores := testStores(t.Name())
		a, err := New(Config{ChannelID: "UC1", UpdateInterval: time.Hour}, p, stores, nil)
		So(err, ShouldBeNil)

		Convey("Artwork is disabled without a client", func() {
			So(a.Artwork.IsAbsent(), ShouldBeTrue)
		})

		Convey("The first catalog request refreshes", func() {
			records, err := a.Catalog(context.Background(), false)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
			So(p.searches, ShouldEqual, 1)

			Convey("A fresh snapshot is reused", func() {
				records, err := a.Catalog(context.Background(), true)
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 1)
				So(p.searches, ShouldEqual, 1)
			})

			Convey("Saved records can be found by id", func() {
				record, ok := a.Find("A").Get()
				So(ok, ShouldBeTrue)
				So(record.Type, ShouldEqual, video.KindMyVideos)
				So(a.Find("Z").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Quota usage is shared with the fetcher", func() {
			_, err := a.Catalog(context.Background(), false)
			So(err, ShouldBeNil)
			So(a.Quota.Usage().Used, ShouldEqual, 1)
		})
	})

	Convey("Given a stale snapshot and an exhausted quota", t, func() {
		p := &platform{}
		stores := testStores(t.Name())
		So(stores.Catalog.Save(&catalog.Snapshot{
			Videos:     []*video.Record{{ID: "OLD"}},
			LastUpdate: time.Now().Add(-48 * time.Hour),
		}), ShouldBeNil)

		a, err := New(Config{ChannelID: "UC1", UpdateInterval: time.Hour}, p, stores, nil)
		So(err, ShouldBeNil)
		a.Quota.MarkExceeded()

		Convey("The saved catalog is returned along with the error", func() {
			records, err := a.Catalog(context.Background(), true)
			So(errors.Is(err, quota.ErrExceeded), ShouldBeTrue)
			So(records, ShouldHaveLength, 1)
			So(records[0].ID, ShouldEqual, "OLD")
		})
	})
}
