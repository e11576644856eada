package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"google.golang.org/api/option"
)

type fakePlatform struct {
	calls atomic.Int32
}

func (f *fakePlatform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)

	query := r.URL.Query()
	path := r.URL.Path
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(path, "/search"):
		if query.Get("channelId") != "UC1" {
			writeJSON(w, map[string]any{"items": []any{}})
			return
		}
		writeJSON(w, map[string]any{"items": []any{
			map[string]any{"id": map[string]any{"kind": "youtube#video", "videoId": "A"}},
			map[string]any{"id": map[string]any{"kind": "youtube#playlist", "playlistId": "P"}},
			map[string]any{"id": map[string]any{"kind": "youtube#video", "videoId": "B"}},
		}})
	case strings.HasSuffix(path, "/channels"):
		writeJSON(w, map[string]any{"items": []any{
			map[string]any{"id": "UC1", "contentDetails": map[string]any{
				"relatedPlaylists": map[string]any{"uploads": "UU1"},
			}},
		}})
	case strings.HasSuffix(path, "/playlistItems"):
		writeJSON(w, map[string]any{"items": []any{
			map[string]any{"contentDetails": map[string]any{"videoId": "A"}},
			map[string]any{"contentDetails": map[string]any{"videoId": "C"}},
			map[string]any{"contentDetails": map[string]any{"videoId": "C"}},
			map[string]any{"contentDetails": map[string]any{"videoId": "D"}},
		}})
	case strings.HasSuffix(path, "/videos"):
		ids := strings.Split(strings.Join(query["id"], ","), ",")

		if query.Get("part") == "status" {
			items := make([]any, 0, len(ids))
			for _, id := range ids {
				status := "public"
				if id == "C" || id == "D" {
					status = "private"
				}
				items = append(items, map[string]any{"id": id, "status": map[string]any{"privacyStatus": status}})
			}
			writeJSON(w, map[string]any{"items": items})
			return
		}

		switch ids[0] {
		case "quota":
			w.WriteHeader(http.StatusForbidden)
			writeJSON(w, map[string]any{"error": map[string]any{
				"code":    403,
				"message": "The request cannot be completed because you have exceeded your quota.",
				"errors":  []any{map[string]any{"reason": "quotaExceeded", "message": "exceeded your quota"}},
			}})
		case "missing":
			writeJSON(w, map[string]any{"items": []any{}})
		default:
			w.Header().Set("X-Quota-Cost", "3")
			writeJSON(w, map[string]any{"items": []any{
				map[string]any{
					"id": ids[0],
					"snippet": map[string]any{
						"title":       "Title " + ids[0],
						"description": "[Type: Movie]",
						"thumbnails": map[string]any{
							"default": map[string]any{"url": "https://i.ytimg.com/default.jpg"},
							"high":    map[string]any{"url": "https://i.ytimg.com/high.jpg"},
						},
					},
					"status": map[string]any{"privacyStatus": "unlisted"},
				},
			}})
		}
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(handler http.Handler) (*Client, func()) {
	srv := httptest.NewServer(handler)

	client, err := New(context.Background(), Options{
		ClientOptions: []option.ClientOption{
			option.WithEndpoint(srv.URL + "/"),
			option.WithHTTPClient(srv.Client()),
		},
	})
	So(err, ShouldBeNil)

	return client, srv.Close
}

func TestClient(t *testing.T) {
	Convey("Given a client talking to a fake platform", t, func() {
		platform := &fakePlatform{}
		client, closeServer := newTestClient(platform)
		defer closeServer()

		ctx := context.Background()

		Convey("Searching a channel returns only video ids", func() {
			ids, err := client.SearchChannel(ctx, "UC1")
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"A", "B"})
		})

		Convey("Looking up a video returns its details and reported cost", func() {
			video, err := client.Video(ctx, "A")
			So(err, ShouldBeNil)
			So(video.ID, ShouldEqual, "A")
			So(video.Title, ShouldEqual, "Title A")
			So(video.Description, ShouldEqual, "[Type: Movie]")
			So(video.Thumbnail, ShouldEqual, "https://i.ytimg.com/high.jpg")
			So(video.Private, ShouldBeFalse)
			So(video.Cost, ShouldEqual, 3)
		})

		Convey("A video the platform does not know is not found", func() {
			_, err := client.Video(ctx, "missing")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(IsQuotaError(err), ShouldBeFalse)
		})

		Convey("A quota rejection is classified as such", func() {
			_, err := client.Video(ctx, "quota")
			So(err, ShouldNotBeNil)
			So(IsQuotaError(err), ShouldBeTrue)
		})

		Convey("Private enumeration walks the uploads and keeps private ones", func() {
			ids, err := client.PrivateVideos(ctx, "UC1")
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"C", "D"})
			So(platform.calls.Load(), ShouldEqual, 3)
		})
	})
}

func TestIsQuotaError(t *testing.T) {
	Convey("Given assorted errors", t, func() {
		Convey("nil is not a quota error", func() {
			So(IsQuotaError(nil), ShouldBeFalse)
		})

		Convey("A message mentioning the quota is", func() {
			So(IsQuotaError(errors.New("Daily Quota reached")), ShouldBeTrue)
		})

		Convey("A wrapped unrelated error is not", func() {
			So(IsQuotaError(fmt.Errorf("get video: %w", errors.New("connection reset"))), ShouldBeFalse)
		})
	})
}

func TestCost(t *testing.T) {
	Convey("Given response headers", t, func() {
		Convey("A reported cost is used", func() {
			h := http.Header{}
			h.Set("X-Quota-Cost", "100")
			So(cost(h), ShouldEqual, 100)
		})

		Convey("A missing or malformed cost defaults to one", func() {
			So(cost(http.Header{}), ShouldEqual, 1)

			h := http.Header{}
			h.Set("X-Quota-Cost", "lots")
			So(cost(h), ShouldEqual, 1)
		})
	})
}
