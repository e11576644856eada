package catalog

import (
	"time"

	"github.com/samber/mo"
	"github.com/tubevault/tubevault/video"
)

// Snapshot is the persisted catalog. It is always replaced as a whole.
type Snapshot struct {
	Videos     []*video.Record `json:"videos"`
	LastUpdate time.Time       `json:"lastUpdate"`
}

// Persister stores the snapshot.
type Persister interface {
	Load() mo.Option[*Snapshot]
	Save(*Snapshot) error
}

// Age returns how long ago the snapshot was taken.
func (s *Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.LastUpdate)
}
