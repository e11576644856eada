package catalog

import "time"

// Policy decides whether a persisted snapshot can be used without refreshing.
type Policy struct {
	// Window is how long a snapshot stays fresh. Zero means it never does.
	Window time.Duration

	// ForceOnNewSession makes every session that is not a reload refresh,
	// regardless of freshness.
	ForceOnNewSession bool
}

// NeedsRefresh reports whether snapshot is missing, stale, or untrusted for this session.
// reload is true when the session continues a previous view of the catalog.
func (p Policy) NeedsRefresh(snapshot *Snapshot, now time.Time, reload bool) bool {
	if snapshot == nil {
		return true
	}

	if p.ForceOnNewSession && !reload {
		return true
	}

	return snapshot.Age(now) >= p.Window
}
