// Package custody derives the current holding state of vehicle assets (keys,
// dashcams, toll tags) from their append-only custody event log.
package custody

import (
	"sort"

	"github.com/ukydev/fleet-compliance/internal/models"
)

// Key identifies a physical asset slot across its event history. Events with
// an empty description share a per-type placeholder, so undescribed assets of
// the same type collapse into one slot while different types stay distinct.
type Key struct {
	AssetType   models.AssetType
	Description string
}

// KeyFor returns the composite key for an event.
func KeyFor(e models.AssetEvent) Key {
	desc := e.Description
	if desc == "" {
		desc = "unspecified " + string(e.AssetType)
	}
	return Key{AssetType: e.AssetType, Description: desc}
}

// Reduce folds an event history, walked oldest to newest, into the most
// recent event per asset slot. Input order is irrelevant; events sharing a
// log date resolve by input order, which is acceptable because only the date
// feeds downstream decisions.
func Reduce(events []models.AssetEvent) map[Key]models.AssetEvent {
	ordered := make([]models.AssetEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LogDate.Before(ordered[j].LogDate)
	})
	latest := make(map[Key]models.AssetEvent, len(ordered))
	for _, e := range ordered {
		latest[KeyFor(e)] = e
	}
	return latest
}

// CurrentHoldings returns the assets the organization still possesses:
// slots whose latest event is assigned or returned. Lost and disposed are
// terminal exits. The list is ordered assigned before returned, then by
// asset type, then description.
func CurrentHoldings(events []models.AssetEvent) []models.AssetEvent {
	var held []models.AssetEvent
	for _, e := range Reduce(events) {
		if e.Status == models.AssetAssigned || e.Status == models.AssetReturned {
			held = append(held, e)
		}
	}
	sort.Slice(held, func(i, j int) bool {
		a, b := held[i], held[j]
		if a.Status != b.Status {
			return statusRank(a.Status) < statusRank(b.Status)
		}
		if a.AssetType != b.AssetType {
			return a.AssetType < b.AssetType
		}
		return a.Description < b.Description
	})
	return held
}

// History returns the full event log newest first, for the audit trail.
func History(events []models.AssetEvent) []models.AssetEvent {
	ordered := make([]models.AssetEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LogDate.After(ordered[j].LogDate)
	})
	return ordered
}

func statusRank(s models.AssetStatus) int {
	if s == models.AssetAssigned {
		return 0
	}
	return 1
}
