package ecs

import "go.uber.org/zap"

// SyncStats summarises one synchronization pass.
type SyncStats struct {
	RemovedEntities   int
	RemovedComponents int
	Active            int
}

// Sync applies queued deletions and publishes new active counts. It must run
// once at the start of every frame, before any system.
//
// Deletions are resolved by entity identity, so the order requests were made
// in does not matter and no surviving entity is shifted onto a stale index.
func (w *World) Sync() SyncStats {
	var stats SyncStats

	if len(w.pendingDelete) > 0 {
		for _, e := range w.pendingDelete {
			if w.entities.destroy(e) {
				stats.RemovedEntities++
			}
		}

		w.order = compact(w.order, w.pendingSet)
		for tag, bucket := range w.tags {
			bucket = compact(bucket, w.pendingSet)
			if len(bucket) == 0 {
				delete(w.tags, tag)
				continue
			}
			w.tags[tag] = bucket
		}

		w.pendingDelete = w.pendingDelete[:0]
		clear(w.pendingSet)
	}

	w.active = len(w.order)
	for _, e := range w.order {
		if rec := w.entities.get(e); rec != nil {
			stats.RemovedComponents += rec.sync()
		}
	}
	stats.Active = w.active

	if stats.RemovedEntities > 0 || stats.RemovedComponents > 0 {
		w.log.Debug("world synchronized",
			zap.Int("removed_entities", stats.RemovedEntities),
			zap.Int("removed_components", stats.RemovedComponents),
			zap.Int("active", stats.Active))
	}
	return stats
}

// compact filters doomed entities out of list in place, keeping order.
func compact(list []Entity, doomed map[Entity]struct{}) []Entity {
	kept := list[:0]
	for _, e := range list {
		if _, drop := doomed[e]; drop {
			continue
		}
		kept = append(kept, e)
	}
	clear(list[len(kept):])
	return kept
}
