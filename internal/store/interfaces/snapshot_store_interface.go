package interfaces

import (
	"context"

	"quotely/internal/domain/entities"
)

// ISnapshotStore abstracts the key-value snapshot persistence collaborator.
//
// The store must be able to:
//   - load the full seven-collection snapshot, distinguishing "no snapshot
//     yet" from a load failure
//   - save all seven collections together as one unit
//
// Persistence is best-effort from the core's viewpoint: in-memory state
// stays authoritative when Save fails.
type ISnapshotStore interface {
	// Load returns the persisted snapshot. found is false when no snapshot
	// has ever been saved; that is not an error.
	Load(ctx context.Context) (snap *entities.Snapshot, found bool, err error)

	// Save persists the full snapshot atomically.
	Save(ctx context.Context, snap *entities.Snapshot) error
}
