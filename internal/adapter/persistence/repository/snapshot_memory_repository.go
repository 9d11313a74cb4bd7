package repository

import (
	"context"
	"sync"

	"quotely/internal/domain/entities"
	"quotely/internal/store/interfaces"
)

// SnapshotMemoryRepository keeps the snapshot in process memory. It backs
// tests and local runs without a DynamoDB endpoint; swapping it for the
// DynamoDB repository changes nothing above the ISnapshotStore seam.
type SnapshotMemoryRepository struct {
	mu   sync.Mutex
	snap *entities.Snapshot
}

var _ interfaces.ISnapshotStore = (*SnapshotMemoryRepository)(nil)

func NewSnapshotMemoryRepository() *SnapshotMemoryRepository {
	return &SnapshotMemoryRepository{}
}

func (r *SnapshotMemoryRepository) Load(_ context.Context) (*entities.Snapshot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap == nil {
		return nil, false, nil
	}
	return r.snap.Clone(), true, nil
}

func (r *SnapshotMemoryRepository) Save(_ context.Context, snap *entities.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = snap.Clone()
	return nil
}
