package order

import (
	"time"

	"waterdrop/internal/core/domain/model/kernel"
)

// HistoryEntry records one status change in the order's append-only history.
// Entries carry their own identity so persistence adapters can upsert them
// without rewriting the whole history.
type HistoryEntry struct {
	id     kernel.UUID
	status Status
	at     time.Time
	note   string
}

func newHistoryEntry(status Status, at time.Time, note string) HistoryEntry {
	return HistoryEntry{
		id:     kernel.NewUUID(),
		status: status,
		at:     at,
		note:   note,
	}
}

// RestoreHistoryEntry reconstructs a history entry from persistence.
func RestoreHistoryEntry(id kernel.UUID, status Status, at time.Time, note string) (HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{id: id, status: status, at: at, note: note}, nil
}

// ID returns the entry identity.
func (e HistoryEntry) ID() kernel.UUID {
	return e.id
}

// Status returns the status the order entered.
func (e HistoryEntry) Status() Status {
	return e.status
}

// At returns when the change happened.
func (e HistoryEntry) At() time.Time {
	return e.at
}

// Note returns the optional free-form note attached to the change.
func (e HistoryEntry) Note() string {
	return e.note
}
