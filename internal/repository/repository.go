package repository

import (
	"context"

	"secretsdir/internal/domain"
)

// Journal defines the interface for decision history persistence
type Journal interface {
	// Record appends a decision and returns its assigned ID
	Record(ctx context.Context, d domain.Decision) (int64, error)

	// List returns the most recent decisions, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.Decision, error)

	// Latest returns the newest decision for a machine, or nil if none exist
	Latest(ctx context.Context, machineName string) (*domain.Decision, error)

	// Close releases resources
	Close() error
}

// Recorder adapts a Journal to the single-method recorder the classifier
// expects, dropping the assigned ID.
type Recorder struct {
	Journal Journal
}

// Record stores d in the underlying journal
func (r Recorder) Record(ctx context.Context, d domain.Decision) error {
	_, err := r.Journal.Record(ctx, d)
	return err
}
