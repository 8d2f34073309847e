// Package adventurer provides the interface for adventurer snapshot persistence
package adventurer

//go:generate mockgen -destination=mock/mock_repository.go -package=adventurermock github.com/emberforge/adventurer-api/internal/repositories/adventurer Repository

import (
	"context"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
)

// Repository defines the interface for adventurer snapshot persistence.
// Snapshots are written by the chain indexer and read by the renderer.
type Repository interface {
	// Get retrieves a snapshot by token ID
	// Returns errors.NotFound if no snapshot exists for the token
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores or replaces the snapshot for a token
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Delete removes a token's snapshot
	// Returns errors.NotFound if no snapshot exists for the token
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a snapshot
type GetInput struct {
	TokenID uint64
}

// GetOutput defines the output for getting a snapshot
type GetOutput struct {
	Snapshot *adventurer.Snapshot
}

// SetInput defines the input for storing a snapshot
type SetInput struct {
	TokenID  uint64
	Snapshot *adventurer.Snapshot
}

// SetOutput defines the output for storing a snapshot
type SetOutput struct {
	Snapshot *adventurer.Snapshot
}

// DeleteInput defines the input for deleting a snapshot
type DeleteInput struct {
	TokenID uint64
}

// DeleteOutput defines the output for deleting a snapshot
type DeleteOutput struct{}
