// Package metadata defines the interface for metadata rendering operations
package metadata

//go:generate mockgen -destination=mock/mock_service.go -package=metadatamock github.com/emberforge/adventurer-api/internal/services/metadata Service

import (
	"context"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
	"github.com/emberforge/adventurer-api/internal/renderer"
)

// Service defines the interface for metadata rendering operations.
// Render calls are read-only and idempotent: the same token snapshot
// always yields byte-identical output.
type Service interface {
	// Full-document rendering
	GetMetadata(ctx context.Context, input *GetMetadataInput) (*GetMetadataOutput, error)
	GetMetadataPage(ctx context.Context, input *GetMetadataPageInput) (*GetMetadataPageOutput, error)

	// Image-only rendering
	GetImage(ctx context.Context, input *GetImageInput) (*GetImageOutput, error)
	GetImagePage(ctx context.Context, input *GetImagePageInput) (*GetImagePageOutput, error)

	// Attribute accessors
	GetTraits(ctx context.Context, input *GetTraitsInput) (*GetTraitsOutput, error)
	GetDescription(ctx context.Context, input *GetDescriptionInput) (*GetDescriptionOutput, error)
	GetBattleStatus(ctx context.Context, input *GetBattleStatusInput) (*GetBattleStatusOutput, error)

	// Snapshot administration (written by the chain indexer)
	PutSnapshot(ctx context.Context, input *PutSnapshotInput) (*PutSnapshotOutput, error)
	DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) (*DeleteSnapshotOutput, error)
}

// GetMetadataInput defines the request for a full metadata document
type GetMetadataInput struct {
	TokenID uint64
}

// GetMetadataOutput holds the rendered base64 JSON data URI
type GetMetadataOutput struct {
	DataURI string
}

// GetMetadataPageInput defines the request for a single-page document.
// Out-of-range pages render page 0, never fail.
type GetMetadataPageInput struct {
	TokenID uint64
	Page    uint8
}

// GetMetadataPageOutput holds the paginated document and its position
type GetMetadataPageOutput struct {
	DataURI   string
	Page      uint8
	PageCount uint8
}

// GetImageInput defines the request for the full multi-page image
type GetImageInput struct {
	TokenID uint64
}

// GetImageOutput holds the base64 SVG data URI
type GetImageOutput struct {
	DataURI string
}

// GetImagePageInput defines the request for a single page image
type GetImagePageInput struct {
	TokenID uint64
	Page    uint8
}

// GetImagePageOutput holds the base64 SVG data URI for one page
type GetImagePageOutput struct {
	DataURI string
}

// GetTraitsInput defines the request for the trait list
type GetTraitsInput struct {
	TokenID uint64
}

// GetTraitsOutput holds the ordered trait list
type GetTraitsOutput struct {
	Traits []renderer.Trait
}

// GetDescriptionInput defines the request for the collection description
type GetDescriptionInput struct{}

// GetDescriptionOutput holds the fixed lore text
type GetDescriptionOutput struct {
	Description string
}

// GetBattleStatusInput defines the request for derived battle status
type GetBattleStatusInput struct {
	TokenID uint64
}

// GetBattleStatusOutput holds the classifier and page-mode results
type GetBattleStatusOutput struct {
	State      renderer.BattleState
	BattleMode bool
	PageMode   renderer.PageMode
	PageCount  uint8
}

// PutSnapshotInput defines the request for storing a snapshot
type PutSnapshotInput struct {
	TokenID  uint64
	Snapshot *adventurer.Snapshot
}

// PutSnapshotOutput defines the response for storing a snapshot
type PutSnapshotOutput struct {
	Snapshot *adventurer.Snapshot
}

// DeleteSnapshotInput defines the request for removing a snapshot
type DeleteSnapshotInput struct {
	TokenID uint64
}

// DeleteSnapshotOutput defines the response for removing a snapshot
type DeleteSnapshotOutput struct{}
