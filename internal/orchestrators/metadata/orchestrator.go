// Package metadata implements the metadata rendering orchestrator
package metadata

import (
	"context"
	"log/slog"

	"github.com/emberforge/adventurer-api/internal/errors"
	"github.com/emberforge/adventurer-api/internal/renderer"
	adventurerrepo "github.com/emberforge/adventurer-api/internal/repositories/adventurer"
	"github.com/emberforge/adventurer-api/internal/services/metadata"
)

// Config holds the dependencies for the metadata orchestrator
type Config struct {
	AdventurerRepo adventurerrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.AdventurerRepo == nil {
		vb.RequiredField("AdventurerRepo")
	}

	return vb.Build()
}

// Orchestrator implements the metadata.Service interface
type Orchestrator struct {
	adventurerRepo adventurerrepo.Repository
}

// New creates a new metadata orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		adventurerRepo: cfg.AdventurerRepo,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ metadata.Service = (*Orchestrator)(nil)

// fetchSnapshot is the single inbound data dependency: everything else
// in a render call is a pure function of the returned snapshot.
func (o *Orchestrator) fetchSnapshot(ctx context.Context, tokenID uint64) (*adventurerrepo.GetOutput, error) {
	out, err := o.adventurerRepo.Get(ctx, adventurerrepo.GetInput{TokenID: tokenID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch adventurer %d", tokenID)
	}
	return out, nil
}

// GetMetadata renders the full metadata document for a token
func (o *Orchestrator) GetMetadata(ctx context.Context, input *metadata.GetMetadataInput) (*metadata.GetMetadataOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.fetchSnapshot(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}

	return &metadata.GetMetadataOutput{
		DataURI: renderer.Render(input.TokenID, out.Snapshot),
	}, nil
}

// GetMetadataPage renders a single page's metadata document.
// Out-of-range pages fall back to page 0 rather than failing.
func (o *Orchestrator) GetMetadataPage(ctx context.Context, input *metadata.GetMetadataPageInput) (*metadata.GetMetadataPageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.fetchSnapshot(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}

	return &metadata.GetMetadataPageOutput{
		DataURI:   renderer.RenderPage(input.TokenID, out.Snapshot, renderer.Page(input.Page)),
		Page:      input.Page,
		PageCount: renderer.PageCount(out.Snapshot),
	}, nil
}

// GetImage renders the full multi-page SVG data URI
func (o *Orchestrator) GetImage(ctx context.Context, input *metadata.GetImageInput) (*metadata.GetImageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.fetchSnapshot(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}

	return &metadata.GetImageOutput{
		DataURI: renderer.Image(out.Snapshot),
	}, nil
}

// GetImagePage renders one page's SVG data URI
func (o *Orchestrator) GetImagePage(ctx context.Context, input *metadata.GetImagePageInput) (*metadata.GetImagePageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.fetchSnapshot(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}

	return &metadata.GetImagePageOutput{
		DataURI: renderer.ImagePage(out.Snapshot, renderer.Page(input.Page)),
	}, nil
}

// GetTraits returns the ordered trait list for a token
func (o *Orchestrator) GetTraits(ctx context.Context, input *metadata.GetTraitsInput) (*metadata.GetTraitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.fetchSnapshot(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}

	return &metadata.GetTraitsOutput{
		Traits: renderer.Traits(out.Snapshot),
	}, nil
}

// GetDescription returns the fixed collection lore text
func (o *Orchestrator) GetDescription(_ context.Context, _ *metadata.GetDescriptionInput) (*metadata.GetDescriptionOutput, error) {
	return &metadata.GetDescriptionOutput{
		Description: renderer.Description(),
	}, nil
}

// GetBattleStatus returns the derived battle classification and page mode
func (o *Orchestrator) GetBattleStatus(ctx context.Context, input *metadata.GetBattleStatusInput) (*metadata.GetBattleStatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.fetchSnapshot(ctx, input.TokenID)
	if err != nil {
		return nil, err
	}

	return &metadata.GetBattleStatusOutput{
		State:      renderer.BattleStateOf(out.Snapshot),
		BattleMode: renderer.IsBattleMode(out.Snapshot),
		PageMode:   renderer.PageModeOf(out.Snapshot),
		PageCount:  renderer.PageCount(out.Snapshot),
	}, nil
}

// PutSnapshot stores or replaces a token's snapshot
func (o *Orchestrator) PutSnapshot(ctx context.Context, input *metadata.PutSnapshotInput) (*metadata.PutSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	out, err := o.adventurerRepo.Set(ctx, adventurerrepo.SetInput{
		TokenID:  input.TokenID,
		Snapshot: input.Snapshot,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store adventurer %d", input.TokenID)
	}

	slog.Info("snapshot updated", "token_id", input.TokenID, "level", input.Snapshot.Level)

	return &metadata.PutSnapshotOutput{Snapshot: out.Snapshot}, nil
}

// DeleteSnapshot removes a token's snapshot
func (o *Orchestrator) DeleteSnapshot(ctx context.Context, input *metadata.DeleteSnapshotInput) (*metadata.DeleteSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.adventurerRepo.Delete(ctx, adventurerrepo.DeleteInput{TokenID: input.TokenID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete adventurer %d", input.TokenID)
	}

	slog.Info("snapshot deleted", "token_id", input.TokenID)

	return &metadata.DeleteSnapshotOutput{}, nil
}
