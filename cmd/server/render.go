package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
	"github.com/emberforge/adventurer-api/internal/renderer"
)

var (
	renderSnapshotPath string
	renderTokenID      uint64
	renderPage         int
	renderImageOnly    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a snapshot file to stdout",
	Long:  `Render reads an adventurer snapshot from a JSON file and prints the metadata or image data URI, without touching the snapshot store.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderSnapshotPath, "snapshot", "", "path to a snapshot JSON file (required)")
	renderCmd.Flags().Uint64Var(&renderTokenID, "token-id", 1, "token ID to render under")
	renderCmd.Flags().IntVar(&renderPage, "page", -1, "render a single page instead of the full document")
	renderCmd.Flags().BoolVar(&renderImageOnly, "image-only", false, "print the SVG data URI instead of the metadata document")
	_ = renderCmd.MarkFlagRequired("snapshot")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(renderSnapshotPath)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot adventurer.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}

	var out string
	switch {
	case renderImageOnly && renderPage >= 0:
		out = renderer.ImagePage(&snapshot, renderer.Page(renderPage))
	case renderImageOnly:
		out = renderer.Image(&snapshot)
	case renderPage >= 0:
		out = renderer.RenderPage(renderTokenID, &snapshot, renderer.Page(renderPage))
	default:
		out = renderer.Render(renderTokenID, &snapshot)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
