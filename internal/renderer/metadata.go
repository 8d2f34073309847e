package renderer

import (
	"encoding/json"
	"strconv"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
	"github.com/emberforge/adventurer-api/internal/pkg/encoding"
)

// description is the fixed lore text embedded in every metadata
// document.
const description = "An adventurer of the deep places, rendered and stored entirely on-chain. " +
	"Stats, equipment, and scars are committed to the ledger; nothing lives off of it."

// fallbackName labels adventurers whose packed name decodes empty.
const fallbackName = "Adventurer"

type pageInfo struct {
	Current uint8 `json:"current"`
	Total   uint8 `json:"total"`
}

type metadataDoc struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Pages       *pageInfo `json:"pages,omitempty"`
}

// Render builds the complete metadata document for a token and wraps it
// as a base64 JSON data URI. It never returns an empty string for any
// representable snapshot.
func Render(tokenID uint64, s *adventurer.Snapshot) string {
	doc := metadataDoc{
		Name:        tokenName(tokenID, s),
		Description: description,
		Image:       encoding.SVGDataURI(ComposeImage(s)),
	}
	return encoding.JSONDataURI(marshalDoc(doc))
}

// RenderPage is the paginated variant: the requested page only, a
// "- Page N" name suffix, and a pages object. Out-of-range pages render
// page 0.
func RenderPage(tokenID uint64, s *adventurer.Snapshot, page Page) string {
	page = normalizePage(page)
	current := uint8(page) + 1
	doc := metadataDoc{
		Name:        tokenName(tokenID, s) + " - Page " + strconv.Itoa(int(current)),
		Description: description,
		Image:       encoding.SVGDataURI(ComposePage(s, page)),
		Pages:       &pageInfo{Current: current, Total: PageCount(s)},
	}
	return encoding.JSONDataURI(marshalDoc(doc))
}

// Image returns the full multi-page SVG as a base64 data URI with no
// JSON wrapper.
func Image(s *adventurer.Snapshot) string {
	return encoding.SVGDataURI(ComposeImage(s))
}

// ImagePage returns a single page's SVG data URI.
func ImagePage(s *adventurer.Snapshot, page Page) string {
	return encoding.SVGDataURI(ComposePage(s, page))
}

// Description returns the fixed lore literal.
func Description() string {
	return description
}

func tokenName(tokenID uint64, s *adventurer.Snapshot) string {
	name := bannerName(s.Name.Decode())
	if name == "" {
		name = fallbackName
	}
	return name + " #" + strconv.FormatUint(tokenID, 10)
}

// marshalDoc serializes the metadata document. Marshaling a struct of
// plain strings cannot fail, so the error path is unreachable.
func marshalDoc(doc metadataDoc) []byte {
	data, err := json.Marshal(doc)
	if err != nil {
		panic("renderer: metadata document failed to marshal: " + err.Error())
	}
	return data
}
