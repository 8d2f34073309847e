// Package renderer implements the deterministic metadata rendering
// pipeline: battle-state classification, page selection, procedural SVG
// composition, and data-URI assembly. Every function is a pure function
// of its inputs; identical inputs always yield identical bytes.
package renderer

// Page indexes one themed visual layout within the multi-page image.
type Page uint8

// Page indices. Inventory and ItemBag form the normal-mode cycle; the
// Battle page is forced while a beast is alive.
const (
	PageInventory Page = 0
	PageItemBag   Page = 1
	PageBattle    Page = 2
)

// NormalPageCount is the number of pages cycled in normal mode.
const NormalPageCount = 2

// Theme accent colors, one per page, applied to every shape and text
// element drawn on that page.
const (
	colorInventory = "#3DEC00"
	colorItemBag   = "#FF8A00"
	colorBattle    = "#FE1612"
)

// Health bar band colors.
const (
	colorHealthy  = "#3DEC00"
	colorWarning  = "#FFB000"
	colorCritical = "#FE1612"
)

// canvas background behind every page
const colorBackdrop = "#0C0B08"

// ThemeColor returns the accent color for a page. Unrecognized indices
// take the Inventory theme, matching the page router's fallback.
func ThemeColor(p Page) string {
	switch p {
	case PageItemBag:
		return colorItemBag
	case PageBattle:
		return colorBattle
	default:
		return colorInventory
	}
}

// Title returns the header title rendered at the top of a page.
func (p Page) Title() string {
	switch p {
	case PageItemBag:
		return "ITEM BAG"
	case PageBattle:
		return "BATTLE"
	default:
		return "INVENTORY"
	}
}
