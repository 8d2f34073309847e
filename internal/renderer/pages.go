package renderer

import (
	"strings"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
)

// RenderPageContent composes one page's full content into b. It is
// total over all page indices: anything unrecognized renders the
// Inventory page.
func RenderPageContent(b *strings.Builder, s *adventurer.Snapshot, page Page) {
	switch page {
	case PageItemBag:
		renderItemBagPage(b, s)
	case PageBattle:
		renderBattlePage(b, s)
	default:
		renderInventoryPage(b, s)
	}
}

// normalizePage maps out-of-range page indices to the Inventory page so
// paginated queries and the router agree on the fallback.
func normalizePage(page Page) Page {
	switch page {
	case PageInventory, PageItemBag, PageBattle:
		return page
	default:
		return PageInventory
	}
}

func renderCommonHeader(b *strings.Builder, s *adventurer.Snapshot, page Page, color string) {
	Logo(b, color)
	GoldDisplay(b, s.Gold, color)
	NameBanner(b, s.Name, color)
	LevelDisplay(b, s.Level, color)
	HealthBar(b, s.Health, s.Stats.Vitality, color)
	PageHeader(b, page.Title(), color)
}

func renderInventoryPage(b *strings.Builder, s *adventurer.Snapshot) {
	color := ThemeColor(PageInventory)
	renderCommonHeader(b, s, PageInventory, color)
	StatsColumn(b, s.Stats, color)
	EquipmentGrid(b, s.Equipment, color)
}

func renderItemBagPage(b *strings.Builder, s *adventurer.Snapshot) {
	color := ThemeColor(PageItemBag)
	renderCommonHeader(b, s, PageItemBag, color)
	BagGrid(b, s.Bag, color)
}

// renderBattlePage omits equipment and bag content entirely in favor of
// the combat narration.
func renderBattlePage(b *strings.Builder, s *adventurer.Snapshot) {
	color := ThemeColor(PageBattle)
	renderCommonHeader(b, s, PageBattle, color)
	BattleNarration(b, s, color)
}
