package adventurer

// Slot identifies the equipment position an item occupies.
type Slot string

// Slot constants, in render order.
const (
	SlotWeapon Slot = "SLOT_WEAPON"
	SlotChest  Slot = "SLOT_CHEST"
	SlotHead   Slot = "SLOT_HEAD"
	SlotWaist  Slot = "SLOT_WAIST"
	SlotFoot   Slot = "SLOT_FOOT"
	SlotHand   Slot = "SLOT_HAND"
	SlotNeck   Slot = "SLOT_NECK"
	SlotRing   Slot = "SLOT_RING"
)

// AllSlots lists the equipment slots in render order, matching
// Equipment.Slots.
var AllSlots = [EquipmentSize]Slot{
	SlotWeapon,
	SlotChest,
	SlotHead,
	SlotWaist,
	SlotFoot,
	SlotHand,
	SlotNeck,
	SlotRing,
}

// SlotLabels maps slots to the display labels used for traits and slot
// headers.
var SlotLabels = map[Slot]string{
	SlotWeapon: "Weapon",
	SlotChest:  "Chest Armor",
	SlotHead:   "Head Armor",
	SlotWaist:  "Waist Armor",
	SlotFoot:   "Foot Armor",
	SlotHand:   "Hand Armor",
	SlotNeck:   "Necklace",
	SlotRing:   "Ring",
}

// Item tiers, T1 strongest through T5 weakest.
const (
	Tier1 uint8 = 1
	Tier2 uint8 = 2
	Tier3 uint8 = 3
	Tier4 uint8 = 4
	Tier5 uint8 = 5
)
