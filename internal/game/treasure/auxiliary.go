package treasure

import "github.com/cory-johannsen/hoard/internal/game/dice"

// EquipmentChance and MundaneChance are the occurrence probabilities of the
// auxiliary hoard rolls.
const (
	EquipmentChance = 0.30
	MundaneChance   = 0.20
)

// EquipmentRow is a fixed equipment entry used when the catalog holds no
// equipment in range. Price is in copper.
type EquipmentRow struct {
	Name          string
	EquipmentType string
	Price         int
}

// EquipmentTable is the fallback equipment list.
var EquipmentTable = []EquipmentRow{
	{"Dagger", "weapon", 200},
	{"Handaxe", "weapon", 500},
	{"Spear", "weapon", 100},
	{"Longsword", "weapon", 1500},
	{"Shortbow", "weapon", 2500},
	{"Light crossbow", "weapon", 2500},
	{"Leather armor", "armor", 1000},
	{"Chain shirt", "armor", 5000},
	{"Scale mail", "armor", 5000},
	{"Shield", "shield", 1000},
	{"Thieves' tools", "tool", 2500},
	{"Smith's tools", "tool", 2000},
}

// MundaneRow is a fixed mundane item; UnitValue is in gold.
type MundaneRow struct {
	Name      string
	UnitValue float64
}

// MundaneTable lists ordinary goods that turn up in hoards.
var MundaneTable = []MundaneRow{
	{"Torch", 0.01},
	{"Day of rations", 0.5},
	{"Silk rope (50 ft)", 10},
	{"Candle", 0.01},
	{"Bottle of ink", 10},
	{"Hooded lantern", 5},
	{"Wool blanket", 0.5},
	{"Tinderbox", 0.5},
	{"Whetstone", 0.01},
	{"Piece of chalk", 0.01},
	{"Flask of oil", 0.1},
	{"Waterskin", 0.2},
}

// SalvageRow is a monster-derived crafting material; Value is in gold.
type SalvageRow struct {
	Name        string
	Description string
	Value       float64
	Tags        []string
	// Difficulty is the harvest check DC.
	Difficulty int
}

// DefaultMonsterType is used when a requested monster type has no salvage table.
const DefaultMonsterType = "beast"

var salvageTables = map[string][]SalvageRow{
	"beast": {
		{"Thick hide", "A supple, well-cured pelt", 5, []string{"leatherworking", "armor"}, 10},
		{"Sharp fangs", "A handful of long, curved teeth", 2, []string{"weaponsmithing", "jewelry"}, 8},
		{"Sinew bundle", "Tough tendons dried for bowstrings", 3, []string{"bowyer"}, 12},
		{"Claws", "Hooked claws still sharp enough to cut", 4, []string{"weaponsmithing"}, 10},
	},
	"dragon": {
		{"Dragon scale", "A single plate-sized scale", 500, []string{"armor", "arcana"}, 20},
		{"Dragon blood vial", "Blood that still smoulders when shaken", 250, []string{"alchemy", "arcana"}, 18},
		{"Dragon tooth", "A tooth the length of a dagger", 150, []string{"weaponsmithing"}, 16},
	},
	"undead": {
		{"Grave dust", "Fine ash that never settles", 10, []string{"alchemy", "necromancy"}, 12},
		{"Ectoplasm", "A faintly glowing residue", 25, []string{"alchemy", "arcana"}, 15},
		{"Bone shards", "Brittle bones etched with runes", 5, []string{"necromancy"}, 10},
	},
	"fiend": {
		{"Brimstone heart", "A coal-black organ warm to the touch", 200, []string{"arcana", "alchemy"}, 18},
		{"Fiendish horn", "A twisted horn ridged with sulfur", 75, []string{"weaponsmithing", "arcana"}, 15},
	},
	"elemental": {
		{"Elemental mote", "A mote of raw elemental essence in a stoppered flask", 100, []string{"arcana", "enchanting"}, 17},
		{"Stormglass", "A shard that hums with static", 60, []string{"enchanting"}, 14},
	},
	"aberration": {
		{"Eye stalk", "A twitching stalk that refuses to close", 80, []string{"alchemy", "arcana"}, 16},
		{"Psionic gland", "A pulsing gland from behind the brain", 150, []string{"arcana"}, 18},
	},
	"construct": {
		{"Animating core", "A cracked crystal that once gave motion", 120, []string{"artifice", "enchanting"}, 16},
		{"Iron plating", "Heavy riveted plates", 15, []string{"armor", "artifice"}, 10},
	},
	"plant": {
		{"Spore sac", "A bulging sac of drifting spores", 8, []string{"alchemy", "poison"}, 12},
		{"Heartwood", "A dense core of living wood", 30, []string{"woodworking", "arcana"}, 14},
	},
}

// SalvageTable returns the rows for monsterType, falling back to DefaultMonsterType.
func SalvageTable(monsterType string) []SalvageRow {
	if rows, ok := salvageTables[monsterType]; ok {
		return rows
	}
	return salvageTables[DefaultMonsterType]
}

// RandomEquipment draws one row from EquipmentTable.
func RandomEquipment(src dice.Source) EquipmentRow {
	return EquipmentTable[src.Intn(len(EquipmentTable))]
}

// RandomMundane draws one row from MundaneTable.
func RandomMundane(src dice.Source) MundaneRow {
	return MundaneTable[src.Intn(len(MundaneTable))]
}
