package treasure

// TablesVersion identifies the revision of the static tables below. Bundles
// record it so a stored seed can be replayed against the same data.
const TablesVersion = "2024.1"

// LootType selects which coin and magic tables apply.
type LootType string

// Loot types.
const (
	Individual LootType = "individual"
	Hoard      LootType = "hoard"
)

// Denomination is a coin type.
type Denomination string

// Denominations from smallest to largest.
const (
	Copper   Denomination = "cp"
	Silver   Denomination = "sp"
	Electrum Denomination = "ep"
	Gold     Denomination = "gp"
	Platinum Denomination = "pp"
)

// Denominations lists every coin type in roll order.
var Denominations = []Denomination{Copper, Silver, Electrum, Gold, Platinum}

// goldPer is the gold value of one coin: 100 cp, 10 sp, or 2 ep make 1 gp; 1 pp is 10 gp.
var goldPer = map[Denomination]float64{
	Copper:   0.01,
	Silver:   0.1,
	Electrum: 0.5,
	Gold:     1,
	Platinum: 10,
}

// ToGold converts count coins of d into gold.
func ToGold(d Denomination, count int) float64 {
	return goldPer[d] * float64(count)
}

// CoinFormula rolls one denomination: Dice * Multiplier coins.
type CoinFormula struct {
	Denomination Denomination
	Dice         string
	Multiplier   int
}

// Entry is a gem or art row: Dice instances worth Value gold each.
type Entry struct {
	Chance int
	Dice   string
	Value  int
}

// Threshold implements Thresholded.
func (e Entry) Threshold() int { return e.Chance }

// MagicEntry is a magic-item row: Rolls items drawn from sub-table Table.
type MagicEntry struct {
	Chance int
	Rolls  string
	Table  string
}

// Threshold implements Thresholded.
func (e MagicEntry) Threshold() int { return e.Chance }

// TierTables groups every table for one tier.
type TierTables struct {
	Coins map[LootType][]CoinFormula
	Gems  []Entry
	Art   []Entry
	Magic map[LootType][]MagicEntry
}

// Tables returns the tables for tier; unknown tiers read the lowest tier.
func Tables(tier Tier) TierTables {
	if t, ok := tables[tier]; ok {
		return t
	}
	return tables[Tier0to4]
}

var tables = map[Tier]TierTables{
	Tier0to4: {
		Coins: map[LootType][]CoinFormula{
			Individual: {
				{Copper, "5d6", 1},
				{Silver, "4d6", 1},
				{Electrum, "3d6", 1},
				{Gold, "3d6", 1},
				{Platinum, "1d6", 1},
			},
			Hoard: {
				{Copper, "6d6", 100},
				{Silver, "3d6", 100},
				{Gold, "2d6", 10},
			},
		},
		Gems: []Entry{
			{30, "0d6", 0},
			{65, "2d6", 10},
			{100, "2d6", 50},
		},
		Art: []Entry{
			{60, "0d4", 0},
			{100, "2d4", 25},
		},
		Magic: map[LootType][]MagicEntry{
			Individual: {
				{95, "0d1", ""},
				{100, "1d1", "A"},
			},
			Hoard: {
				{36, "0d1", ""},
				{60, "1d6", "A"},
				{75, "1d4", "B"},
				{85, "1d4", "C"},
				{97, "1d4", "F"},
				{100, "1d4", "G"},
			},
		},
	},
	Tier5to10: {
		Coins: map[LootType][]CoinFormula{
			Individual: {
				{Copper, "4d6", 100},
				{Silver, "6d6", 10},
				{Electrum, "3d6", 10},
				{Gold, "4d6", 10},
				{Platinum, "2d6", 1},
			},
			Hoard: {
				{Copper, "2d6", 100},
				{Silver, "2d6", 1000},
				{Gold, "6d6", 100},
				{Platinum, "3d6", 10},
			},
		},
		Gems: []Entry{
			{25, "0d6", 0},
			{60, "2d6", 50},
			{100, "3d6", 100},
		},
		Art: []Entry{
			{40, "0d4", 0},
			{75, "2d4", 25},
			{100, "2d4", 250},
		},
		Magic: map[LootType][]MagicEntry{
			Individual: {
				{90, "0d1", ""},
				{100, "1d2", "B"},
			},
			Hoard: {
				{28, "0d1", ""},
				{44, "1d6", "A"},
				{63, "1d4", "B"},
				{74, "1d4", "C"},
				{80, "1d1", "D"},
				{94, "1d4", "F"},
				{98, "1d4", "G"},
				{100, "1d1", "H"},
			},
		},
	},
	Tier11to16: {
		Coins: map[LootType][]CoinFormula{
			Individual: {
				{Silver, "4d6", 100},
				{Electrum, "1d6", 100},
				{Gold, "2d6", 100},
				{Platinum, "2d6", 10},
			},
			Hoard: {
				{Gold, "4d6", 1000},
				{Platinum, "5d6", 100},
			},
		},
		Gems: []Entry{
			{20, "0d6", 0},
			{55, "3d6", 500},
			{100, "3d6", 1000},
		},
		Art: []Entry{
			{35, "0d4", 0},
			{70, "2d4", 250},
			{100, "2d4", 750},
		},
		Magic: map[LootType][]MagicEntry{
			Individual: {
				{85, "0d1", ""},
				{100, "1d2", "C"},
			},
			Hoard: {
				{15, "0d1", ""},
				{29, "1d4", "A"},
				{50, "1d6", "B"},
				{66, "1d6", "C"},
				{74, "1d4", "D"},
				{82, "1d1", "E"},
				{92, "1d4", "F"},
				{98, "1d4", "G"},
				{100, "1d1", "H"},
			},
		},
	},
	Tier17Plus: {
		Coins: map[LootType][]CoinFormula{
			Individual: {
				{Electrum, "2d6", 1000},
				{Gold, "8d6", 100},
				{Platinum, "6d6", 100},
			},
			Hoard: {
				{Gold, "12d6", 1000},
				{Platinum, "8d6", 1000},
			},
		},
		Gems: []Entry{
			{15, "0d6", 0},
			{50, "3d6", 1000},
			{100, "1d8", 5000},
		},
		Art: []Entry{
			{30, "0d4", 0},
			{65, "1d10", 2500},
			{100, "1d4", 7500},
		},
		Magic: map[LootType][]MagicEntry{
			Individual: {
				{80, "0d1", ""},
				{100, "1d3", "D"},
			},
			Hoard: {
				{10, "0d1", ""},
				{30, "1d8", "C"},
				{55, "1d6", "D"},
				{70, "1d6", "E"},
				{85, "1d4", "G"},
				{95, "1d4", "H"},
				{100, "1d4", "I"},
			},
		},
	},
}
