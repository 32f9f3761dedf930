package treasure

import "github.com/cory-johannsen/hoard/internal/game/dice"

var gemDescriptions = map[int][]string{
	10: {
		"Azurite (opaque mottled deep blue)",
		"Banded agate (translucent striped brown, blue, white, or red)",
		"Blue quartz (transparent pale blue)",
		"Eye agate (translucent circles of gray, white, brown, blue, or green)",
		"Hematite (opaque gray-black)",
		"Lapis lazuli (opaque light and dark blue with yellow flecks)",
		"Malachite (opaque striated light and dark green)",
		"Moss agate (translucent pink or yellow-white with mossy gray or green markings)",
		"Obsidian (opaque black)",
		"Rhodochrosite (opaque light pink)",
		"Tiger eye (translucent brown with golden center)",
		"Turquoise (opaque light blue-green)",
	},
	50: {
		"Bloodstone (opaque dark gray with red flecks)",
		"Carnelian (opaque orange to red-brown)",
		"Chalcedony (opaque white)",
		"Chrysoprase (translucent green)",
		"Citrine (transparent pale yellow-brown)",
		"Jasper (opaque blue, black, or brown)",
		"Moonstone (translucent white with pale blue glow)",
		"Onyx (opaque bands of black and white)",
		"Quartz (transparent white, smoky gray, or yellow)",
		"Sardonyx (opaque bands of red and white)",
		"Star rose quartz (translucent rosy stone with white star-shaped center)",
		"Zircon (transparent pale blue-green)",
	},
	100: {
		"Amber (transparent watery gold to rich gold)",
		"Amethyst (transparent deep purple)",
		"Chrysoberyl (transparent yellow-green to pale green)",
		"Coral (opaque crimson)",
		"Garnet (transparent red, brown-green, or violet)",
		"Jade (translucent light green, deep green, or white)",
		"Jet (opaque deep black)",
		"Pearl (opaque lustrous white, yellow, or pink)",
		"Spinel (transparent red, red-brown, or deep green)",
		"Tourmaline (transparent pale green, blue, brown, or red)",
	},
	500: {
		"Alexandrite (transparent dark green)",
		"Aquamarine (transparent pale blue-green)",
		"Black pearl (opaque pure black)",
		"Blue spinel (transparent deep blue)",
		"Peridot (transparent rich olive green)",
		"Topaz (transparent golden yellow)",
	},
	1000: {
		"Black opal (translucent dark green with black mottling and golden flecks)",
		"Blue sapphire (transparent blue-white to medium blue)",
		"Emerald (transparent deep bright green)",
		"Fire opal (translucent fiery red)",
		"Opal (translucent pale blue with green and golden mottling)",
		"Star ruby (translucent ruby with white star-shaped center)",
		"Star sapphire (translucent blue sapphire with white star-shaped center)",
		"Yellow sapphire (transparent fiery yellow or yellow-green)",
	},
	5000: {
		"Black sapphire (translucent lustrous black with glowing highlights)",
		"Diamond (transparent blue-white, canary, pink, brown, or blue)",
		"Jacinth (transparent fiery orange)",
		"Ruby (transparent clear red to deep crimson)",
	},
}

var artDescriptions = map[int][]string{
	25: {
		"Silver ewer",
		"Carved bone statuette",
		"Small gold bracelet",
		"Cloth-of-gold vestments",
		"Black velvet mask stitched with silver thread",
		"Copper chalice with silver filigree",
		"Pair of engraved bone dice",
		"Small mirror set in a painted wooden frame",
		"Embroidered silk handkerchief",
		"Gold locket with a painted portrait inside",
	},
	250: {
		"Gold ring set with bloodstones",
		"Carved ivory statuette",
		"Large gold bracelet",
		"Silver necklace with a gemstone pendant",
		"Bronze crown",
		"Silk robe with gold embroidery",
		"Large well-made tapestry",
		"Brass mug with jade inlay",
		"Box of turquoise animal figurines",
		"Gold bird cage with electrum filigree",
	},
	750: {
		"Silver chalice set with moonstones",
		"Silver-plated steel longsword with jet set in hilt",
		"Carved harp of exotic wood with ivory inlay and zircon gems",
		"Small gold idol",
		"Gold dragon comb set with red garnets as eyes",
		"Bottle stopper cork embossed with gold leaf and set with amethysts",
		"Ceremonial electrum dagger with a black pearl in the pommel",
		"Silver and gold brooch",
		"Obsidian statuette with gold fittings and inlay",
		"Painted gold war mask",
	},
	2500: {
		"Fine gold chain set with a fire opal",
		"Old masterpiece painting",
		"Embroidered silk and velvet mantle set with numerous moonstones",
		"Platinum bracelet set with a sapphire",
		"Embroidered glove set with jewel chips",
		"Jeweled anklet",
		"Gold music box",
		"Gold circlet set with four aquamarines",
		"Eye patch with a mock eye set in blue sapphire and moonstone",
		"A necklace string of small pink pearls",
	},
	7500: {
		"Jeweled gold crown",
		"Jeweled platinum ring",
		"Small gold statuette set with rubies",
		"Gold cup set with emeralds",
		"Gold jewelry box with platinum filigree",
		"Painted gold child's sarcophagus",
		"Jade game board with solid gold playing pieces",
		"Bejeweled ivory drinking horn with gold filigree",
	},
}

var containerDescriptions = map[string][]string{
	"chest": {
		"A sturdy oak chest bound in iron",
		"A battered sea chest smelling of salt",
		"An iron-banded strongbox with a broken lock",
		"A lacquered chest painted with faded heraldry",
	},
	"pouch": {
		"A worn leather belt pouch",
		"A velvet drawstring pouch",
		"A small pouch of oiled sharkskin",
	},
	"sack": {
		"A coarse burlap sack",
		"A patched canvas sack tied with twine",
		"A grain sack stained with old blood",
	},
	"coffer": {
		"A small silver-chased coffer",
		"A jewelled coffer lined with silk",
		"An ebony coffer with a tiny brass key still in the lock",
	},
	"urn": {
		"A sealed funerary urn",
		"A cracked clay urn painted with ancestral figures",
	},
	"crate": {
		"A nailed-shut shipping crate",
		"A crate stencilled with a merchant's mark",
	},
	"corpse": {
		"Scattered across the remains of the fallen",
		"Tucked into the belt and boots of a corpse",
	},
}

// DefaultContainer is used when a requested container type is unknown.
const DefaultContainer = "chest"

// GemDescription draws a description for a gem of the given value.
func GemDescription(value int, src dice.Source) string {
	return pick(gemDescriptions[value], "Gemstone", src)
}

// ArtDescription draws a description for an art object of the given value.
func ArtDescription(value int, src dice.Source) string {
	return pick(artDescriptions[value], "Art object", src)
}

// ContainerDescription draws a description for the container type, falling
// back to DefaultContainer.
func ContainerDescription(container string, src dice.Source) string {
	list, ok := containerDescriptions[container]
	if !ok {
		list = containerDescriptions[DefaultContainer]
	}
	return pick(list, "", src)
}

func pick(list []string, fallback string, src dice.Source) string {
	if len(list) == 0 {
		return fallback
	}
	return list[src.Intn(len(list))]
}
