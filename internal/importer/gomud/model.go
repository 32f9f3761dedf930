package gomud

// GomudItem is the parsed form of a gomud items/**/<id>-<name>.yaml file.
// Value is in gold. Combat, buff and script fields are intentionally omitted.
type GomudItem struct {
	ItemID      int    `yaml:"itemid"`
	Value       int    `yaml:"value"`
	Uses        int    `yaml:"uses"`
	Type        string `yaml:"type"`
	Subtype     string `yaml:"subtype"`
	Name        string `yaml:"name"`
	NameSimple  string `yaml:"namesimple"`
	Description string `yaml:"description"`
}
