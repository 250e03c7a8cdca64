package paths

// Category identifies a class of directories the editor reads from.
type Category int

const (
	Resources Category = iota
	Config
	Magic
	Patterns
	PatternsInclude
	Plugins
	Python
	Yara
)

// Categories lists every category in display order.
var Categories = []Category{
	Resources,
	Config,
	Magic,
	Patterns,
	PatternsInclude,
	Plugins,
	Python,
	Yara,
}

var categoryInfo = map[Category]struct {
	label  string
	key    string
	folder string
}{
	Resources:       {"Resources", "resources", "resources"},
	Config:          {"Config", "config", "config"},
	Magic:           {"Magic", "magic", "magic"},
	Patterns:        {"Patterns", "patterns", "patterns"},
	PatternsInclude: {"Patterns Includes", "patterns_include", "includes"},
	Plugins:         {"Plugins", "plugins", "plugins"},
	Python:          {"Python Scripts", "python", "python"},
	Yara:            {"Yara Patterns", "yara", "yara"},
}

// Label returns the human readable name shown in the paths table.
func (c Category) Label() string {
	if info, ok := categoryInfo[c]; ok {
		return info.label
	}
	return "Unknown"
}

// Key returns the identifier used for the category in configuration files.
func (c Category) Key() string {
	return categoryInfo[c].key
}

// ParseCategory maps a configuration key back to its category.
func ParseCategory(key string) (Category, bool) {
	for _, c := range Categories {
		if categoryInfo[c].key == key {
			return c, true
		}
	}
	return 0, false
}

func (c Category) folder() string {
	return categoryInfo[c].folder
}
