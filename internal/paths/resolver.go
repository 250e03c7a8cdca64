package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "hexhelp"

// Bases are the root directories category folders are resolved against.
type Bases struct {
	Exe    string
	Data   []string
	Config []string
}

// DefaultBases inspects the running executable and the XDG environment.
func DefaultBases() Bases {
	var b Bases
	if exe, err := os.Executable(); err == nil {
		b.Exe = filepath.Dir(exe)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		b.Config = append(b.Config, filepath.Join(dir, appDirName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
		b.Data = append(b.Data, filepath.Join(dataHome, appDirName))
	}
	for _, dir := range filepath.SplitList(os.Getenv("XDG_DATA_DIRS")) {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		b.Data = append(b.Data, filepath.Join(dir, appDirName))
	}
	return b
}

// Resolver answers which directories belong to each category. Results are
// recomputed on every call so that configuration reloads show up
// immediately.
type Resolver struct {
	bases Bases
	extra map[Category][]string
}

// NewResolver creates a resolver over the provided base directories.
func NewResolver(bases Bases) *Resolver {
	return &Resolver{
		bases: bases,
		extra: make(map[Category][]string),
	}
}

// SetExtra replaces the user configured directories. Keys that do not name
// a category are returned so the caller can report them.
func (r *Resolver) SetExtra(extra map[string][]string) []string {
	r.extra = make(map[Category][]string, len(extra))
	var unknown []string
	for key, dirs := range extra {
		category, ok := ParseCategory(strings.ToLower(strings.TrimSpace(key)))
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		r.extra[category] = append([]string(nil), dirs...)
	}
	return unknown
}

// Paths returns the directories for the category in lookup order: built in
// locations first, user configured ones last.
func (r *Resolver) Paths(category Category) []string {
	var result []string
	if category == Config {
		result = append(result, r.bases.Config...)
	} else {
		for _, base := range r.searchBases() {
			result = append(result, filepath.Join(base, category.folder()))
		}
	}
	return append(result, r.extra[category]...)
}

func (r *Resolver) searchBases() []string {
	seen := make(map[string]bool)
	var bases []string
	for _, dir := range append([]string{r.bases.Exe}, r.bases.Data...) {
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		bases = append(bases, dir)
	}
	return bases
}
