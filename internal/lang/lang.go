// Package lang resolves localization keys to display strings.
//
// Language packs are Markdown files whose TOML front matter holds the key
// table. The Markdown body, if any, becomes the value of the key named by
// body_key so that long paragraphs can be written as prose.
package lang

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// DefaultCode is the pack every other pack falls back to.
const DefaultCode = "en-US"

//go:embed locales/*.md
var locales embed.FS

// Pack is a parsed language pack.
type Pack struct {
	Code string
	Name string

	strings  map[string]string
	fallback *Pack
}

type header struct {
	Code    string            `toml:"code" yaml:"code"`
	Name    string            `toml:"name" yaml:"name"`
	BodyKey string            `toml:"body_key" yaml:"body_key"`
	Strings map[string]string `toml:"strings" yaml:"strings"`
}

// Parse reads a language pack from r.
func Parse(r io.Reader) (*Pack, error) {
	var h header
	body, err := frontmatter.Parse(r, &h)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	if h.Code == "" {
		return nil, fmt.Errorf("language pack has no code")
	}

	p := &Pack{
		Code:    h.Code,
		Name:    h.Name,
		strings: make(map[string]string, len(h.Strings)+1),
	}
	for key, value := range h.Strings {
		p.strings[key] = value
	}
	if text := strings.TrimSpace(string(body)); h.BodyKey != "" && text != "" {
		p.strings[h.BodyKey] = text
	}
	return p, nil
}

// Load returns the embedded pack for code, chained to the default pack.
func Load(code string) (*Pack, error) {
	base, err := loadEmbedded(DefaultCode)
	if err != nil {
		return nil, err
	}
	if code == "" || strings.EqualFold(code, DefaultCode) {
		return base, nil
	}
	p, err := loadEmbedded(code)
	if err != nil {
		return base, err
	}
	p.fallback = base
	return p, nil
}

// Available lists the codes of the embedded packs.
func Available() []string {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil
	}
	var codes []string
	for _, entry := range entries {
		codes = append(codes, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(codes)
	return codes
}

// Get resolves key. Missing keys fall back to the default pack and finally
// to the key itself.
func (p *Pack) Get(key string) string {
	for pack := p; pack != nil; pack = pack.fallback {
		if value, ok := pack.strings[key]; ok {
			return value
		}
	}
	return key
}

func loadEmbedded(code string) (*Pack, error) {
	data, err := locales.ReadFile(path.Join("locales", code+".md"))
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", code, err)
	}
	return Parse(bytes.NewReader(data))
}
