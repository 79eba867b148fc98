// Package suggestions provides the built-in catalog of well-known web apps
// selectable with the --sug flag.
package suggestions

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/webnode/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Suggestion is one catalog entry.
type Suggestion struct {
	// Key is the token passed to --sug.
	Key string `yaml:"key"`
	// Company is the vendor of the web app.
	Company string `yaml:"company"`
	// Name is the short application name.
	Name string `yaml:"name"`
	// Title is the launcher window title.
	Title string `yaml:"title"`
	// URL is the page the launcher opens.
	URL string `yaml:"url"`
}

// Identity converts the suggestion to an app identity.
func (s Suggestion) Identity() domain.AppIdentity {
	return domain.AppIdentity{
		Company: s.Company,
		Name:    s.Name,
		Title:   s.Title,
		URL:     s.URL,
	}
}

// catalog is the parsed embedded catalog file.
type catalog struct {
	Suggestions []Suggestion `yaml:"suggestions"`
}

// load parses the embedded catalog. The file ships with the binary, so a
// parse failure is a build defect, not a runtime condition.
func load() ([]Suggestion, error) {
	var c catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions catalog: %w", err)
	}

	return c.Suggestions, nil
}

// All returns every catalog entry sorted by key.
func All() ([]Suggestion, error) {
	entries, err := load()
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries, nil
}

// Lookup finds a suggestion by key, case-insensitively. The second return
// lists the available keys when the lookup fails.
func Lookup(key string) (Suggestion, error) {
	entries, err := load()
	if err != nil {
		return Suggestion{}, err
	}

	var keys []string
	for _, entry := range entries {
		keys = append(keys, entry.Key)
		if strings.EqualFold(entry.Key, key) {
			return entry, nil
		}
	}

	return Suggestion{}, fmt.Errorf("unknown suggestion %q. Available: %s", key, strings.Join(keys, ", "))
}
