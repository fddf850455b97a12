package category

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

const restaurantsAlias = "restaurants"

//go:embed categories.yaml
var taxonomyYAML []byte

// Entry is one node of the category taxonomy.
type Entry struct {
	Alias   string   `yaml:"alias"`
	Title   string   `yaml:"title"`
	Parents []string `yaml:"parents"`
}

// AllowList is the set of restaurant category aliases, ordered by title.
type AllowList struct {
	entries []Entry
	index   map[string]Entry
}

var (
	defaultOnce sync.Once
	defaultList *AllowList
	defaultErr  error
)

// Restaurants returns the allow-list built from the embedded taxonomy.
func Restaurants() (*AllowList, error) {
	defaultOnce.Do(func() {
		defaultList, defaultErr = Parse(taxonomyYAML)
	})
	return defaultList, defaultErr
}

// Parse builds an allow-list from a YAML taxonomy document.
func Parse(data []byte) (*AllowList, error) {
	var doc struct {
		Categories []Entry `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse category taxonomy: %w", err)
	}

	list := &AllowList{index: make(map[string]Entry)}
	for _, entry := range doc.Categories {
		if entry.Alias == "" || !isRestaurant(entry) {
			continue
		}
		if _, dup := list.index[entry.Alias]; dup {
			continue
		}
		list.index[entry.Alias] = entry
		list.entries = append(list.entries, entry)
	}
	sort.SliceStable(list.entries, func(i, j int) bool {
		return list.entries[i].Title < list.entries[j].Title
	})
	return list, nil
}

func isRestaurant(entry Entry) bool {
	if entry.Alias == restaurantsAlias {
		return true
	}
	for _, parent := range entry.Parents {
		if parent == restaurantsAlias {
			return true
		}
	}
	return false
}

// Contains reports whether alias is an allowed restaurant category.
func (l *AllowList) Contains(alias string) bool {
	_, ok := l.index[alias]
	return ok
}

// Aliases returns the allowed aliases in title order.
func (l *AllowList) Aliases() []string {
	out := make([]string, len(l.entries))
	for i, entry := range l.entries {
		out[i] = entry.Alias
	}
	return out
}

// Len returns the number of allowed categories.
func (l *AllowList) Len() int {
	return len(l.entries)
}
