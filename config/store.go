// Package config provides a koanf-backed section store feeding the
// project configuration surface. Sections are top-level mappings of a
// YAML document or an in-memory map.
package config

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/viant/pymodel/project"
)

// Store exposes configuration sections loaded via koanf.
type Store struct {
	k *koanf.Koanf
}

// New loads a YAML configuration file into a store.
func New(path string) (*Store, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return &Store{k: k}, nil
}

// NewFromMap builds a store from in-memory sections.
func NewFromMap(sections map[string]map[string]string) *Store {
	k := koanf.New(".")
	values := make(map[string]interface{}, len(sections))
	for name, section := range sections {
		entries := make(map[string]interface{}, len(section))
		for key, value := range section {
			entries[key] = value
		}
		values[name] = entries
	}
	_ = k.Load(confmap.Provider(values, "."), nil)
	return &Store{k: k}
}

// HasSection reports whether the named section exists.
func (s *Store) HasSection(name string) bool {
	return s.k.Get(name) != nil
}

// Items returns the key/value pairs of a section in sorted key order.
func (s *Store) Items(name string) []project.KeyValue {
	section := s.k.Cut(name)
	keys := section.Keys()
	sort.Strings(keys)
	items := make([]project.KeyValue, 0, len(keys))
	for _, key := range keys {
		items = append(items, project.KeyValue{Key: key, Value: section.String(key)})
	}
	return items
}
