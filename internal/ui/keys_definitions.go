package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names of user actions match domain.Actions.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts"},
	{Name: "open", Defaults: []string{"o"}, Help: "open an image"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "reset", Defaults: []string{"x"}, Help: "remove image and clear results"},
	{Name: "theme", Defaults: []string{"t"}, Help: "toggle light/dark theme"},

	// Result keys
	{Name: "copy_description", Defaults: []string{"c"}, Help: "copy description"},
	{Name: "copy_tags", Defaults: []string{"C"}, Help: "copy tags"},
	{Name: "edit_description", Defaults: []string{"e"}, Help: "edit description"},
	{Name: "generate", Defaults: []string{"g"}, Help: "generate description & tags"},

	// Tag keys
	{Name: "add_tag", Defaults: []string{"a"}, Help: "add tag"},
	{Name: "edit_tag", Defaults: []string{"enter"}, Help: "edit selected tag"},
	{Name: "next_tag", Defaults: []string{"right", "l"}, Help: "select next tag"},
	{Name: "prev_tag", Defaults: []string{"left", "h"}, Help: "select previous tag"},
	{Name: "remove_tag", Defaults: []string{"d", "delete"}, Help: "remove selected tag"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
