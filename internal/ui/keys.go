package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/alttext/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Results     ResultKeys
	Tags        TagKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Results:     newResultKeys(defaults, keysConfig),
		Tags:        newTagKeys(defaults, keysConfig),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Application.Open,
		k.Results.Generate,
		k.Results.CopyDescription,
		k.Results.CopyTags,
		k.Tags.Add,
		k.Application.Help,
		k.Application.Quit,
	}
}
