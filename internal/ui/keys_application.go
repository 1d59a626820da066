package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/alttext/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Open      key.Binding
	Quit      key.Binding
	Reset     key.Binding
	Theme     key.Binding
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Open:      buildBinding("open", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
		Reset:     buildBinding("reset", defaults, customKeys),
		Theme:     buildBinding("theme", defaults, customKeys),
	}
}

// ResultKeys defines key bindings acting on the generated description and tags
type ResultKeys struct {
	CopyDescription key.Binding
	CopyTags        key.Binding
	EditDescription key.Binding
	Generate        key.Binding
}

func newResultKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ResultKeys {
	return ResultKeys{
		CopyDescription: buildBinding("copy_description", defaults, customKeys),
		CopyTags:        buildBinding("copy_tags", defaults, customKeys),
		EditDescription: buildBinding("edit_description", defaults, customKeys),
		Generate:        buildBinding("generate", defaults, customKeys),
	}
}

// TagKeys defines key bindings for the tag list
type TagKeys struct {
	Add    key.Binding
	Edit   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Remove key.Binding
}

func newTagKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TagKeys {
	return TagKeys{
		Add:    buildBinding("add_tag", defaults, customKeys),
		Edit:   buildBinding("edit_tag", defaults, customKeys),
		Next:   buildBinding("next_tag", defaults, customKeys),
		Prev:   buildBinding("prev_tag", defaults, customKeys),
		Remove: buildBinding("remove_tag", defaults, customKeys),
	}
}
