package domain

// Action represents a user-invocable action in the system.
// This is the domain-level definition of what actions exist.
type Action struct {
	Description   string
	Name          string
	RequiresImage bool
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "add_tag", Description: "Add a new tag", RequiresImage: false},
	{Name: "copy_description", Description: "Copy the description to the clipboard", RequiresImage: false},
	{Name: "copy_tags", Description: "Copy the tags to the clipboard", RequiresImage: false},
	{Name: "edit_description", Description: "Edit the description", RequiresImage: false},
	{Name: "edit_tag", Description: "Edit the selected tag", RequiresImage: false},
	{Name: "generate", Description: "Generate description & tags", RequiresImage: true},
	{Name: "help", Description: "Show keyboard shortcuts", RequiresImage: false},
	{Name: "open", Description: "Open an image", RequiresImage: false},
	{Name: "quit", Description: "Exit alttext", RequiresImage: false},
	{Name: "remove_tag", Description: "Remove the selected tag", RequiresImage: false},
	{Name: "reset", Description: "Remove the image and clear results", RequiresImage: true},
	{Name: "theme", Description: "Toggle light/dark theme", RequiresImage: false},
}

// GetActionsForContext returns actions filtered by context.
// If hasImage is false, actions that require an image are excluded.
func GetActionsForContext(hasImage bool) []Action {
	if hasImage {
		return Actions
	}

	var filtered []Action
	for _, a := range Actions {
		if !a.RequiresImage {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
