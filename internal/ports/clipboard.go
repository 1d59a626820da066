package ports

// Clipboard writes plain text to wherever the user pastes from
type Clipboard interface {
	WriteText(text string) error
}
