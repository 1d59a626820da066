package ui

import (
	"github.com/renato0307/alttext/internal/domain"
)

// LoadFileMsg asks the model to read the file at Path and load it as the
// session image. Pasted paths and the open dialog both end up here.
type LoadFileMsg struct {
	Path string
}

// fileLoadedMsg carries the outcome of reading a file off the update loop
type fileLoadedMsg struct {
	err  error
	file domain.File
	path string
}
