package ports

import "github.com/renato0307/alttext/internal/domain"

// FileLoader reads files picked or dropped by the user
type FileLoader interface {
	// IsFile reports whether raw, typically text pasted by a terminal on
	// file drop, names a readable file
	IsFile(raw string) bool
	Load(path string) (domain.File, error)
}
