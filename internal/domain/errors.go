package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrIndexOutOfRange  = errors.New("tag index out of range")
	ErrNoImage          = errors.New("no image loaded")
	ErrNotAnImage       = errors.New("not an image")
	ErrNotEditing       = errors.New("no tag edit in progress")
	ErrUnknownProvider  = errors.New("unknown provider")
	ErrPreferenceAbsent = errors.New("preference not set")
)

// GenerationStage identifies which of the two generation calls failed
type GenerationStage string

const (
	StageDescription GenerationStage = "description"
	StageTags        GenerationStage = "tags"
)

// GenerationError is returned by the generation client on transport or
// model failure
type GenerationError struct {
	Err   error
	Stage GenerationStage
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
