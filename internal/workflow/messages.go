package workflow

// DescriptionReadyMsg carries the result of a description call
type DescriptionReadyMsg struct {
	Epoch uint64
	Err   error
	Text  string
}

// TagsReadyMsg carries the result of a tags call
type TagsReadyMsg struct {
	Epoch uint64
	Err   error
	Tags  []string
}

// CopyTarget names what a copy action copied
type CopyTarget string

const (
	CopyTargetDescription CopyTarget = "description"
	CopyTargetTags        CopyTarget = "tags"
)

// CopyFailedMsg reports a clipboard write failure. The flag has already been
// reverted when this message is emitted.
type CopyFailedMsg struct {
	Err    error
	Target CopyTarget
}
