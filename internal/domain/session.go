package domain

// Sentinel descriptions. The generation client returns these in place of an
// error; the workflow must not derive tags from them.
const (
	DescriptionUnavailable = "Unable to generate description"
	DescriptionFailed      = "Error generating description. Please try again."
)

// DescriptionError is written into the description when the description
// call itself fails
const DescriptionError = "An error occurred while generating the description."

// IsSentinelDescription reports whether text is one of the sentinel strings
func IsSentinelDescription(text string) bool {
	return text == DescriptionUnavailable || text == DescriptionFailed
}

// Phase is the step of the current generation cycle
type Phase string

const (
	PhaseIdle               Phase = "idle"
	PhaseDescribingImage    Phase = "describing_image"
	PhaseTaggingDescription Phase = "tagging_description"
)

// Session is the single source of truth for one user session.
// The zero value is the initial state.
type Session struct {
	BusyDescription   bool
	BusyTags          bool
	Description       string
	DescriptionCopied bool
	Image             *Image
	Tags              []string
	TagsCopied        bool
}

// HasImage reports whether an image is loaded
func (s Session) HasImage() bool {
	return s.Image != nil
}

// Phase derives the current cycle step from the busy flags
func (s Session) Phase() Phase {
	switch {
	case s.BusyTags:
		return PhaseTaggingDescription
	case s.BusyDescription:
		return PhaseDescribingImage
	default:
		return PhaseIdle
	}
}

// Snapshot returns a copy safe to hand out of the update loop
func (s Session) Snapshot() Session {
	if s.Tags != nil {
		tags := make([]string, len(s.Tags))
		copy(tags, s.Tags)
		s.Tags = tags
	}
	return s
}
