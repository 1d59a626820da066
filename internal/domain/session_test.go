package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSentinelDescription(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{DescriptionUnavailable, true},
		{DescriptionFailed, true},
		{DescriptionError, false},
		{"A cat on a mat", false},
		{"unable to generate description", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSentinelDescription(tt.input))
		})
	}
}

func TestSession_Phase(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		expected Phase
	}{
		{"zero value is idle", Session{}, PhaseIdle},
		{"describing", Session{BusyDescription: true}, PhaseDescribingImage},
		{"tagging", Session{BusyDescription: true, BusyTags: true}, PhaseTaggingDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.Phase())
		})
	}
}

func TestSession_SnapshotCopiesTags(t *testing.T) {
	s := Session{Tags: []string{"cat", "mat"}}
	snap := s.Snapshot()
	snap.Tags[0] = "dog"

	assert.Equal(t, []string{"cat", "mat"}, s.Tags)
}

func TestSession_SnapshotKeepsEmptyTags(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected []string
	}{
		{"empty stays empty", []string{}, []string{}},
		{"nil stays nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Session{Tags: tt.tags}.Snapshot().Tags)
		})
	}
}

func TestSession_HasImage(t *testing.T) {
	assert.False(t, Session{}.HasImage())
	assert.True(t, Session{Image: &Image{}}.HasImage())
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeDark, Theme("").Toggle())
}

func TestParseTheme(t *testing.T) {
	theme, ok := ParseTheme("light")
	assert.True(t, ok)
	assert.Equal(t, ThemeLight, theme)

	_, ok = ParseTheme("solarized")
	assert.False(t, ok)
}

func TestGetActionsForContext(t *testing.T) {
	withImage := GetActionsForContext(true)
	withoutImage := GetActionsForContext(false)

	assert.Len(t, withImage, len(Actions))
	for _, a := range withoutImage {
		assert.False(t, a.RequiresImage, "action %s requires an image", a.Name)
	}
	assert.Less(t, len(withoutImage), len(withImage))
}
