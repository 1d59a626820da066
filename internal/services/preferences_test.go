package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/alttext/internal/domain"
	portsmocks "github.com/renato0307/alttext/internal/ports/mocks"
)

func TestPreferenceService_Theme(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		err      error
		fallback domain.Theme
		expected domain.Theme
	}{
		{"stored light", "light", nil, domain.ThemeDark, domain.ThemeLight},
		{"absent uses fallback", "", domain.ErrPreferenceAbsent, domain.ThemeLight, domain.ThemeLight},
		{"read error uses fallback", "", errors.New("disk I/O error"), domain.ThemeLight, domain.ThemeLight},
		{"garbage uses fallback", "neon", nil, domain.ThemeLight, domain.ThemeLight},
		{"invalid fallback becomes dark", "", domain.ErrPreferenceAbsent, "neon", domain.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockPreferenceRepository(t)
			repo.EXPECT().Get(mock.Anything, ThemePreferenceKey).Return(tt.stored, tt.err)

			service := NewPreferenceService(repo, tt.fallback)

			assert.Equal(t, tt.expected, service.Theme(context.Background()))
		})
	}
}

func TestPreferenceService_ToggleTheme(t *testing.T) {
	repo := portsmocks.NewMockPreferenceRepository(t)
	repo.EXPECT().Get(mock.Anything, ThemePreferenceKey).Return("dark", nil)
	repo.EXPECT().Set(mock.Anything, ThemePreferenceKey, "light").Return(nil)

	service := NewPreferenceService(repo, domain.ThemeDark)
	theme, err := service.ToggleTheme(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestPreferenceService_ToggleThemeSaveFails(t *testing.T) {
	repo := portsmocks.NewMockPreferenceRepository(t)
	repo.EXPECT().Get(mock.Anything, ThemePreferenceKey).Return("", domain.ErrPreferenceAbsent)
	repo.EXPECT().Set(mock.Anything, ThemePreferenceKey, "light").Return(errors.New("database is locked"))

	service := NewPreferenceService(repo, domain.ThemeDark)
	theme, err := service.ToggleTheme(context.Background())

	assert.Error(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}
