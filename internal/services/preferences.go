package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ports"
)

// ThemePreferenceKey is the preference key holding the UI theme
const ThemePreferenceKey = "theme"

// PreferenceService reads and writes user preferences
type PreferenceService struct {
	fallback domain.Theme
	repo     ports.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService. fallback is used
// when no theme has been stored yet.
func NewPreferenceService(repo ports.PreferenceRepository, fallback domain.Theme) *PreferenceService {
	if _, ok := domain.ParseTheme(string(fallback)); !ok {
		fallback = domain.ThemeDark
	}
	return &PreferenceService{
		fallback: fallback,
		repo:     repo,
	}
}

// Theme returns the stored theme, or the fallback when none is stored or the
// stored value is unreadable
func (s *PreferenceService) Theme(ctx context.Context) domain.Theme {
	value, err := s.repo.Get(ctx, ThemePreferenceKey)
	if err != nil {
		if !errors.Is(err, domain.ErrPreferenceAbsent) {
			logging.Logger.Warn("Failed to read theme preference", "error", err)
		}
		return s.fallback
	}

	theme, ok := domain.ParseTheme(value)
	if !ok {
		logging.Logger.Warn("Ignoring unknown stored theme", "value", value)
		return s.fallback
	}
	return theme
}

// SetTheme stores theme
func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := s.repo.Set(ctx, ThemePreferenceKey, string(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	logging.Logger.Debug("Theme saved", "theme", theme)
	return nil
}

// ToggleTheme switches to the other theme and stores it. The new theme is
// returned even when saving fails.
func (s *PreferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	theme := s.Theme(ctx).Toggle()
	return theme, s.SetTheme(ctx, theme)
}
