package content

import (
	"context"
	"log"

	"agency-cms/internal/domain/settings"
	"agency-cms/internal/domain/theme"
)

// ThemeResolver always yields a structurally complete theme. The stored
// theme is served verbatim when present and parseable; every failure mode
// (no row, corrupt JSON, unreachable store) falls back to the hardcoded
// default so the public site keeps its colors and fonts.
type ThemeResolver struct {
	store SettingsStore
}

func NewThemeResolver(store SettingsStore) *ThemeResolver {
	return &ThemeResolver{store: store}
}

func (t *ThemeResolver) Resolve(ctx context.Context) theme.Theme {
	setting, err := t.store.FindSettingByKey(ctx, settings.KeyTheme)
	if err != nil {
		log.Printf("content: theme setting lookup failed: %v", err)
		return theme.Default()
	}
	if setting == nil {
		return theme.Default()
	}

	parsed, err := theme.Decode([]byte(setting.Value))
	if err != nil {
		log.Printf("content: stored theme is not valid JSON, serving default: %v", err)
		return theme.Default()
	}
	// the write path refuses incomplete themes, but a row written around it
	// (or before that check existed) must still never surface partially
	if err := theme.Validate(parsed); err != nil {
		log.Printf("content: stored theme is incomplete, serving default: %v", err)
		return theme.Default()
	}
	return parsed
}
