package theme

import (
	"encoding/json"
	"fmt"
)

type Colors struct {
	Primary      string `json:"primary"`
	PrimaryDark  string `json:"primaryDark"`
	Accent       string `json:"accent"`
	AccentDark   string `json:"accentDark"`
	NeutralDark  string `json:"neutralDark"`
	NeutralLight string `json:"neutralLight"`
	Beige        string `json:"beige"`
}

type Fonts struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type Theme struct {
	Colors Colors `json:"colors"`
	Fonts  Fonts  `json:"fonts"`
}

// Default returns the hardcoded theme the public site falls back to whenever
// the stored theme is absent, corrupt, or unreachable. It must always be
// complete.
func Default() Theme {
	return Theme{
		Colors: Colors{
			Primary:      "#0b3d91",
			PrimaryDark:  "#072a66",
			Accent:       "#f2a900",
			AccentDark:   "#c98b00",
			NeutralDark:  "#1f2933",
			NeutralLight: "#f5f7fa",
			Beige:        "#ede4d3",
		},
		Fonts: Fonts{
			Primary:   "Inter",
			Secondary: "Merriweather",
		},
	}
}

// Decode parses a JSON-encoded theme. It does not fill in missing fields;
// completeness is enforced on the write path by Validate.
func Decode(raw []byte) (Theme, error) {
	var t Theme
	if err := json.Unmarshal(raw, &t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Validate rejects themes with any empty color or font field. Write paths
// must refuse to store an incomplete theme so reads can serve stored values
// verbatim.
func Validate(t Theme) error {
	fields := map[string]string{
		"colors.primary":      t.Colors.Primary,
		"colors.primaryDark":  t.Colors.PrimaryDark,
		"colors.accent":       t.Colors.Accent,
		"colors.accentDark":   t.Colors.AccentDark,
		"colors.neutralDark":  t.Colors.NeutralDark,
		"colors.neutralLight": t.Colors.NeutralLight,
		"colors.beige":        t.Colors.Beige,
		"fonts.primary":       t.Fonts.Primary,
		"fonts.secondary":     t.Fonts.Secondary,
	}
	for name, v := range fields {
		if v == "" {
			return fmt.Errorf("theme field %s is required", name)
		}
	}
	return nil
}
