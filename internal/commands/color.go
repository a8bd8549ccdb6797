package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts "#rrggbb", "rrggbb", "r,g,b" or the name of a preset.
// Preset values use the same syntax but are not resolved recursively.
func ParseColor(s string, presets map[string]string) (r, g, b uint8, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, 0, fmt.Errorf("empty colour")
	}

	if preset, ok := presets[strings.ToLower(s)]; ok {
		r, g, b, err = parseLiteral(preset)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("preset %q: %w", s, err)
		}
		return r, g, b, nil
	}

	return parseLiteral(s)
}

func parseLiteral(s string) (r, g, b uint8, err error) {
	if strings.Contains(s, ",") {
		return parseTriplet(s)
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

func parseTriplet(s string) (r, g, b uint8, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q: want r,g,b", s)
	}

	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid colour %q: channel %d: %w", s, i, err)
		}
		rgb[i] = uint8(v)
	}
	return rgb[0], rgb[1], rgb[2], nil
}
