package theme

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/sgr/pkg/errors"
	"github.com/arthur-debert/sgr/pkg/sgr"
)

var namedColors = map[string]sgr.Color{
	"black":   sgr.Black,
	"red":     sgr.Red,
	"green":   sgr.Green,
	"yellow":  sgr.Yellow,
	"blue":    sgr.Blue,
	"magenta": sgr.Magenta,
	"cyan":    sgr.Cyan,
	"white":   sgr.White,
}

// ParseColor resolves a theme color string: a base color name ("red"), a
// 256-color palette index ("245"), or a hex RGB value ("#ff8800").
func ParseColor(s string) (sgr.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return sgr.Ansi256(uint8(n)), nil
	}

	return sgr.Color{}, errors.Newf(errors.ErrColorParse, "unrecognized color %q", s)
}

func parseHex(s string) (sgr.Color, error) {
	if len(s) != 7 {
		return sgr.Color{}, errors.Newf(errors.ErrColorParse, "hex color %q must be #rrggbb", s)
	}
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return sgr.Color{}, errors.Wrapf(err, errors.ErrColorParse, "hex color %q", s)
		}
		channels[i] = uint8(v)
	}
	return sgr.RGB(channels[0], channels[1], channels[2]), nil
}
