package domain

import (
	"regexp"
	"strings"
)

type Color string

const (
	ColorGreen  Color = "#00FF00"
	ColorOrange Color = "#FF6600"
	ColorRed    Color = "#FF0000"
)

var _colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ParseColor accepts the fixed #RRGGBB form. An empty string yields green.
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ColorGreen, nil
	}
	if !_colorPattern.MatchString(value) {
		return "", ErrInvalidColor
	}
	return Color(value), nil
}

func (c Color) String() string {
	return string(c)
}
