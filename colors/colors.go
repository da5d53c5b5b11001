// Package colors contains functions to quickly generate softgl.Color instances by name (i.e. "White()", "Blue()",
// "Green()", etc), and to parse colors given on the command line.
package colors

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/softgl/softgl"
)

// ErrBadColor is returned by Parse for strings that are neither a known name nor a hex color.
var ErrBadColor = errors.New("colors: not a color name or hex code")

// Transparent generates a softgl.Color instance of the provided name.
func Transparent() softgl.Color {
	return softgl.NewColorRGBA(0, 0, 0, 0)
}

// White generates a softgl.Color instance of the provided name.
func White() softgl.Color {
	return softgl.NewColor(255, 255, 255)
}

// Black generates a softgl.Color instance of the provided name.
func Black() softgl.Color {
	return softgl.NewColor(0, 0, 0)
}

// Gray generates a softgl.Color instance of the provided name.
func Gray() softgl.Color {
	return softgl.NewColor(128, 128, 128)
}

func LightGray() softgl.Color {
	return softgl.NewColor(204, 204, 204)
}

func DarkGray() softgl.Color {
	return softgl.NewColor(51, 51, 51)
}

// Red generates a softgl.Color instance of the provided name.
func Red() softgl.Color {
	return softgl.NewColor(255, 0, 0)
}

// Orange is the toon shader's default base color.
func Orange() softgl.Color {
	return softgl.NewColor(255, 155, 0)
}

func Yellow() softgl.Color {
	return softgl.NewColor(255, 255, 0)
}

func Green() softgl.Color {
	return softgl.NewColor(0, 255, 0)
}

func SkyBlue() softgl.Color {
	return softgl.NewColor(0, 128, 255)
}

// Blue generates a softgl.Color instance of the provided name.
func Blue() softgl.Color {
	return softgl.NewColor(0, 0, 255)
}

// Midnight is the default background of rendered frames.
func Midnight() softgl.Color {
	return softgl.NewColor(0, 0, 32)
}

func Pink() softgl.Color {
	return softgl.NewColor(255, 0, 255)
}

var named = map[string]func() softgl.Color{
	"transparent": Transparent,
	"white":       White,
	"black":       Black,
	"gray":        Gray,
	"lightgray":   LightGray,
	"darkgray":    DarkGray,
	"red":         Red,
	"orange":      Orange,
	"yellow":      Yellow,
	"green":       Green,
	"skyblue":     SkyBlue,
	"blue":        Blue,
	"midnight":    Midnight,
	"pink":        Pink,
}

// Names returns the color names Parse accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads a color name (case-insensitive) or a hex code in the form "#rgb", "#rrggbb", or "#rrggbbaa". The
// leading # is optional.
func Parse(s string) (softgl.Color, error) {

	s = strings.ToLower(strings.TrimSpace(s))

	if fn, ok := named[s]; ok {
		return fn(), nil
	}

	hex := strings.TrimPrefix(s, "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) == 6 {
		hex += "ff"
	}

	if len(hex) != 8 {
		return softgl.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return softgl.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	return softgl.NewColorRGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil

}
