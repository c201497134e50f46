package utils

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// MessageType selects the terminal color of a CLI message.
type MessageType int

const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI escape sequences of the CLI colors.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// statusPrefix starts every status line printed by the importer.
const statusPrefix = "⚡ SPRITEFONT"

// DecorateText wraps s in the color of msgType. Unknown types leave s untouched.
func DecorateText(s string, msgType MessageType) string {
	c, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return c + s + DefaultColor
}

// StatusLine formats a spinner or completion line: the tool prefix followed by
// msg in the color of msgType.
func StatusLine(msg string, msgType MessageType) string {
	return DecorateText(statusPrefix, StatusMessage) + " " + DecorateText(msg, msgType)
}

// FormatTime renders the duration of an import run. Runs below a second are
// shown in milliseconds, longer ones in minutes and seconds.
func FormatTime(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	m := int64(d / time.Minute)
	s := (d % time.Minute).Seconds()
	if m < 60 {
		return fmt.Sprintf("%dm %.2fs", m, s)
	}
	return fmt.Sprintf("%dh %dm %.2fs", m/60, m%60, s)
}

// Contains returns true if the value is present in the collection.
func Contains[T comparable](collection []T, value T) bool {
	for _, v := range collection {
		if v == value {
			return true
		}
	}
	return false
}

// HexToRGBA converts a color expressed as a hexadecimal string (#rgb, #rrggbb
// or #rrggbbaa, the leading # being optional) to a color.NRGBA.
func HexToRGBA(hex string) (color.NRGBA, error) {
	var (
		r, g, b uint8
		a       uint8 = 0xff
		err     error
	)
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x%2x", &r, &g, &b, &a)
	default:
		err = fmt.Errorf("invalid length, must be 3, 6 or 8 hex digits")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
