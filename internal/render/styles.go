package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Role selects the style applied to a piece of output.
type Role int

const (
	RoleRoot Role = iota
	RoleDirectory
	RoleFile
	RoleWarning
)

const (
	// ColorAuto enables color when the destination is a color-capable terminal.
	ColorAuto = "auto"
	// ColorAlways forces ANSI color codes.
	ColorAlways = "always"
	// ColorNever disables color codes.
	ColorNever = "never"

	rootColor      = lipgloss.Color("13")
	directoryColor = lipgloss.Color("12")
	fileColor      = lipgloss.Color("7")
	warningColor   = lipgloss.Color("11")

	errorUnknownColorModeFormat = "unknown color mode '%s'"
)

// Styles maps every role to a lipgloss style. Disabled styles return text unchanged.
type Styles struct {
	enabled   bool
	Root      lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Warning   lipgloss.Style
}

// PlainStyles returns styles that never emit escape codes.
func PlainStyles() Styles {
	return Styles{}
}

// NewStyles builds the palette for renderer. Styles are disabled when the
// renderer's profile carries no color.
func NewStyles(renderer *lipgloss.Renderer) Styles {
	if renderer == nil || renderer.ColorProfile() == termenv.Ascii {
		return PlainStyles()
	}
	return Styles{
		enabled:   true,
		Root:      renderer.NewStyle().Bold(true).Foreground(rootColor),
		Directory: renderer.NewStyle().Bold(true).Foreground(directoryColor),
		File:      renderer.NewStyle().Foreground(fileColor),
		Warning:   renderer.NewStyle().Foreground(warningColor),
	}
}

// StylesFor resolves a color mode against writer.
func StylesFor(writer io.Writer, colorMode string) (Styles, error) {
	switch strings.ToLower(strings.TrimSpace(colorMode)) {
	case ColorNever:
		return PlainStyles(), nil
	case ColorAlways:
		renderer := lipgloss.NewRenderer(writer)
		renderer.SetColorProfile(termenv.ANSI256)
		return NewStyles(renderer), nil
	case ColorAuto, "":
		return NewStyles(lipgloss.NewRenderer(writer)), nil
	default:
		return PlainStyles(), fmt.Errorf(errorUnknownColorModeFormat, colorMode)
	}
}

// Enabled reports whether the styles emit escape codes.
func (styles Styles) Enabled() bool {
	return styles.enabled
}

// Apply renders text in the style for role.
func (styles Styles) Apply(role Role, text string) string {
	if !styles.enabled {
		return text
	}
	switch role {
	case RoleRoot:
		return styles.Root.Render(text)
	case RoleDirectory:
		return styles.Directory.Render(text)
	case RoleFile:
		return styles.File.Render(text)
	case RoleWarning:
		return styles.Warning.Render(text)
	default:
		return text
	}
}
