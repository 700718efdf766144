// Package ui writes command results to the terminal.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type Color string

const (
	ColorDefault     Color = "\033[0m"
	ColorGray        Color = "\033[38;2;150;150;150m"
	ColorWhite       Color = "\033[38;2;255;255;255m"
	ColorGreen       Color = "\033[38;2;0;255;0m"
	ColorLightGreen  Color = "\033[38;2;150;255;150m"
	ColorLightOrange Color = "\033[38;2;255;200;150m"
	ColorLightYellow Color = "\033[38;2;255;255;150m"
	ColorLightBlue   Color = "\033[38;2;150;150;255m"
)

type UI struct {
	writer   io.Writer
	useColor bool
}

func NewUI(w io.Writer, useColor bool) *UI {
	return &UI{writer: w, useColor: useColor}
}

// ColorEnabled resolves a color setting ("auto", "always" or "never") for
// the given output file. "auto" colors only a terminal.
func ColorEnabled(setting string, f *os.File) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}

func (u *UI) colorize(message string, color Color) string {
	if !u.useColor || color == ColorDefault {
		return message
	}
	return fmt.Sprintf("%s%s%s", color, message, ColorDefault)
}

func (u *UI) Print(message string) {
	fmt.Fprint(u.writer, message)
}

func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.writer, format, args...)
}

func (u *UI) Println(message string) {
	fmt.Fprintln(u.writer, message)
}

func (u *UI) PrintlnColored(message string, color Color) {
	fmt.Fprintln(u.writer, u.colorize(message, color))
}

func (u *UI) Error(message string) {
	u.PrintlnColored(message, ColorLightOrange)
}

func (u *UI) Success(message string) {
	u.PrintlnColored(message, ColorLightGreen)
}

func (u *UI) Warning(message string) {
	u.PrintlnColored(message, ColorLightYellow)
}

func (u *UI) Info(message string) {
	u.PrintlnColored(message, ColorGray)
}

// Item prints one entry of a listing.
func (u *UI) Item(message string) {
	u.PrintlnColored(message, ColorLightBlue)
}

// Command echoes a command read from a script.
func (u *UI) Command(command string) {
	u.PrintlnColored("> "+command, ColorWhite)
}

// Prompt returns the readline prompt.
func (u *UI) Prompt() string {
	return u.colorize("> ", ColorGreen)
}
