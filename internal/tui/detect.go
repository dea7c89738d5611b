package tui

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// OutputMode is how much terminal capability output may rely on.
type OutputMode int

const (
	// OutputModePlain is uncolored text, for pipes, files and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is colored, static output.
	OutputModeStyled
	// OutputModeInteractive is a full-screen Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// defaultTerminalWidth is used when the terminal size is unknown.
const defaultTerminalWidth = 80

// DetectOutputMode picks the output mode for stdout.
//
// plain wins over everything, then noColor. forceColor yields styled output
// even when stdout is not a terminal. Interactive mode requires both stdin
// and stdout to be terminals.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, os.Getenv, isTerminalFd(os.Stdout.Fd()), isTerminalFd(os.Stdin.Fd()))
}

func detectOutputMode(
	forceColor, noColor, plain bool,
	getenv func(string) string,
	stdoutTTY, stdinTTY bool,
) OutputMode {
	if plain || getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if noColor || getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if forceColor {
		return OutputModeStyled
	}
	if !stdoutTTY {
		return OutputModePlain
	}
	if !stdinTTY || getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsTTY reports whether both stdin and stdout are terminals.
func IsTTY() bool {
	return isTerminalFd(os.Stdin.Fd()) && isTerminalFd(os.Stdout.Fd())
}

// isTerminalFd also accepts Cygwin/MSYS pseudo terminals, which
// x/term does not recognise.
func isTerminalFd(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd) //nolint:gosec // File descriptors fit in int.
}

// TerminalWidth returns the width of stdout, or a default.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // File descriptors fit in int.
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
