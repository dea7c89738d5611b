package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/carbonsense/internal/tui"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes").
	Accepted bool
	// Cancelled is true if reading the answer failed.
	Cancelled bool
}

// Confirm asks a yes/no question. It returns immediately with
// Accepted=false in non-interactive (non-TTY) environments.
func Confirm(writer io.Writer, reader io.Reader, question string) PromptResult {
	if !tui.IsTTY() {
		return PromptResult{Accepted: false}
	}
	return confirm(writer, reader, question)
}

// confirm prompts unconditionally. The default answer is "No".
func confirm(writer io.Writer, reader io.Reader, question string) PromptResult {
	fmt.Fprintf(writer, "? %s [y/N] ", question)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		// EOF or error
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
