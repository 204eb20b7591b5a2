package report

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Output formats for STDOUT.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// NewStdoutWriter returns the STDOUT sink for format. "auto" picks the
// styled report on a terminal and JSON lines otherwise.
func NewStdoutWriter(format string) (ResultWriter, error) {
	switch format {
	case FormatText:
		return NewTextWriter(os.Stdout, terminalWidth()), nil
	case FormatJSON:
		return NewJSONWriter(os.Stdout), nil
	case FormatAuto, "":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return NewTextWriter(os.Stdout, terminalWidth()), nil
		}
		return NewJSONWriter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWrapWidth
	}
	return w
}
