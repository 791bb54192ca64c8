package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI creates a UI for format. FormatAuto resolves to a table on a
// terminal and to JSON otherwise, so piped output stays machine readable.
func NewUI(cmd *cobra.Command, format Format, useTTY bool) UI {
	switch format {
	case FormatJSON:
		return NewJSONUI(cmd)
	case FormatTable:
		return NewSimpleUI(cmd)
	case FormatTUI:
		return NewTUI(cmd)
	}

	if useTTY {
		return NewSimpleUI(cmd)
	}

	return NewJSONUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
