package index

import (
	"errors"
	"fmt"
)

// ErrIndexNotFound reports a missing GTAGS index when auto-indexing is off.
var ErrIndexNotFound = errors.New("no GTAGS index found")

// MissingToolError reports a required external binary that is not installed.
type MissingToolError struct {
	Tool string
	Hint string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%s is not installed.\n%s", e.Tool, e.Hint)
}

func missingGlobal() error {
	return &MissingToolError{
		Tool: "GNU Global (gtags/global)",
		Hint: "Install it with:\n" +
			"  Ubuntu/Debian: sudo apt-get install global\n" +
			"  macOS:         brew install global\n" +
			"  Fedora:        sudo dnf install global",
	}
}

func missingCtags() error {
	return &MissingToolError{
		Tool: "Universal Ctags",
		Hint: "Install it with:\n" +
			"  Ubuntu/Debian: sudo apt-get install universal-ctags\n" +
			"  macOS:         brew install universal-ctags\n" +
			"  Fedora:        sudo dnf install ctags",
	}
}

// IndexingError reports a non-zero exit from the gtags indexing process.
type IndexingError struct {
	ExitCode int
	Output   string
}

func (e *IndexingError) Error() string {
	return fmt.Sprintf("gtags failed (exit %d):\n%s", e.ExitCode, e.Output)
}
