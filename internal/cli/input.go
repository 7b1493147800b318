package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/parlab/parlay/pkg/notation"
)

// readInput loads the program text for a command and resolves its
// notation: from the file extension when reading a file, or IR when the
// text is given inline.
func readInput(file, inline string) (string, notation.Format, error) {
	switch {
	case inline != "" && file != "":
		return "", "", errors.New("--file and --inline are mutually exclusive")
	case inline != "":
		return inline, notation.IR, nil
	case file != "":
		format, err := notation.FromPath(file)
		if err != nil {
			return "", "", err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), format, nil
	}
	return "", "", errors.New("no input: use --file or --inline")
}
