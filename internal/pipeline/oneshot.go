package pipeline

import (
	"fmt"
	"os"

	"promob/internal"
)

// ReadInput loads a file and extracts its text. Any failure here is fatal
// for the run: nothing is parsed from a partial read.
func ReadInput(path string, kind internal.InputKind) (string, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if kind == "" || kind == internal.InputAuto {
		kind = KindForPath(path)
	}
	text, err := ExtractText(kind, blob)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}
