package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Load decodes an embedded JSON data file into a T.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(dataFS, filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("decode %s: %w", filename, err)
	}

	return result, nil
}
