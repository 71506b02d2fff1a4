// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}

// SaveJSON writes v to path ("-" for stdout) through the path's codec.
func SaveJSON(path string, v any) (err error) {
	wc, err := Create(path)
	if err != nil {
		return fmt.Errorf("SaveJSON: %w", err)
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveJSON: %w", cerr)
		}
	}()

	return WriteJSON(wc, v)
}
