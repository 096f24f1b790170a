// Package export writes collection snapshots for humans.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes v as YAML using its JSON field names. v goes through
// encoding/json first so the output keys match the stored documents.
func WriteYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	var doc any
	if err = json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}
