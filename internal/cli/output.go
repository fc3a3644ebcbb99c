package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// field is one line of command output.
type field struct {
	Key   string
	Value any
}

// writeResult prints fields as "key: value" lines in order, or as a single
// JSON object.
func writeResult(w io.Writer, format string, fields ...field) error {
	if format == OutputJSON {
		obj := make(map[string]any, len(fields))
		for _, f := range fields {
			obj[f.Key] = f.Value
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(obj)
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s: %v\n", f.Key, f.Value); err != nil {
			return err
		}
	}
	return nil
}
