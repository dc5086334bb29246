package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Result is the outcome of a command. Commands that take one path per
// operand produce a slice with one entry per operand.
type Result struct {
	Command string `json:"command"`
	Result  any    `json:"result"`
}

// Write prints r in the given format: "json" for a single JSON object,
// anything else for one value per line.
func (r *Result) Write(w io.Writer, format string) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(r)
	}

	for _, line := range textLines(r.Result) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func textLines(v any) []string {
	switch t := v.(type) {
	case []any:
		var lines []string
		for _, item := range t {
			lines = append(lines, textLines(item)...)
		}
		return lines
	case Tuple:
		return []string{strings.Join(t, "\t")}
	case bool:
		return []string{strconv.FormatBool(t)}
	case string:
		return []string{t}
	default:
		return []string{fmt.Sprint(t)}
	}
}
