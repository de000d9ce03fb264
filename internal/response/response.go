package response

import (
	"fmt"
	"io"
	"sort"
)

// Fail writes the message for code as a single console line.
func Fail(w io.Writer, code ErrCode) {
	fmt.Fprintln(w, GetMessage(code))
}

// FailWithFields writes the message for code followed by one indented line
// per field, sorted by field name.
func FailWithFields(w io.Writer, code ErrCode, fields map[string]string) {
	Fail(w, code)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "  - %s: %s\n", k, fields[k])
	}
}
