package sicasm

import "strings"

// Tokenize splits one source line into its whitespace-separated fields,
// honoring single-quoted character literals as atomic units. It applies
// the following rules with a single inQuote flag:
//
//   - '\r', '\n' terminate the current field (if non-empty) and the line.
//   - A single quote toggles inQuote and is itself retained in the field.
//   - Space/tab outside a quoted region terminates the current field;
//     inside a quoted region it is retained.
//   - Any other character is appended to the current field.
func Tokenize(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false

	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}

	for _, c := range line {
		switch {
		case c == '\r' || c == '\n':
			flush()
			return fields
		case c == ' ' || c == '\t':
			if inQuote {
				cur.WriteRune(c)
			} else {
				flush()
			}
		case c == '\'':
			inQuote = !inQuote
			cur.WriteRune(c)
		default:
			cur.WriteRune(c)
		}
	}
	flush()

	return fields
}
