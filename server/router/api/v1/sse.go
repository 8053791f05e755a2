package v1

import "strings"

// encodeSSEData makes a payload safe for a single SSE data line. Newlines
// inside LLM chunks would otherwise terminate the event early.
func encodeSSEData(data string) string {
	return strings.ReplaceAll(data, "\n", "\\n")
}
