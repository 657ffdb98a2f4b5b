package entities

import "strconv"

// FormatKRW renders an amount in won with thousands grouping, e.g. 1234500
// becomes "1,234,500원". Negative input only occurs for display of discount
// deltas and keeps its sign ahead of the grouping.
func FormatKRW(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatInt(v, 10)
	out := make([]byte, 0, len(s)+len(s)/3+len("원"))
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}
	return string(out) + "원"
}
