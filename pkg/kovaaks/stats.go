package kovaaks

import (
	"strconv"
	"strings"
)

// parseStats parses the vertical key-value block into dst. Every line
// containing a colon contributes one entry; the split is on the first
// colon only, since values may themselves contain colons. Later
// occurrences of a key overwrite earlier ones.
func parseStats(lines []string, dst *Stats) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}

		key, val, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)

		// Leading/trailing commas are an artifact of the export format
		// and break numeric conversion.
		val = strings.TrimSpace(val)
		val = strings.TrimSpace(strings.Trim(val, ","))

		dst.Set(key, coerceValue(val))
	}
}

// coerceValue attempts numeric coercion of a cleaned stats value.
// Thousands separators are removed before parsing; a value containing a
// dot is tried as a float, anything else as an integer. On failure the
// trimmed string is kept as-is. An empty value stays an empty string.
func coerceValue(val string) Value {
	if val == "" {
		return StringValue("")
	}

	num := strings.ReplaceAll(val, ",", "")
	if strings.Contains(num, ".") {
		if f, err := strconv.ParseFloat(num, 64); err == nil {
			return FloatValue(f)
		}
	} else if n, err := strconv.ParseInt(num, 10, 64); err == nil {
		return IntValue(n)
	}

	return StringValue(val)
}
