package kovaaks

import "strings"

// Content sentinels that mark section starts. Exact prefixes on the
// trimmed line, comma included, case-sensitive.
const (
	weaponSentinel = "Weapon,"
	statsSentinel  = "Kills:,"
)

// findBoundaries scans once over all lines and returns the index of the
// weapon-table header and the index of the first stats line. Either is -1
// if its sentinel was not found.
//
// The scan halts at the first stats sentinel so an accidental
// "Kills:,"-prefixed line inside the stats block is never treated as a
// new boundary. The weapon sentinel does not halt the scan.
func findBoundaries(lines []string) (weaponStart, statsStart int) {
	weaponStart, statsStart = -1, -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if weaponStart < 0 && strings.HasPrefix(trimmed, weaponSentinel) {
			weaponStart = i
		}
		if strings.HasPrefix(trimmed, statsSentinel) {
			statsStart = i
			break
		}
	}
	return weaponStart, statsStart
}

// splitLines materializes the file content as lines. Boundary detection
// needs a full first pass, so the content is never streamed.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	return strings.Split(string(data), "\n")
}
