package backend

import (
	"strings"
	"unicode"

	"github.com/psdsmon/psdsmon/internal/models"
)

// rowFunc converts one line of backend output into a record.
type rowFunc func(line string) (models.ProcessRecord, error)

// parseRows applies fn to every non-blank line and drops the ones that
// fail. One malformed or vanished entry never poisons the batch.
func parseRows(lines []string, fn rowFunc) []models.ProcessRecord {
	var records []models.ProcessRecord
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := fn(line)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// splitLines splits command output into lines, tolerating CRLF endings.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

// splitFieldsN splits on runs of whitespace into at most n fields. The
// final field keeps its interior spacing, so a trailing column may embed
// spaces.
func splitFieldsN(s string, n int) []string {
	var fields []string
	s = strings.TrimSpace(s)
	for len(s) > 0 && len(fields) < n-1 {
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			break
		}
		fields = append(fields, s[:i])
		s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	}
	if s != "" {
		fields = append(fields, s)
	}
	return fields
}
