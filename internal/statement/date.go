package statement

import "time"

const (
	dateLayout      = "02 Jan 2006"
	dateTimeLayout  = "02 Jan 2006 15:04"
	timestampLayout = "2006-01-02T15:04:05-07:00"
)

// IsValidDate reports whether line is exactly a date like "05 Jan 2024".
// Parsing alone accepts lowercase month names, so the parsed value must
// also format back to the same string.
func IsValidDate(line string) bool {
	t, err := time.Parse(dateLayout, line)
	if err != nil {
		return false
	}
	return t.Format(dateLayout) == line
}
