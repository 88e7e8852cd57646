package statement

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cleared-dev/stmt2csv/internal/model"
)

var (
	// ErrNoAmount means no line in the window is a signed amount.
	ErrNoAmount = errors.New("no amount found")
	// ErrInvalidTimestamp means the first two lines are not a date and a time.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

var amountPattern = regexp.MustCompile(`^[+-]\d+$`)

// Window positions.
const (
	idxDate    = 0
	idxTime    = 1
	idxTitle   = 2
	idxTitle2  = 3
	idxComment = 4
)

// TransformWindow builds a transaction from a window whose first line is a
// date. Lines past the end of the window read as empty strings.
//
// The amount is the first line, searched from index 0, that is a signed
// integer once periods are removed. A date or title line of that shape is
// therefore taken as the amount.
func TransformWindow(lines []string, loc *time.Location) (model.Transaction, error) {
	amountIdx := findAmount(lines)
	if amountIdx == -1 {
		return model.Transaction{}, ErrNoAmount
	}

	if loc == nil {
		loc = time.Local
	}
	raw := lineAt(lines, idxDate) + " " + lineAt(lines, idxTime)
	ts, err := time.ParseInLocation(dateTimeLayout, raw, loc)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w %q", ErrInvalidTimestamp, raw)
	}

	var comment string
	if amountIdx > idxComment {
		comment = strings.Join(lines[idxComment:amountIdx], " ")
	}

	return model.Transaction{
		Date:    ts.Format(timestampLayout),
		Title:   lineAt(lines, idxTitle) + " " + lineAt(lines, idxTitle2),
		Amount:  strings.NewReplacer("+", "", ".", "").Replace(lines[amountIdx]),
		Comment: comment,
	}, nil
}

func findAmount(lines []string) int {
	for i, line := range lines {
		if amountPattern.MatchString(strings.ReplaceAll(line, ".", "")) {
			return i
		}
	}
	return -1
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
