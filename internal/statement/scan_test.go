package statement

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

func utcScanner() *Scanner {
	return NewScanner(DefaultLayout(), WithLocation(time.UTC))
}

var sampleStatement = lines(
	"Account Statement",
	"01 Jan 2024",
	"-999",
	"Source/Destination",
	"05 Jan 2024",
	"14:30",
	"Acme",
	"Corp",
	"fee",
	"note",
	"-120",
	"06 Jan 2024",
	"09:00",
	"Nothing",
	"Here",
)

func TestScan_OneRowOneError(t *testing.T) {
	res := utcScanner().Scan(sampleStatement)

	rows := strings.Split(res.CSV, "\n")
	require.Len(t, rows, 2)
	assert.Equal(t, "date~title~amount~comment", rows[0])
	assert.Equal(t, "2024-01-05T14:30:00+00:00~Acme Corp~-120~fee note", rows[1])

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "06 Jan 2024 09:00 Nothing Here")
	assert.Contains(t, res.Errors[0], ErrNoAmount.Error())

	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "Acme Corp", res.Transactions[0].Title)
}

func TestScan_MissingMarkerScansFromTop(t *testing.T) {
	text := lines(
		"05 Jan 2024",
		"14:30",
		"Acme",
		"Corp",
		"+5.000",
	)

	res := utcScanner().Scan(text)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "5000", res.Transactions[0].Amount)
	assert.Empty(t, res.Errors)
}

func TestScan_IgnoresLinesBeforeMarker(t *testing.T) {
	res := utcScanner().Scan(sampleStatement)
	for _, txn := range res.Transactions {
		assert.NotEqual(t, "-999", txn.Amount)
	}
}

func TestScan_SkipsSummaryWindow(t *testing.T) {
	text := lines(
		"Source/Destination",
		"01 Jan 2024",
		"00:00",
		"Previous Balance",
		"Total Incoming",
		"Total Outgoing",
		"Closing Balance",
		"Source/Destination",
		"Transaction Details",
		"-5",
	)

	res := utcScanner().Scan(text)
	assert.Empty(t, res.Transactions)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "date~title~amount~comment", res.CSV)
}

func TestScan_PartialBannedWordsStillParsed(t *testing.T) {
	text := lines(
		"Source/Destination",
		"01 Jan 2024",
		"00:00",
		"Previous Balance",
		"Total Incoming",
		"-5",
	)

	res := utcScanner().Scan(text)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "Previous Balance Total Incoming", res.Transactions[0].Title)
}

func TestScan_WindowIsClipped(t *testing.T) {
	// The amount sits 16 lines after the date, outside a 15-line window.
	l := []string{"Source/Destination", "05 Jan 2024", "14:30"}
	for i := 0; i < 13; i++ {
		l = append(l, "filler")
	}
	l = append(l, "-1")

	res := utcScanner().Scan(lines(l...))
	assert.Empty(t, res.Transactions)
	require.Len(t, res.Errors, 1)
	assert.NotContains(t, res.Errors[0], "-1")
}

func TestScan_OverlappingWindows(t *testing.T) {
	text := lines(
		"Source/Destination",
		"05 Jan 2024",
		"14:30",
		"Coffee",
		"Shop",
		"-25.000",
		"06 Jan 2024",
		"08:15",
		"Salary",
		"January",
		"payroll",
		"+10.000.000",
	)

	res := utcScanner().Scan(text)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, "-25000", res.Transactions[0].Amount)
	assert.Equal(t, "Coffee Shop", res.Transactions[0].Title)
	assert.Equal(t, "10000000", res.Transactions[1].Amount)
	assert.Equal(t, "payroll", res.Transactions[1].Comment)
}

func TestScan_Idempotent(t *testing.T) {
	s := utcScanner()
	a := s.Scan(sampleStatement)
	b := s.Scan(sampleStatement)
	assert.Equal(t, a.CSV, b.CSV)
	assert.Equal(t, a.Errors, b.Errors)
}

func TestScan_CSVRoundTrip(t *testing.T) {
	text := lines(
		"Source/Destination",
		"05 Jan 2024",
		"14:30",
		"Acme, Inc.",
		"Jakarta",
		"invoice 42, paid",
		"-120",
		"06 Jan 2024",
		"08:15",
		"Salary",
		"",
		"+10.000",
	)

	res := utcScanner().Scan(text)
	rows := strings.Split(res.CSV, "\n")
	require.Len(t, rows, len(res.Transactions)+1)
	for i, txn := range res.Transactions {
		assert.Equal(t, txn.Fields(), strings.Split(rows[i+1], "~"))
	}
}

func TestScan_EmptyInput(t *testing.T) {
	res := utcScanner().Scan("")
	assert.Equal(t, "date~title~amount~comment", res.CSV)
	assert.Empty(t, res.Transactions)
	assert.Empty(t, res.Errors)
}

func TestScan_CustomLayout(t *testing.T) {
	layout := Layout{
		Name: "semicolon",
		Markers: map[MarkerKind][]string{
			MarkerStart:  {"Mutations"},
			MarkerBanned: {"Opening", "Closing"},
		},
		Delimiter:  ";",
		WindowSize: 5,
	}
	text := lines(
		"Mutations",
		"05 Jan 2024",
		"14:30",
		"Acme",
		"Corp",
		"-120",
		"06 Jan 2024",
		"Opening",
		"Closing",
	)

	res := NewScanner(layout, WithLocation(time.UTC)).Scan(text)
	assert.Equal(t, "date;title;amount;comment\n2024-01-05T14:30:00+00:00;Acme Corp;-120;", res.CSV)
	assert.Empty(t, res.Errors)
}

func TestScan_InvalidTimeRecordedAsError(t *testing.T) {
	text := lines(
		"Source/Destination",
		"05 Jan 2024",
		"Acme",
		"Corp",
		"-120",
	)

	res := utcScanner().Scan(text)
	assert.Empty(t, res.Transactions)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], ErrInvalidTimestamp.Error())
	assert.Contains(t, res.Errors[0], "05 Jan 2024 Acme Corp -120")
}

func TestParse_DefaultLayout(t *testing.T) {
	res := Parse(sampleStatement)
	assert.Len(t, res.Transactions, 1)
	assert.Len(t, res.Errors, 1)
}
