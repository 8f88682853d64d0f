package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFourDecimalPlaces(t *testing.T) {
	assert.Equal(t, "$0.0000", Money(0))
	assert.Equal(t, "$1.2300", Money(1.23))
}

func TestMoneyPtrMissingVsZero(t *testing.T) {
	assert.Equal(t, Missing, MoneyPtr(nil))
	zero := 0.0
	assert.Equal(t, "$0.0000", MoneyPtr(&zero))
}

func TestDurationSubSecondVsSecond(t *testing.T) {
	assert.Equal(t, "400ms", Duration(400))
	assert.Equal(t, "5.00s", Duration(5000))
}

func TestTruncateErrorAt80Chars(t *testing.T) {
	long := strings.Repeat("x", 120)
	assert.Len(t, TruncateError(long), 80)
	assert.Equal(t, "short", TruncateError("short"))
}

func TestSignedFormatsSign(t *testing.T) {
	assert.Equal(t, "+400", Signed(400))
	assert.Equal(t, "-12", Signed(-12))
	assert.Equal(t, "+0", Signed(0))
}

func TestPrintNoteSkipsTable(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, Table{Note: "no data"})
	assert.Equal(t, "no data\n", buf.String())
}

func TestPrintRendersHeaderSeparatorRowsFooter(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, Table{
		Header: []string{"KEY", "COUNT"},
		Rows:   [][]string{{"a", "1"}, {"bb", "2"}},
		Footer: []string{"TOTAL", "3"},
	})
	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "TOTAL")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.True(t, len(lines) >= 5)
}
