package journal

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ergung/position-calculator/risk"
)

var day = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func shortEntry(t *testing.T) Entry {
	t.Helper()
	in := risk.Inputs{EntryPrice: 100, StopPrice: 105, MaxLoss: 50, ContractSize: 1, RewardMultiple: 2}
	r, err := risk.Calculate(in)
	require.NoError(t, err)
	return NewEntry("01HMX3K5Z8Q9R2T4V6W8Y0A1B2", day, in, r)
}

func longUnitEntry(t *testing.T) Entry {
	t.Helper()
	in := risk.Inputs{EntryPrice: 100, StopPrice: 95, MaxLoss: 50}
	r, err := risk.Calculate(in)
	require.NoError(t, err)
	return NewEntry("01HMX3K5Z8Q9R2T4V6W8Y0A1B3", day, in, r)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTSV, false},
		{"tsv", FormatTSV, false},
		{"PIPE", FormatPipe, false},
		{" csv ", FormatCSV, false},
		{"xlsx", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	e := shortEntry(t)
	assert.Equal(t, "SHORT", e.Side)
	assert.Equal(t, risk.ContractMode, e.Mode)
	assert.True(t, e.HasTarget)
	assert.Equal(t, 90.0, e.TakeProfit)
	assert.Equal(t, 2.0, e.RewardR)
	assert.Equal(t, 50.0, e.Risk)

	u := longUnitEntry(t)
	assert.Equal(t, "LONG", u.Side)
	assert.False(t, u.HasTarget)
}

func TestFields(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()

	assert.Equal(t,
		[]string{"2024-01-15", "SHORT", "100", "105", "90", "50", "1000.00", "10.000000"},
		Fields(shortEntry(t), o))
	assert.Equal(t,
		[]string{"2024-01-15", "LONG", "100", "95", "-", "50", "1000.00", "-"},
		Fields(longUnitEntry(t), o))
	assert.Len(t, Header(), len(Fields(shortEntry(t), o)))
}

func TestFormatRow(t *testing.T) {
	t.Parallel()

	e := shortEntry(t)

	tests := []struct {
		format Format
		want   string
	}{
		{FormatTSV, "2024-01-15\tSHORT\t100\t105\t90\t50\t1000.00\t10.000000"},
		{FormatPipe, "2024-01-15 | SHORT | 100 | 105 | 90 | 50 | 1000.00 | 10.000000"},
		{FormatCSV, "2024-01-15,SHORT,100,105,90,50,1000.00,10.000000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			o := DefaultOptions()
			o.Format = tt.format
			assert.Equal(t, tt.want, FormatRow(e, o))
		})
	}
}

func TestFormatRow_DateLayout(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.DateLayout = "02/01/2006"
	row := FormatRow(longUnitEntry(t), o)
	assert.True(t, strings.HasPrefix(row, "15/01/2024\t"), row)
}

func TestWriter_CSVWithHeader(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.Format = FormatCSV

	var buf bytes.Buffer
	w := NewWriter(&buf, o)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(shortEntry(t)))
	require.NoError(t, w.Write(longUnitEntry(t)))
	require.NoError(t, w.Flush())

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, Header(), recs[0])
	assert.Equal(t, "SHORT", recs[1][1])
	assert.Equal(t, "LONG", recs[2][1])
}

func TestWriter_TSVWithHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf, DefaultOptions())
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(longUnitEntry(t)))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(Header(), "\t"), lines[0])
}
