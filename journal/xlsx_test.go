package journal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "positions.xlsx")
	entries := []Entry{shortEntry(t), longUnitEntry(t)}

	require.NoError(t, WriteXLSX(path, entries, DefaultOptions()))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	assert.Equal(t, []string{sheetName}, fx.GetSheetList())

	rows, err := fx.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, append([]string{"ref"}, Header()...), rows[0])
	assert.Equal(t, "01HMX3K5Z8Q9R2T4V6W8Y0A1B2", rows[1][0])
	assert.Equal(t, "2024-01-15", rows[1][1])
	assert.Equal(t, "SHORT", rows[1][2])
	assert.Equal(t, "90", rows[1][5])
	assert.Equal(t, "LONG", rows[2][2])
	assert.Equal(t, "-", rows[2][5])
	assert.Equal(t, "-", rows[2][8])
}
