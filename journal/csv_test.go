package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCSV(t *testing.T) (*CSVJournal, string, string) {
	t.Helper()

	dir := t.TempDir()
	daysPath := filepath.Join(dir, "days.csv")
	equityPath := filepath.Join(dir, "equity.csv")

	j, err := NewCSV(daysPath, equityPath)
	require.NoError(t, err)

	return j, daysPath, equityPath
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVHeaders(t *testing.T) {
	t.Parallel()

	j, daysPath, equityPath := newTestCSV(t)
	require.NoError(t, j.Close())

	days := readCSV(t, daysPath)
	require.Len(t, days, 1)
	assert.Equal(t, "run_id", days[0][0])
	assert.Equal(t, "narrative", days[0][len(days[0])-1])

	equity := readCSV(t, equityPath)
	require.Len(t, equity, 1)
	assert.Equal(t, []string{"run_id", "day", "equity", "peak", "drawdown"}, equity[0])
}

func TestCSVRecordDay(t *testing.T) {
	t.Parallel()

	j, daysPath, _ := newTestCSV(t)

	require.NoError(t, j.RecordDay(sampleDay("RUN1", 1, -42.5)))
	require.NoError(t, j.RecordDay(sampleDay("RUN1", 2, 10)))
	require.NoError(t, j.Close())

	rows := readCSV(t, daysPath)
	require.Len(t, rows, 3)

	assert.Equal(t, "RUN1", rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "Trade", rows[1][2])
	assert.Equal(t, "Long", rows[1][3])
	assert.Equal(t, "-42.500000", rows[1][8])
	assert.Equal(t, "false", rows[1][10])
}

func TestCSVRecordEquity(t *testing.T) {
	t.Parallel()

	j, _, equityPath := newTestCSV(t)

	require.NoError(t, j.RecordEquity(EquitySnapshot{
		RunID: "RUN1", Day: 1, Equity: 9900, Peak: 10000, Drawdown: 0.01,
	}))
	require.NoError(t, j.Close())

	rows := readCSV(t, equityPath)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"RUN1", "1", "9900.000000", "10000.000000", "0.010000"}, rows[1])
}
