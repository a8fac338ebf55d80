package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournal_WritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "decisions.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	require.NoError(t, j.RecordDecision(sampleRecord("EUR_USD", OutcomeApproved)))

	rejected := sampleRecord("EUR_USD", OutcomeRejected)
	rejected.Reason = "open position limit reached: open 5 >= max 5"
	require.NoError(t, j.RecordDecision(rejected))
	require.NoError(t, j.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "outcome", rows[0][4])
	assert.Equal(t, OutcomeApproved, rows[1][4])
	assert.Equal(t, OutcomeRejected, rows[2][4])
	assert.Contains(t, rows[2][5], "position limit")
	assert.Equal(t, "100000", rows[1][6])
}
