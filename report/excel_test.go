package report

import (
	"path/filepath"
	"testing"

	"attendance_tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteSummaryXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	rows := []models.SummaryRow{
		{StudentID: "S1", Name: "Ann", PresentDays: 1, TotalDays: 2, Percentage: "50.00%"},
		{StudentID: "S2", Name: "Ben", PresentDays: 0, TotalDays: 0, Percentage: "0.00%"},
	}

	require.NoError(t, WriteSummaryXLSX(path, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, summaryHeaders, got[0])
	assert.Equal(t, []string{"S1", "Ann", "1", "2", "50.00%"}, got[1])
	assert.Equal(t, []string{"S2", "Ben", "0", "0", "0.00%"}, got[2])
}

func TestWriteSummaryXLSXEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	require.NoError(t, WriteSummaryXLSX(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, got, 1, "only the header row")
}
