package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/snacker/internal/common"
	"github.com/Veraticus/snacker/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedExpenses(env *testEnv) {
	env.t.Helper()
	env.onboard()
	env.mustRun("tx", "add", "-a", "42.50", "-c", "food", "-d", "2024-03-01", "-n", "lunch")
	env.mustRun("tx", "add", "-a", "7.25", "-c", "transport", "-d", "2024-02-20", "-n", "jeep")
	env.mustRun("tx", "add", "-t", "income", "-a", "1000", "-c", "salary", "-d", "2024-03-05")
}

func TestExportCSV(t *testing.T) {
	env := newTestEnv(t)
	seedExpenses(env)
	dir := t.TempDir()

	out := env.mustRun("export", "csv", "--dir", dir)
	assert.Contains(t, out, "Exported 2 expenses totaling ₱49.75")

	path := filepath.Join(dir, report.FileName(testNow))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, report.CSVHeader, records[0])

	body := flatten(records)
	assert.Contains(t, body, "2024-02-20")
	assert.Contains(t, body, "lunch")
	assert.NotContains(t, body, "1000", "income is never exported")
	assert.Less(t, strings.Index(body, "jeep"), strings.Index(body, "lunch"), "oldest first")
}

func TestExportCSVToStdout(t *testing.T) {
	env := newTestEnv(t)
	seedExpenses(env)

	out := env.mustRun("export", "csv", "--stdout", "--category", "food")

	assert.Contains(t, out, "lunch")
	assert.NotContains(t, out, "jeep")
}

func TestExportEmpty(t *testing.T) {
	env := newTestEnv(t)
	seedExpenses(env)

	_, err := env.run("export", "csv", "--dir", t.TempDir(), "--from", "2025-01-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrEmptyReport)
	assert.Contains(t, common.UserMessage(err), "No expenses match the filters.")
}

func TestExportSheets(t *testing.T) {
	env := newTestEnv(t)
	seedExpenses(env)

	_, err := env.run("export", "sheets")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
	assert.Contains(t, common.UserMessage(err), "snacker auth sheets")
	assert.Equal(t, 0, env.sheets.WriteCallCount)

	t.Setenv("SNACKER_SHEETS_SERVICE_ACCOUNT_PATH", filepath.Join(t.TempDir(), "sa.json"))
	out := env.mustRun("export", "sheets", "--saved", "--from", "2024-03-01")
	assert.Contains(t, out, "Exported 1 expenses to Google Sheets")

	require.Equal(t, 1, env.sheets.WriteCallCount)
	r := env.sheets.LastReport
	require.Len(t, r.Rows, 1)
	assert.Equal(t, "lunch", r.Rows[0].Notes)
	assert.True(t, decimal.RequireFromString("42.5").Equal(r.Total))
	assert.Equal(t, "Tester", r.Username)
}

func flatten(records [][]string) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(strings.Join(r, ","))
		b.WriteByte('\n')
	}
	return b.String()
}
