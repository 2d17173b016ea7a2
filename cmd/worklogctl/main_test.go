package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HOLIDAY_CALENDAR_FILE", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWorkdaysCmd(t *testing.T) {
	out, err := execute(t, "workdays", "--start", "2025-06-01", "--end", "2025-06-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01 .. 2025-06-05: 4 workdays\n", out)

	out, err = execute(t, "workdays", "--start", "2025-06-01", "--end", "2025-06-05", "--eves")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01 .. 2025-06-05: 3 workdays\n", out)
}

func TestWorkdaysCmd_ClipAndDays(t *testing.T) {
	out, err := execute(t, "workdays", "--start", "2025-06-01", "--end", "2025-06-05",
		"--clip-start", "2025-06-04", "--clip-end", "2025-06-30", "--days")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-06-01 .. 2025-06-05: 2 workdays")
	assert.Contains(t, out, "Shavuot")
	assert.Contains(t, out, "2025-06-05")
}

func TestWorkdaysCmd_InvalidInput(t *testing.T) {
	_, err := execute(t, "workdays", "--start", "2025-06-05", "--end", "2025-06-01")
	assert.Error(t, err)

	_, err = execute(t, "workdays", "--start", "06/01/2025")
	assert.Error(t, err)

	_, err = execute(t, "workdays")
	assert.Error(t, err, "--start is required")
}

func TestHolidaysCmd_CalendarFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`holidays:
  - date: "2030-04-18"
    name: Passover
  - date: "2030-10-07"
    name: Yom Kippur
`), 0o644))

	out, err := execute(t, "--calendar", path, "holidays", "--year", "2030")
	require.NoError(t, err)
	assert.Contains(t, out, "2030-04-18")
	assert.Contains(t, out, "Yom Kippur")

	out, err = execute(t, "--calendar", path, "holidays", "--year", "2031")
	require.NoError(t, err)
	assert.Equal(t, "no holidays listed for 2031\n", out)
}

func TestDatabaseCommandsNeedURL(t *testing.T) {
	for _, args := range [][]string{
		{"migrate"},
		{"report", "export", "--year", "2025", "--month", "6"},
		{"report", "tally"},
		{"holidays", "import", "--file", "missing.yaml"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "DATABASE_URL", args)
	}
}

func TestInvalidTimezone(t *testing.T) {
	_, err := execute(t, "--tz", "Mars/Olympus", "workdays", "--start", "2025-06-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tz")
}
