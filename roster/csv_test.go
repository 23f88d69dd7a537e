package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_data.csv")

	m := newTestManager()
	m.AddStudent("1001", "Alice")
	m.MarkAttendance("1001", true, "2024-01-01")
	m.MarkAttendance("1001", false, "2024-01-02")
	m.AddStudent("1002", "Bob")
	m.MarkAttendance("1002", true, "2024-01-01")

	require.NoError(t, m.SaveCSV(path))

	loaded := newTestManager()
	require.NoError(t, loaded.LoadCSV(path))

	require.Equal(t, 2, loaded.Len())

	alice, ok := loaded.Get("1001")
	require.True(t, ok)
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, map[string]bool{"2024-01-01": true, "2024-01-02": false}, alice.Attendance)

	bob, ok := loaded.Get("1002")
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"2024-01-01": true}, bob.Attendance)
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_data.csv")
	content := "1001,Alice,2024-01-01,True\n" +
		"too,few,fields\n" +
		"way,too,many,fields,here\n" +
		"1002,Bob,2024-01-02,False\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m := newTestManager()
	require.NoError(t, m.LoadCSV(path))

	// The malformed rows are dropped; rows after them still load.
	assert.Equal(t, 2, m.Len())
	bob, ok := m.Get("1002")
	require.True(t, ok)
	assert.False(t, bob.Attendance["2024-01-02"])
}

func TestLoadTrueLiteralIsCaseSensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_data.csv")
	content := "1001,Alice,2024-01-01,True\n" +
		"1001,Alice,2024-01-02,true\n" +
		"1001,Alice,2024-01-03,1\n" +
		"1001,Alice,2024-01-04,TRUE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m := newTestManager()
	require.NoError(t, m.LoadCSV(path))

	alice, ok := m.Get("1001")
	require.True(t, ok)
	assert.True(t, alice.Attendance["2024-01-01"])
	assert.False(t, alice.Attendance["2024-01-02"], `"true" is not the literal "True"`)
	assert.False(t, alice.Attendance["2024-01-03"])
	assert.False(t, alice.Attendance["2024-01-04"])
}

func TestLoadCreatesStudentsOnDemand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_data.csv")
	content := "9999,Ghost,2024-01-01,True\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m := newTestManager()
	require.NoError(t, m.LoadCSV(path))

	ghost, ok := m.Get("9999")
	require.True(t, ok)
	assert.Equal(t, "Ghost", ghost.Name)
}

func TestLoadMissingFileIsNoOp(t *testing.T) {
	m := newTestManager()
	m.AddStudent("1001", "Alice")

	err := m.LoadCSV(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	assert.NoError(t, err)
	assert.Equal(t, 1, m.Len())
}

func TestSaveWritesDatesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_data.csv")

	m := newTestManager()
	m.AddStudent("1001", "Alice")
	m.MarkAttendance("1001", true, "2024-03-01")
	m.MarkAttendance("1001", false, "2024-01-15")
	m.MarkAttendance("1001", true, "2024-02-10")
	require.NoError(t, m.SaveCSV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "1001,Alice,2024-01-15,False\n" +
		"1001,Alice,2024-02-10,True\n" +
		"1001,Alice,2024-03-01,True\n"
	assert.Equal(t, want, string(data))

	// A second save produces the identical file.
	require.NoError(t, m.SaveCSV(path))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(again))
}

func TestSaveOverwritesTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,data,should,vanish\n"), 0644))

	m := newTestManager()
	m.AddStudent("1001", "Alice")
	m.MarkAttendance("1001", true, "2024-01-01")
	require.NoError(t, m.SaveCSV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1001,Alice,2024-01-01,True\n", string(data))
}
