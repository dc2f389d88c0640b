package csvfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gillpay/internal/csvfile"
)

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.csv")
	header := []string{"type", "name"}

	created, err := csvfile.Create(path, header, [][]string{{"Expense", "Food"}})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = csvfile.Create(path, header, nil)
	require.NoError(t, err)
	assert.False(t, created)

	tbl, err := csvfile.Read(path)
	require.NoError(t, err)
	assert.Equal(t, header, tbl.Header)
	assert.Equal(t, [][]string{{"Expense", "Food"}}, tbl.Records)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := " a ,b,,a\n1,2\n\n\"x, y\",z,w,v,extra\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tbl, err := csvfile.Read(path)
	require.NoError(t, err)
	require.Len(t, tbl.Records, 2)

	idx := tbl.Index()
	assert.Equal(t, csvfile.Index{"a": 0, "b": 1}, idx)

	v, ok := idx.Cell(tbl.Records[1], "a")
	assert.True(t, ok)
	assert.Equal(t, "x, y", v)

	_, ok = idx.Cell([]string{"only"}, "b")
	assert.False(t, ok)

	_, ok = idx.Cell(tbl.Records[0], "missing")
	assert.False(t, ok)
}

func TestRead_Missing(t *testing.T) {
	_, err := csvfile.Read(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, csvfile.Write(path, []string{"n"}, [][]string{{"1"}}))

	require.NoError(t, csvfile.Append(path, nil))
	require.NoError(t, csvfile.Append(path, [][]string{{"2"}, {"3"}}))

	tbl, err := csvfile.Read(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}}, tbl.Records)

	ok, err := csvfile.Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Error(t, csvfile.Append(filepath.Join(t.TempDir(), "nope.csv"), [][]string{{"x"}}))
}
