package csvreader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pricebook-be/pkg/catalog/csvreader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadHeaderDrivenRecords(t *testing.T) {
	path := writeFile(t, "items.csv", []byte(
		"id,Code,Item,ClientPrice\n"+
			"10,C-10,Vodka,1.50\n"+
			"11,C-11,Whisky,2.75\n"))

	records, fields, err := csvreader.New().Read(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{"id", "Code", "Item", "ClientPrice"}, fields)
	require.Len(t, records, 2)
	assert.Equal(t, "10", records[0].Id)
	assert.Equal(t, "Vodka", records[0].Fields["Item"])
	assert.Equal(t, "11", records[1].Id)
	assert.Equal(t, "2.75", records[1].Fields["ClientPrice"])
}

func TestReadRaggedRowsKeepKnownColumns(t *testing.T) {
	path := writeFile(t, "items.csv", []byte(
		"id,Item\n"+
			"1,Vodka,ignored-extra\n"+
			"2\n"))

	records, _, err := csvreader.New().Read(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Vodka", records[0].Fields["Item"])
	assert.NotContains(t, records[0].Fields, "ignored-extra")
	assert.Equal(t, "2", records[1].Id)
	assert.NotContains(t, records[1].Fields, "Item")
}

func TestReadWindows1251(t *testing.T) {
	raw, _, err := transform.Bytes(charmap.Windows1251.NewEncoder(), []byte(
		"id,Марка\n"+
			"1,Водка Премиум\n"))
	require.NoError(t, err)
	path := writeFile(t, "items.csv", raw)

	records, fields, err := csvreader.New(csvreader.WithWindows1251()).Read(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{"id", "Марка"}, fields)
	require.Len(t, records, 1)
	assert.Equal(t, "Водка Премиум", records[0].Fields["Марка"])
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := csvreader.New().Read(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadCancelledContext(t *testing.T) {
	path := writeFile(t, "items.csv", []byte("id,Item\n1,Vodka\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := csvreader.New().Read(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
