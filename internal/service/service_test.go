package service_test

import (
	"context"
	"sync"
	"testing"

	"pricebook-be/pkg/catalog"
	"pricebook-be/pkg/database"
	"pricebook-be/pkg/export"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSqliteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// staticReader serves a fixed record set and records how it was called.
type staticReader struct {
	mu         sync.Mutex
	calls      int
	lastSource string
	records    []catalog.Record
	fields     []string
}

func (r *staticReader) Read(ctx context.Context, source string) ([]catalog.Record, []string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.lastSource = source
	return r.records, r.fields, nil
}

func (r *staticReader) stats() (int, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls, r.lastSource
}

// fakeRenderer captures the assembled document instead of producing a file.
type fakeRenderer struct {
	doc *export.Document
}

func (r *fakeRenderer) Render(doc *export.Document) ([]byte, error) {
	r.doc = doc
	return []byte("DOCX"), nil
}
