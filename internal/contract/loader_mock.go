package contract

import (
	"context"

	"github.com/oreops/haulstat/schema"
	"github.com/stretchr/testify/mock"
)

// MockRowLoader is a mock implementation of RowLoader for testing.
type MockRowLoader struct {
	mock.Mock
}

var _ RowLoader = &MockRowLoader{} // Compile-time check

// ListSources implements the RowLoader interface.
func (m *MockRowLoader) ListSources(dir string) ([]schema.SourceFile, error) {
	args := m.Called(dir)
	files, _ := args.Get(0).([]schema.SourceFile)
	return files, args.Error(1)
}

// LoadRows implements the RowLoader interface.
func (m *MockRowLoader) LoadRows(ctx context.Context, path string) (*schema.RowSet, error) {
	args := m.Called(ctx, path)
	rs, _ := args.Get(0).(*schema.RowSet)
	return rs, args.Error(1)
}
