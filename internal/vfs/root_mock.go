package vfs

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"
)

// MockRoot can be used for testing
type MockRoot struct {
	mock.Mock
}

// Path is a mocked function
func (m *MockRoot) Path() string {
	args := m.Called()
	return args.String(0)
}

// Lstat is a mocked function
func (m *MockRoot) Lstat(ctx context.Context, name string) (os.FileInfo, error) {
	args := m.Called(ctx, name)
	fi, ok := args.Get(0).(os.FileInfo)
	if !ok {
		return nil, args.Error(1)
	}

	return fi, args.Error(1)
}

// Open is a mocked function
func (m *MockRoot) Open(ctx context.Context, name string) (File, error) {
	args := m.Called(ctx, name)
	f, ok := args.Get(0).(File)
	if !ok {
		return nil, args.Error(1)
	}

	return f, args.Error(1)
}

// NewMockRoot returns a new Root mock for testing
func NewMockRoot(path string) *MockRoot {
	m := &MockRoot{}
	m.On("Path").Return(path).Maybe()

	return m
}
