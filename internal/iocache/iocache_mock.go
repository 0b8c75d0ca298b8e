package iocache

import (
	"time"

	"github.com/adbar/shoten/internal/contract"
	"github.com/adbar/shoten/schema"
	"github.com/stretchr/testify/mock"
)

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, documents, tokens, vocabSize int) error {
	args := m.Called(runID, endTime, documents, tokens, vocabSize)
	return args.Error(0)
}

// RecordWordStats implements the RunStore interface.
func (m *MockRunStore) RecordWordStats(runID int64, rows []schema.FreqRow) error {
	args := m.Called(runID, rows)
	return args.Error(0)
}

// ListRuns implements the RunStore interface.
func (m *MockRunStore) ListRuns(limit int) ([]schema.RunSummary, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.RunSummary)
	return runs, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.TrackingStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.TrackingStatus), args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
