package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"immodok/internal/domain"
	"immodok/internal/port"
)

// MockDocumentStore is a mock implementation of port.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Save(ctx context.Context, fileID string, data []byte) error {
	args := m.Called(ctx, fileID, data)
	return args.Error(0)
}

func (m *MockDocumentStore) Load(ctx context.Context, fileID string) ([]byte, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentStore) Delete(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, data []byte) (*port.TextExtraction, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.TextExtraction), args.Error(1)
}

// MockObjectSource is a mock implementation of port.ObjectSource.
type MockObjectSource struct {
	mock.Mock
}

func (m *MockObjectSource) LoadObjects(ctx context.Context) ([]domain.ObjectRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ObjectRecord), args.Error(1)
}

// MockVendorSource is a mock implementation of port.VendorSource.
type MockVendorSource struct {
	mock.Mock
}

func (m *MockVendorSource) LoadVendorAliases(ctx context.Context) ([]domain.VendorAlias, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorAlias), args.Error(1)
}
