package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"immodok/internal/domain"
	"immodok/internal/service"
)

// mockProcessService is a test double for service.ProcessService. It
// lives in the handler test package rather than in mocks/: a shared
// mock importing the service package would form an import cycle with
// the service package's own in-package tests.
type mockProcessService struct {
	mock.Mock
}

func (m *mockProcessService) Process(ctx context.Context, input service.ProcessInput) (*domain.ResultRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResultRecord), args.Error(1)
}
