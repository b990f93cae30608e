package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdflight/internal/model"
)

type MockLightenService struct {
	mock.Mock
}

func (m *MockLightenService) Lighten(ctx context.Context, data []byte, filename string, raw model.RawOptions) (*model.Result, error) {
	args := m.Called(ctx, data, filename, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}
