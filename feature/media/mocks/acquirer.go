package mocks

import (
	"context"

	"catalog-importer/feature/media"

	"github.com/stretchr/testify/mock"
)

// Acquirer is a mock implementation of media.Acquirer.
type Acquirer struct {
	mock.Mock
}

func (m *Acquirer) Acquire(ctx context.Context, sourceURL string) (*media.MediaAsset, error) {
	args := m.Called(ctx, sourceURL)
	if asset, ok := args.Get(0).(*media.MediaAsset); ok {
		return asset, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Acquirer) AcquirePortrait(ctx context.Context, sourceURL string) (*media.MediaAsset, error) {
	args := m.Called(ctx, sourceURL)
	if asset, ok := args.Get(0).(*media.MediaAsset); ok {
		return asset, args.Error(1)
	}
	return nil, args.Error(1)
}
