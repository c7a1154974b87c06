package ports

import (
	"context"

	"go.trai.ch/sack/internal/core/domain"
)

// Downgrader plans the downgrade of the packages matching specs.
//
//go:generate mockgen -source=downgrader.go -destination=mocks/mock_downgrader.go -package=mocks
type Downgrader interface {
	Downgrade(ctx context.Context, specs []string) (*domain.Transaction, error)
}
