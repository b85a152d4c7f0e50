package ports

import (
	"context"

	"github.com/bnema/devicefarm-e2e/internal/domain"
)

type ReportSink interface {
	SaveLogs(ctx context.Context, logs map[string][]byte) (map[string]string, error)
	SaveTest(ctx context.Context, test *domain.Test) error
}

type ResultRepository interface {
	Save(ctx context.Context, test *domain.Test) error
	GetByName(ctx context.Context, name string) (*domain.Test, error)
	List(ctx context.Context) ([]*domain.Test, error)
}
