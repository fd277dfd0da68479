package subjects

import "context"

type Repository interface {
	Create(ctx context.Context, s Subject) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Subject, error)
}
