package doses

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, records []DoseRecord) error
	Update(ctx context.Context, r DoseRecord) error
	DeleteBySubject(ctx context.Context, subjectID string) error
	ListAll(ctx context.Context) ([]DoseRecord, error)
}
