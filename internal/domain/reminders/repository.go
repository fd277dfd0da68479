package reminders

import "context"

type Repository interface {
	Create(ctx context.Context, r Reminder) error
	Update(ctx context.Context, r Reminder) error
	Delete(ctx context.Context, id string) error
	DeleteBySubject(ctx context.Context, subjectID string) error
	ListAll(ctx context.Context) ([]Reminder, error)
}
