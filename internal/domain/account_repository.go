package domain

import "context"

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	// GetByIDForUser resolves an account only when it belongs to the given
	// user; any other account id yields ErrRecordNotFound.
	GetByIDForUser(ctx context.Context, id string, userID string) (Account, error)
	ListByUser(ctx context.Context, userID string) ([]Account, error)
	UpdateStatus(ctx context.Context, id string, userID string, status AccountStatus) (Account, error)
	Delete(ctx context.Context, id string, userID string) error
}
