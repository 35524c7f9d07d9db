package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetOneWhere(ctx context.Context, conds map[string]any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	GetAllWhere(ctx context.Context, conds map[string]any, order string, entities any) error
	UpdateWhere(ctx context.Context, model any, conds map[string]any, values map[string]any) (int64, error)
	DeleteWhere(ctx context.Context, model any, conds map[string]any) (int64, error)
}
