package marketplace

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CreateSchema creates every table the marketplace needs. Safe to call on
// an existing database.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*User)(nil),
		(*Category)(nil),
		(*Product)(nil),
		(*CartItem)(nil),
		(*Favorite)(nil),
		(*Message)(nil),
	}

	for _, model := range models {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "create table failed")
		}
	}

	return nil
}

// SeedCategories inserts the default catalog, skipping names that already
// exist so restarts do not duplicate rows.
func SeedCategories(ctx context.Context, repo RepositoryManager) error {
	for _, name := range DefaultCategories {
		_, err := repo.Categories().GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.IsNotFound(err) {
			return err
		}

		if _, err := repo.Categories().Create(ctx, &Category{ID: uuid.New(), Name: name}); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "seed category failed")
		}
	}

	return nil
}
