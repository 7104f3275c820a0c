package marketplace

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Favorites interface {
	repository.Repository[*Favorite]

	ByUser(ctx context.Context, userID uuid.UUID) ([]*Favorite, error)
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, productID uuid.UUID) (*Favorite, error)
	RemoveByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error
}

type favorites struct {
	repository.Repository[*Favorite]
	db *bun.DB
}

var _ Favorites = (*favorites)(nil)

func NewFavoritesRepository(db *bun.DB) Favorites {
	repo := repository.NewRepository[*Favorite](db, repository.ModelHandlers[*Favorite]{
		NewRecord: func() *Favorite { return &Favorite{} },
		GetID: func(f *Favorite) uuid.UUID {
			if f == nil {
				return uuid.Nil
			}
			return f.ID
		},
		SetID: func(f *Favorite, id uuid.UUID) {
			if f != nil {
				f.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &favorites{
		Repository: repo,
		db:         db,
	}
}

func (r *favorites) ByUser(ctx context.Context, userID uuid.UUID) ([]*Favorite, error) {
	var records []*Favorite

	err := r.db.NewSelect().
		Model(&records).
		Relation("Product").
		Relation("Product.Category").
		Where("?TableAlias.user_id = ?", userID).
		OrderExpr("?TableAlias.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *favorites) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	return r.db.NewSelect().
		Model((*Favorite)(nil)).
		Where("?TableAlias.user_id = ?", userID).
		Where("?TableAlias.product_id = ?", productID).
		Exists(ctx)
}

func (r *favorites) Add(ctx context.Context, userID, productID uuid.UUID) (*Favorite, error) {
	record := &Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
	}

	_, err := r.db.NewInsert().Model(record).Exec(ctx)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *favorites) RemoveByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*Favorite)(nil)).
		Where("user_id = ?", userID).
		Where("product_id = ?", productID).
		Exec(ctx)
	return err
}
