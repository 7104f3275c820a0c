package marketplace

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Products interface {
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	ListAll(ctx context.Context) ([]*Product, error)
	ByCategoryName(ctx context.Context, name string) ([]*Product, error)
	Save(ctx context.Context, product *Product) (*Product, error)
	SetOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	Remove(ctx context.Context, id uuid.UUID) error
}

type products struct {
	repository.Repository[*Product]
	db *bun.DB
}

var _ Products = (*products)(nil)

func NewProductsRepository(db *bun.DB) Products {
	repo := repository.NewRepository[*Product](db, repository.ModelHandlers[*Product]{
		NewRecord: func() *Product { return &Product{} },
		GetID: func(p *Product) uuid.UUID {
			if p == nil {
				return uuid.Nil
			}
			return p.ID
		},
		SetID: func(p *Product, id uuid.UUID) {
			if p != nil {
				p.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &products{
		Repository: repo,
		db:         db,
	}
}

func (r *products) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	record := &Product{}

	err := r.db.NewSelect().
		Model(record).
		Relation("Category").
		Relation("Owner").
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return record, nil
}

func (r *products) ListAll(ctx context.Context) ([]*Product, error) {
	var records []*Product

	err := r.db.NewSelect().
		Model(&records).
		Relation("Category").
		Relation("Owner").
		OrderExpr("?TableAlias.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *products) ByCategoryName(ctx context.Context, name string) ([]*Product, error) {
	var records []*Product

	err := r.db.NewSelect().
		Model(&records).
		Relation("Category").
		Relation("Owner").
		Join("JOIN categories AS cat ON cat.id = ?TableAlias.category_id").
		Where("cat.name = ?", name).
		OrderExpr("?TableAlias.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Save inserts a new listing or updates an existing one. Ownership never
// changes through here; SetOwner is the only write path for owner_id after
// the initial insert.
func (r *products) Save(ctx context.Context, product *Product) (*Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
		_, err := r.db.NewInsert().Model(product).Exec(ctx)
		if err != nil {
			return nil, err
		}
		return r.Get(ctx, product.ID)
	}

	_, err := r.db.NewUpdate().
		Model(product).
		Column("title", "description", "price_cents", "size", "condition", "image_url", "category_id").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, product.ID)
}

// SetOwner persists the one-time claim transition of an orphaned listing.
// Concurrent claimants race with last-writer-wins; callers must not assume
// exclusivity.
func (r *products) SetOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*Product)(nil)).
		Set("owner_id = ?", ownerID).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *products) Remove(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*Product)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
