package marketplace

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type CartItems interface {
	repository.Repository[*CartItem]

	ByUser(ctx context.Context, userID uuid.UUID) ([]*CartItem, error)
	ByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*CartItem, error)
	Save(ctx context.Context, item *CartItem) (*CartItem, error)
	RemoveByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error
}

type cartItems struct {
	repository.Repository[*CartItem]
	db *bun.DB
}

var _ CartItems = (*cartItems)(nil)

func NewCartItemsRepository(db *bun.DB) CartItems {
	repo := repository.NewRepository[*CartItem](db, repository.ModelHandlers[*CartItem]{
		NewRecord: func() *CartItem { return &CartItem{} },
		GetID: func(c *CartItem) uuid.UUID {
			if c == nil {
				return uuid.Nil
			}
			return c.ID
		},
		SetID: func(c *CartItem, id uuid.UUID) {
			if c != nil {
				c.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &cartItems{
		Repository: repo,
		db:         db,
	}
}

func (r *cartItems) ByUser(ctx context.Context, userID uuid.UUID) ([]*CartItem, error) {
	var records []*CartItem

	err := r.db.NewSelect().
		Model(&records).
		Relation("Product").
		Relation("Product.Category").
		Where("?TableAlias.user_id = ?", userID).
		OrderExpr("?TableAlias.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *cartItems) ByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*CartItem, error) {
	record := &CartItem{}

	err := r.db.NewSelect().
		Model(record).
		Relation("Product").
		Where("?TableAlias.user_id = ?", userID).
		Where("?TableAlias.product_id = ?", productID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	return record, nil
}

func (r *cartItems) Save(ctx context.Context, item *CartItem) (*CartItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
		_, err := r.db.NewInsert().Model(item).Exec(ctx)
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	_, err := r.db.NewUpdate().
		Model(item).
		Column("quantity").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *cartItems) RemoveByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*CartItem)(nil)).
		Where("user_id = ?", userID).
		Where("product_id = ?", productID).
		Exec(ctx)
	return err
}
