package marketplace

import (
	"context"
	"database/sql"
	"errors"
	"log"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Validator reports whether a component is fully wired.
type Validator interface {
	Validate() error
	MustValidate()
}

// TransactionManager runs a unit of work inside a database transaction.
type TransactionManager interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
}

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	Validator
	TransactionManager
	Users() Users
	Products() Products
	Categories() Categories
	CartItems() CartItems
	Favorites() Favorites
	Messages() Messages
}

type Categories interface {
	ListAll(ctx context.Context) ([]*Category, error)
	Get(ctx context.Context, id uuid.UUID) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, record *Category, criteria ...repository.InsertCriteria) (*Category, error)
}

type categories struct {
	repository.Repository[*Category]
	db *bun.DB
}

var _ Categories = (*categories)(nil)

func NewCategoriesRepository(db *bun.DB) Categories {
	repo := repository.NewRepository[*Category](db, repository.ModelHandlers[*Category]{
		NewRecord: func() *Category { return &Category{} },
		GetID: func(c *Category) uuid.UUID {
			if c == nil {
				return uuid.Nil
			}
			return c.ID
		},
		SetID: func(c *Category, id uuid.UUID) {
			if c != nil {
				c.ID = id
			}
		},
		GetIdentifier: func() string {
			return "name"
		},
	})

	return &categories{
		Repository: repo,
		db:         db,
	}
}

func (r *categories) ListAll(ctx context.Context) ([]*Category, error) {
	var records []*Category

	err := r.db.NewSelect().
		Model(&records).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *categories) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	record := &Category{}

	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return record, nil
}

func (r *categories) GetByName(ctx context.Context, name string) (*Category, error) {
	record := &Category{}

	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.name = ?", name).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return record, nil
}

type mngr struct {
	db         *bun.DB
	users      Users
	products   Products
	categories Categories
	cartItems  CartItems
	favorites  Favorites
	messages   Messages
}

func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:         db,
		users:      NewUsersRepository(db),
		products:   NewProductsRepository(db),
		categories: NewCategoriesRepository(db),
		cartItems:  NewCartItemsRepository(db),
		favorites:  NewFavoritesRepository(db),
		messages:   NewMessagesRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.products == nil {
		return errors.New("repository products should be initialized")
	}

	if m.categories == nil {
		return errors.New("repository categories should be initialized")
	}

	if m.cartItems == nil {
		return errors.New("repository cartItems should be initialized")
	}

	if m.favorites == nil {
		return errors.New("repository favorites should be initialized")
	}

	if m.messages == nil {
		return errors.New("repository messages should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() Users           { return m.users }
func (m mngr) Products() Products     { return m.products }
func (m mngr) Categories() Categories { return m.categories }
func (m mngr) CartItems() CartItems   { return m.cartItems }
func (m mngr) Favorites() Favorites   { return m.favorites }
func (m mngr) Messages() Messages     { return m.messages }
