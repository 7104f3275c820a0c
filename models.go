package marketplace

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the identity record. Email is the natural key, unique and compared
// case-insensitively. The password hash never serializes outward.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	DisplayName   string     `bun:"display_name,notnull" json:"display_name,omitempty"`
	Bio           string     `bun:"bio" json:"bio,omitempty"`
	AvatarURL     string     `bun:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Category is a static browse bucket, seeded at startup.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`
	ID            uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string    `bun:"name,notnull,unique" json:"name,omitempty"`
}

// Product is a listing. OwnerID is nullable: listings imported before
// authentication existed have no owner until an authenticated user claims
// them. Once owned, ownership is permanent.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:prd"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title,omitempty"`
	Description   string     `bun:"description" json:"description,omitempty"`
	PriceCents    int64      `bun:"price_cents,notnull" json:"price_cents"`
	Size          string     `bun:"size" json:"size,omitempty"`
	Condition     string     `bun:"condition" json:"condition,omitempty"`
	ImageURL      string     `bun:"image_url" json:"image_url,omitempty"`
	CategoryID    *uuid.UUID `bun:"category_id,nullzero,type:uuid" json:"category_id,omitempty"`
	Category      *Category  `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	OwnerID       *uuid.UUID `bun:"owner_id,nullzero,type:uuid" json:"owner_id,omitempty"`
	Owner         *User      `bun:"rel:belongs-to,join:owner_id=id" json:"owner,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// CartItem ties a user to a product with a quantity. One row per
// (user, product); re-adding merges quantities.
type CartItem struct {
	bun.BaseModel `bun:"table:cart_items,alias:crt"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,type:uuid,unique:crt_user_product" json:"user_id,omitempty"`
	ProductID     uuid.UUID  `bun:"product_id,notnull,type:uuid,unique:crt_user_product" json:"product_id,omitempty"`
	Product       *Product   `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
	Quantity      int        `bun:"quantity,notnull" json:"quantity"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Favorite marks a product as saved by a user. Adding twice is a no-op.
type Favorite struct {
	bun.BaseModel `bun:"table:favorites,alias:fav"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,type:uuid,unique:fav_user_product" json:"user_id,omitempty"`
	ProductID     uuid.UUID  `bun:"product_id,notnull,type:uuid,unique:fav_user_product" json:"product_id,omitempty"`
	Product       *Product   `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Message is a note from one user to another about an item. The inbox is
// recipient-scoped, newest first.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:msg"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	SenderID      uuid.UUID  `bun:"sender_id,notnull,type:uuid" json:"sender_id,omitempty"`
	Sender        *User      `bun:"rel:belongs-to,join:sender_id=id" json:"sender,omitempty"`
	RecipientID   uuid.UUID  `bun:"recipient_id,notnull,type:uuid" json:"recipient_id,omitempty"`
	Recipient     *User      `bun:"rel:belongs-to,join:recipient_id=id" json:"recipient,omitempty"`
	Content       string     `bun:"content,notnull" json:"content,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// DefaultCategories seeds the browse buckets the storefront expects.
var DefaultCategories = []string{
	"Tops",
	"Bottoms",
	"Dresses",
	"Outerwear",
	"Shoes",
	"Accessories",
}
