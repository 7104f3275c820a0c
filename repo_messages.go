package marketplace

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Messages interface {
	repository.Repository[*Message]

	InboxFor(ctx context.Context, recipientID uuid.UUID) ([]*Message, error)
	Send(ctx context.Context, message *Message) (*Message, error)
}

type messages struct {
	repository.Repository[*Message]
	db *bun.DB
}

var _ Messages = (*messages)(nil)

func NewMessagesRepository(db *bun.DB) Messages {
	repo := repository.NewRepository[*Message](db, repository.ModelHandlers[*Message]{
		NewRecord: func() *Message { return &Message{} },
		GetID: func(m *Message) uuid.UUID {
			if m == nil {
				return uuid.Nil
			}
			return m.ID
		},
		SetID: func(m *Message, id uuid.UUID) {
			if m != nil {
				m.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &messages{
		Repository: repo,
		db:         db,
	}
}

func (r *messages) InboxFor(ctx context.Context, recipientID uuid.UUID) ([]*Message, error) {
	var records []*Message

	err := r.db.NewSelect().
		Model(&records).
		Relation("Sender").
		Where("?TableAlias.recipient_id = ?", recipientID).
		OrderExpr("?TableAlias.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *messages) Send(ctx context.Context, message *Message) (*Message, error) {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	_, err := r.db.NewInsert().Model(message).Exec(ctx)
	if err != nil {
		return nil, err
	}

	return message, nil
}
