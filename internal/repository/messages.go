package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Toylycker/Travel-Agency/internal/entity"
)

// MessagesRepository stores contact form submissions.
type MessagesRepository interface {
	Insert(ctx context.Context, msg *entity.ReceivedMessage) error
}

// PGXMessagesRepository implements MessagesRepository using pgx.
type PGXMessagesRepository struct {
	pool pgxPool
}

// NewPGXMessagesRepository wires a pgx backed repository.
func NewPGXMessagesRepository(pool *pgxpool.Pool) *PGXMessagesRepository {
	return &PGXMessagesRepository{pool: pool}
}

// Insert stores msg and fills in its id and creation time.
func (r *PGXMessagesRepository) Insert(ctx context.Context, msg *entity.ReceivedMessage) error {
	if msg == nil {
		return fmt.Errorf("message payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO received_messages (email, message, phone)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `, msg.Email, msg.Message, msg.Phone)
	if err := row.Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return fmt.Errorf("insert received message: %w", err)
	}
	return nil
}
