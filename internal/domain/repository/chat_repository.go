package repository

import (
	"context"
	"errors"

	"fooddesk/internal/domain/entity"
)

// ErrChatNotFound is returned when a chat is not found.
var ErrChatNotFound = errors.New("chat not found")

// ChatRepository defines the standard operations for chat storage.
type ChatRepository interface {
	Watchable

	Create(ctx context.Context, chat *entity.Chat) error
	List(ctx context.Context) ([]*entity.Chat, error)
	FindByID(ctx context.Context, id int64) (*entity.Chat, error)
	Update(ctx context.Context, chat *entity.Chat) error
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// FindByOrder retrieves the chat attached to an order, if any.
	FindByOrder(ctx context.Context, orderID int64) (*entity.Chat, error)
}
