package memory

import (
	"context"

	"fooddesk/internal/domain/entity"
	"fooddesk/internal/domain/repository"
)

type chatRepository struct {
	*collection[*entity.Chat]
}

// NewChatRepository creates an empty in-memory chat repository with its id
// counter at 1.
func NewChatRepository() repository.ChatRepository {
	return &chatRepository{
		collection: newCollection(
			func(c *entity.Chat) int64 { return c.ID },
			func(c *entity.Chat, id int64) { c.ID = id },
		),
	}
}

func (r *chatRepository) Create(_ context.Context, chat *entity.Chat) error {
	r.create(chat)

	return nil
}

func (r *chatRepository) List(_ context.Context) ([]*entity.Chat, error) {
	return r.list(), nil
}

func (r *chatRepository) FindByID(_ context.Context, id int64) (*entity.Chat, error) {
	chat, ok := r.find(id)
	if !ok {
		return nil, repository.ErrChatNotFound
	}

	return chat, nil
}

func (r *chatRepository) Update(_ context.Context, chat *entity.Chat) error {
	if !r.update(chat) {
		return repository.ErrChatNotFound
	}

	return nil
}

func (r *chatRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	return r.delete(id), nil
}

func (r *chatRepository) FindByOrder(_ context.Context, orderID int64) (*entity.Chat, error) {
	chats := r.filter(func(c *entity.Chat) bool { return c.OrderID == orderID })
	if len(chats) == 0 {
		return nil, repository.ErrChatNotFound
	}

	return chats[0], nil
}
