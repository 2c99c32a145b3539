package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fooddesk/config"
	"fooddesk/internal/domain/entity"
	domainerrors "fooddesk/internal/domain/errors"
	"fooddesk/internal/domain/repository"
	"fooddesk/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface. It is the only place
// derived order state is computed: the total price, the creation timestamp
// and the chat attachment all flow through here.
type orderService struct {
	orderRepo      repository.OrderRepository
	chatRepo       repository.ChatRepository
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	driverRepo     repository.DriverRepository
	dishRepo       repository.DishRepository
	cfg            *config.Config
	logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	driverRepo repository.DriverRepository,
	dishRepo repository.DishRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:      orderRepo,
		chatRepo:       chatRepo,
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		driverRepo:     driverRepo,
		dishRepo:       dishRepo,
		cfg:            cfg,
		logger:         logger,
	}
}

// PlaceOrder validates the input, derives the total price and creation
// timestamp, attaches a chat when a transcript is supplied, and stores the
// order. Validation runs to completion before anything is mutated.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.OrderInput) (*entity.Order, error) {
	total, err := srv.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.StatusPending
	}

	order := &entity.Order{
		BuyerID:      input.BuyerID,
		RestaurantID: input.RestaurantID,
		DriverID:     input.DriverID,
		Status:       status,
		DishIDs:      append([]int64(nil), input.DishIDs...),
		TotalPrice:   total,
		CreatedAt:    time.Now(),
	}

	if strings.TrimSpace(input.ChatMessages) != "" {
		chat := &entity.Chat{Messages: input.ChatMessages}
		if err := srv.chatRepo.Create(ctx, chat); err != nil {
			return nil, errors.Wrap(err, "failed to create chat")
		}
		order.ChatID = chat.ID

		if err := srv.orderRepo.Create(ctx, order); err != nil {
			return nil, errors.Wrap(err, "failed to create order")
		}

		// The back-reference needs the order id, which only exists now.
		chat.OrderID = order.ID
		if err := srv.chatRepo.Update(ctx, chat); err != nil {
			return nil, errors.Wrap(err, "failed to link chat to order")
		}
	} else if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.logger.Info("Order placed",
		"orderID", order.ID,
		"restaurantID", order.RestaurantID,
		"items", len(order.DishIDs),
		"total", order.TotalPrice,
	)

	return order, nil
}

// ListOrders returns every order.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return srv.orderRepo.List(ctx)
}

// GetOrder retrieves a single order.
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// UpdateOrder replaces an order wholesale while preserving its creation
// timestamp, recomputing the total from the new line items, and applying the
// chat attachment policy: create on first non-blank transcript, overwrite
// afterwards, never a second chat.
func (srv *orderService) UpdateOrder(ctx context.Context, id int64, input *usecase.OrderInput) (*entity.Order, error) {
	existing, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	total, err := srv.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = existing.Status
	}
	if existing.Status.IsTerminal() && status != existing.Status {
		return nil, errors.Wrapf(domainerrors.ErrTerminalStatus,
			"cannot move order %d from %s to %s", id, existing.Status, status)
	}

	order := &entity.Order{
		ID:           id,
		BuyerID:      input.BuyerID,
		RestaurantID: input.RestaurantID,
		DriverID:     input.DriverID,
		Status:       status,
		DishIDs:      append([]int64(nil), input.DishIDs...),
		TotalPrice:   total,
		CreatedAt:    existing.CreatedAt,
		ChatID:       existing.ChatID,
	}

	switch {
	case order.ChatID == 0 && strings.TrimSpace(input.ChatMessages) != "":
		chat := &entity.Chat{OrderID: id, Messages: input.ChatMessages}
		if err := srv.chatRepo.Create(ctx, chat); err != nil {
			return nil, errors.Wrap(err, "failed to create chat")
		}
		order.ChatID = chat.ID
	case order.ChatID != 0:
		chat, err := srv.chatRepo.FindByID(ctx, order.ChatID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find chat")
		}
		chat.Messages = input.ChatMessages
		if err := srv.chatRepo.Update(ctx, chat); err != nil {
			return nil, errors.Wrap(err, "failed to update chat")
		}
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.logger.Info("Order updated", "orderID", id, "status", order.Status, "total", order.TotalPrice)

	return order, nil
}

// DeleteOrder removes the order together with its attached chat. Deleting a
// missing id reports false.
func (srv *orderService) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find order")
	}

	deleted, err := srv.orderRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete order")
	}
	if deleted && order.HasChat() {
		if _, err := srv.chatRepo.DeleteByID(ctx, order.ChatID); err != nil {
			return true, errors.Wrap(err, "failed to delete chat")
		}
	}
	if deleted {
		srv.logger.Info("Order deleted", "orderID", id)
	}

	return deleted, nil
}

// ChatOf returns the chat attached to the order.
func (srv *orderService) ChatOf(ctx context.Context, orderID int64) (*entity.Chat, error) {
	chat, err := srv.chatRepo.FindByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order has no chat")
		}

		return nil, errors.Wrap(err, "failed to find chat")
	}

	return chat, nil
}

// resolve checks every reference the input carries and returns the total
// price of the line items. Nothing is mutated here, so a failed check leaves
// the store exactly as it was.
func (srv *orderService) resolve(ctx context.Context, input *usecase.OrderInput) (float64, error) {
	if err := checkInput(input); err != nil {
		return 0, err
	}
	if input.Status != "" && !input.Status.IsValid() {
		return 0, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", input.Status)
	}

	buyer, err := srv.userRepo.FindByID(ctx, input.BuyerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, errors.Wrap(domainerrors.ErrNotFound, "order buyer not found")
		}

		return 0, errors.Wrap(err, "failed to find buyer")
	}
	if buyer.Admin {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed, "order buyer must not be an admin")
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, input.RestaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return 0, errors.Wrap(domainerrors.ErrNotFound, "order restaurant not found")
		}

		return 0, errors.Wrap(err, "failed to find restaurant")
	}

	if input.DriverID != 0 {
		if _, err := srv.driverRepo.FindByID(ctx, input.DriverID); err != nil {
			if errors.Is(err, repository.ErrDriverNotFound) {
				return 0, errors.Wrap(domainerrors.ErrNotFound, "order driver not found")
			}

			return 0, errors.Wrap(err, "failed to find driver")
		}
	}

	var total float64
	for _, dishID := range input.DishIDs {
		dish, err := srv.dishRepo.FindByID(ctx, dishID)
		if err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return 0, errors.Wrapf(domainerrors.ErrNotFound, "order dish %d not found", dishID)
			}

			return 0, errors.Wrap(err, "failed to find dish")
		}
		if !srv.cfg.Store.AllowForeignDishes && dish.RestaurantID != input.RestaurantID {
			return 0, errors.Wrapf(domainerrors.ErrForeignDish,
				"dish %d belongs to restaurant %d, order is for restaurant %d",
				dishID, dish.RestaurantID, input.RestaurantID)
		}
		total += dish.Price
	}

	return total, nil
}
