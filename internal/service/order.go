package service

import (
	"encoding/json"

	"artemon-api/internal/domain"
)

type OrderService struct {
	orders domain.OrderRepository
}

func NewOrderService(orders domain.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// Place 模拟结算（货到付款），items 以 JSON 快照落库
func (s *OrderService) Place(email string, total float64, items any) (*domain.Order, error) {
	snapshot, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	o := &domain.Order{
		UserEmail: email,
		Total:     total,
		Status:    domain.OrderPending,
		Items:     string(snapshot),
	}
	if err := s.orders.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListAll() ([]domain.Order, error) { return s.orders.ListAll() }

func (s *OrderService) ListByUser(email string) ([]domain.Order, error) {
	return s.orders.ListByUser(email)
}

func (s *OrderService) SetStatus(id int64, status string) error {
	switch status {
	case domain.OrderPending, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled:
	default:
		return domain.ErrInvalidOrderStatus
	}
	if err := s.orders.UpdateStatus(id, status); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *OrderService) Cancel(id int64) error {
	ok, err := s.orders.CancelPending(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrOrderNotCancellable
	}
	return nil
}
