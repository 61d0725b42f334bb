package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskOrderCreated is the Telegram order-notification task.
const TaskOrderCreated = "order:created"

// OrderCreatedPayload identifies the order to notify about. The worker
// refetches the order so the payload stays minimal.
type OrderCreatedPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderCreatedTask builds the notification task.
func NewOrderCreatedTask(payload OrderCreatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreated, body), nil
}
