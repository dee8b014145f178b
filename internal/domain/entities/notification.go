package entities

import "time"

// Notification is emitted as a side effect of state-changing operations
// (order created, budget generated) for the presentation layer to surface.
//
// Storage model (DynamoDB):
//   - PK: id
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
