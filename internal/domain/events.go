package domain

import "context"

const (
	EventTransactionCreated = "transaction_created"
	EventTransferCompleted  = "transfer_completed"
	EventTransferReceived   = "transfer_received"
	EventLoanStatusUpdated  = "loan_status_updated"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// EventPublisher is the outbound notification port. Publishing happens
// after commit and is fire-and-forget: delivery failure never rolls back
// the operation that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event Event) error
}

func UserTopic(userID string) string {
	return "banking.user." + userID
}

func AccountTopic(accountID string) string {
	return "banking.account." + accountID
}
