package service

import "fmt"

// IntentCreationError means the provider refused to open a charge, or the
// response carried no client secret. No confirmation or commit follows it.
type IntentCreationError struct {
	Err error
}

func (e *IntentCreationError) Error() string {
	return fmt.Sprintf("error creating payment intent: [%v]", e.Err)
}

func (e *IntentCreationError) Unwrap() error {
	return e.Err
}

// PaymentConfirmationError means the provider declined the payment or its
// validation failed. Message is the provider's human-readable reason and is
// surfaced to the user verbatim.
type PaymentConfirmationError struct {
	PaymentIntentID string
	Message         string
}

func (e *PaymentConfirmationError) Error() string {
	return e.Message
}

// OrderCommitError means payment was confirmed but order persistence failed.
// Money may be captured with no matching order, so the payment intent id is
// carried for reconciliation.
type OrderCommitError struct {
	PaymentIntentID string
	Err             error
}

func (e *OrderCommitError) Error() string {
	return fmt.Sprintf("error committing order for payment intent [%s]: [%v]", e.PaymentIntentID, e.Err)
}

func (e *OrderCommitError) Unwrap() error {
	return e.Err
}

// SessionInvalidError means the redirect return carried missing or
// unverifiable session parameters
type SessionInvalidError struct {
	Reason string
}

func (e *SessionInvalidError) Error() string {
	return e.Reason
}
