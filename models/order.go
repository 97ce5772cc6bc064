package models

import "time"

// OrderResourceRest is the materialised order returned once payment has been
// confirmed. The amount always equals the amount the payment intent was
// created with.
type OrderResourceRest struct {
	ID              string    `json:"id"`
	CheckoutID      string    `json:"checkout_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	Amount          string    `json:"amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// OrderResourceDB contains all order details to be stored in the DB. An order
// is only ever written after a successful payment confirmation or a verified
// checkout session.
type OrderResourceDB struct {
	ID              string                 `bson:"_id"`
	CheckoutID      string                 `bson:"checkout_id"`
	PaymentIntentID string                 `bson:"payment_intent_id"`
	Amount          string                 `bson:"amount"`
	Status          string                 `bson:"status"`
	CreatedAt       time.Time              `bson:"created_at,omitempty"`
	Data            CheckoutResourceDataDB `bson:"data"`
}
