package models

import "time"

// CheckoutResourceDB contains all checkout details to be stored in the DB
type CheckoutResourceDB struct {
	ID                string                 `bson:"_id"`
	RedirectURI       string                 `bson:"redirect_uri"`
	State             string                 `bson:"state"`
	ExternalSessionID string                 `bson:"external_session_id"`
	PaymentIntentID   string                 `bson:"payment_intent_id"`
	PendingOrderID    string                 `bson:"pending_order_id"`
	Data              CheckoutResourceDataDB `bson:"data"`
}

// CheckoutResourceDataDB is the data block of the checkout resource stored in
// the DB
type CheckoutResourceDataDB struct {
	Amount          string            `bson:"amount"`
	DeliveryFee     string            `bson:"delivery_fee,omitempty"`
	CompletedAt     time.Time         `bson:"completed_at,omitempty"`
	CreatedAt       time.Time         `bson:"created_at,omitempty"`
	CreatedBy       CreatedByDB       `bson:"created_by"`
	CustomerAddress CustomerAddressDB `bson:"customer_address"`
	Description     string            `bson:"description"`
	Links           CheckoutLinksDB   `bson:"links"`
	PaymentMethod   string            `bson:"payment_method"`
	Reference       string            `bson:"reference,omitempty"`
	Status          string            `bson:"status"`
	LineItems       []LineItemDB      `bson:"items"`
}

// LineItemDB contains the details of an individual item stored in the DB
type LineItemDB struct {
	Amount      string          `bson:"amount"`
	Description string          `bson:"description"`
	ItemCode    string          `bson:"item_code"`
	Quantity    int             `bson:"quantity"`
	Links       LineItemLinksDB `bson:"links"`
}

// LineItemLinksDB is a set of URLs related to an item
type LineItemLinksDB struct {
	Resource string `bson:"resource"`
	Self     string `bson:"self"`
}

// CustomerAddressDB is the delivery address stored in the DB
type CustomerAddressDB struct {
	AddressLine1 string `bson:"address_line_1"`
	AddressLine2 string `bson:"address_line_2,omitempty"`
	Locality     string `bson:"locality"`
	PostalCode   string `bson:"postal_code"`
	Country      string `bson:"country"`
}

// CreatedByDB is the user who created the checkout session
type CreatedByDB struct {
	Email    string `bson:"email"`
	Forename string `bson:"forename"`
	ID       string `bson:"id"`
	Surname  string `bson:"surname"`
}

// CheckoutLinksDB is a set of URLs related to the resource, including self
type CheckoutLinksDB struct {
	Journey string `bson:"journey"`
	Self    string `bson:"self"`
}
