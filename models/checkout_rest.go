package models

import "time"

// IncomingCheckoutResourceRequest is the order draft received in the body of
// the incoming request. The draft is assembled by the cart and is immutable
// once submitted.
type IncomingCheckoutResourceRequest struct {
	RedirectURI     string             `json:"redirect_uri" validate:"required"`
	Reference       string             `json:"reference"`
	State           string             `json:"state"`
	Amount          string             `json:"amount"       validate:"required"`
	DeliveryFee     string             `json:"delivery_fee"`
	LineItems       []LineItemRest     `json:"items"        validate:"required,min=1,dive"`
	CustomerAddress CustomerAddressRest `json:"customer_address"`
}

// CheckoutResourceRest is public facing checkout details to be returned in the response
type CheckoutResourceRest struct {
	Amount          string                       `json:"amount"`
	DeliveryFee     string                       `json:"delivery_fee,omitempty"`
	CompletedAt     time.Time                    `json:"completed_at,omitempty"`
	CreatedAt       time.Time                    `json:"created_at,omitempty"`
	CreatedBy       CreatedByRest                `json:"created_by"`
	CustomerAddress CustomerAddressRest          `json:"customer_address"`
	Description     string                       `json:"description"`
	Links           CheckoutLinksRest            `json:"links"`
	PaymentMethod   string                       `json:"payment_method,omitempty"`
	Reference       string                       `json:"reference,omitempty"`
	Status          string                       `json:"status"`
	LineItems       []LineItemRest               `json:"items"`
	MetaData        CheckoutResourceMetaDataRest `json:"-"`
}

// CheckoutResourceMetaDataRest is checkout details held outside the data
// block, not to be served in responses
type CheckoutResourceMetaDataRest struct {
	ID                string `json:"-"`
	RedirectURI       string `json:"-"`
	State             string `json:"-"`
	ExternalSessionID string `json:"-"`
	PaymentIntentID   string `json:"-"`
	PendingOrderID    string `json:"-"`
}

// LineItemRest contains the details of an individual item in the order draft
type LineItemRest struct {
	Amount      string            `json:"amount"      validate:"required"`
	Description string            `json:"description" validate:"required"`
	ItemCode    string            `json:"item_code"   validate:"required"`
	Quantity    int               `json:"quantity"    validate:"required,min=1"`
	Links       LineItemLinksRest `json:"links"`
}

// LineItemLinksRest is a set of URLs related to an item, including the
// catalogue resource it was priced from
type LineItemLinksRest struct {
	Resource string `json:"resource"`
	Self     string `json:"self"`
}

// CustomerAddressRest is the delivery address supplied with the order draft
type CustomerAddressRest struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// CreatedByRest is the user who is creating the checkout session
type CreatedByRest struct {
	Email    string `json:"email"`
	Forename string `json:"forename"`
	ID       string `json:"id"`
	Surname  string `json:"surname"`
}

// CheckoutLinksRest is a set of URLs related to the resource, including self
type CheckoutLinksRest struct {
	Journey  string `json:"journey"`
	Self     string `json:"self" validate:"required"`
}

// ExternalPaymentJourney returns the URL required to access the external
// payment provider session
type ExternalPaymentJourney struct {
	NextURL string `json:"next_url"`
}

// IncomingConfirmPaymentRequest is the body of a direct payment submission.
// PaymentMethodData is the opaque token collected by the payment widget in
// the web tier and is passed through to the provider untouched.
type IncomingConfirmPaymentRequest struct {
	PaymentMethodData map[string]string `json:"payment_method_data" validate:"required"`
}

// IncomingVerifySessionRequest is the body of a redirect-flow verification request
type IncomingVerifySessionRequest struct {
	SessionID string `json:"session_id"`
	OrderID   string `json:"order_id"`
}

// VerifySessionResponse reports the outcome of a redirect-flow verification
type VerifySessionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	OrderID string `json:"order_id,omitempty"`
}

// StatusResponse is the generic provider status response
type StatusResponse struct {
	Status string
}

// RedirectParams are the query params appended when redirecting the user
// back to the storefront web
type RedirectParams struct {
	State   string
	Ref     string
	Status  string
	Message string
}
