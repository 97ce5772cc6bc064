package models

// OutgoingIntentRequest is the request sent to the card provider to reserve a
// charge for a checkout. Amount is in minor currency units.
type OutgoingIntentRequest struct {
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
}

// IncomingIntentResponse is the response expected back from the card provider
// after an intent has been successfully created
type IncomingIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

// OutgoingConfirmRequest submits the collected payment-method data against an
// intent
type OutgoingConfirmRequest struct {
	ClientSecret      string            `json:"client_secret"`
	PaymentMethodData map[string]string `json:"payment_method_data"`
}

// IncomingConfirmResponse is the terminal or error status returned by the
// card provider for one confirmation attempt. Message carries the provider's
// human-readable decline reason and must be surfaced verbatim.
type IncomingConfirmResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
