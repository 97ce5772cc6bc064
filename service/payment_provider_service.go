package service

import (
	"net/http"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/plutov/paypal/v4"
)

// PaymentProviderService is an interface for all the requests to external
// hosted payment providers
type PaymentProviderService interface {
	CreateExternalSession(req *http.Request, checkoutSession *models.CheckoutResourceRest) (string, ResponseType, error)
	CheckProviderStatus(checkoutSession *models.CheckoutResourceRest) (*models.StatusResponse, ResponseType, error)
	VerifyCheckoutSession(req *http.Request, checkoutSession *models.CheckoutResourceRest, sessionID, orderID string) (*models.OrderResourceRest, ResponseType, error)
	CapturePayment(orderID string) (*paypal.CaptureOrderResponse, error)
}
