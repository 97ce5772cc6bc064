package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/metrics"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/plutov/paypal/v4"
)

var payPalClient *paypal.Client

// GetPayPalClient returns a shared PayPal client for the configured environment
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if payPalClient != nil {
		return payPalClient, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	payPalClient = c
	return payPalClient, nil
}

// PayPalSDK is an interface for all the PayPal client methods that will be
// used in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

// PayPalService handles the hosted-page variant of checkout, where payment
// happens on an externally hosted page and the user returns via a redirect
type PayPalService struct {
	Client          PayPalSDK
	CheckoutService CheckoutService
}

// CreateExternalSession creates a provider-hosted payment session linked to
// the given checkout session and returns the URL to send the user to
func (pp *PayPalService) CreateExternalSession(req *http.Request, checkoutSession *models.CheckoutResourceRest) (string, ResponseType, error) {

	log.TraceR(req, "performing PayPal request", log.Data{"checkout_id": checkoutSession.MetaData.ID})

	id := checkoutSession.MetaData.ID
	pendingOrderID := generateID()

	order, err := pp.Client.CreateOrder(
		context.Background(),
		paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: id,
				Amount: &paypal.PurchaseUnitAmount{
					Value:    checkoutSession.Amount,
					Currency: pp.CheckoutService.Config.CurrencyCode,
				},
			},
		},
		nil,
		&paypal.ApplicationContext{
			ReturnURL: fmt.Sprintf("%s/callback/checkouts/%s?order_id=%s",
				pp.CheckoutService.Config.CheckoutAPIURL, id, pendingOrderID),
		},
	)
	if err != nil {
		return "", Error, fmt.Errorf("error creating order: [%v]", err)
	}

	if order.Status != paypal.OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", order.Status))
		return "", Error, fmt.Errorf("failed to correctly create paypal order - status is not CREATED")
	}

	var nextURL string
	for _, link := range order.Links {
		if link.Rel == "approve" {
			nextURL = link.Href
		}
	}

	err = pp.CheckoutService.StoreExternalSessionDetails(id, order.ID, pendingOrderID)
	if err != nil {
		return "", Error, fmt.Errorf("error storing external session details for checkout session: [%s]", err)
	}

	return nextURL, Success, nil
}

// CheckProviderStatus checks the status of the hosted session with PayPal
func (pp *PayPalService) CheckProviderStatus(checkoutSession *models.CheckoutResourceRest) (*models.StatusResponse, ResponseType, error) {
	res, err := pp.Client.GetOrder(
		context.Background(),
		checkoutSession.MetaData.ExternalSessionID,
	)
	if err != nil {
		return nil, Error, fmt.Errorf("error checking payment status with PayPal: [%w]", err)
	}

	return &models.StatusResponse{Status: res.Status}, Success, nil
}

// CapturePayment captures the payment in PayPal
func (pp *PayPalService) CapturePayment(orderID string) (*paypal.CaptureOrderResponse, error) {
	res, err := pp.Client.CaptureOrder(
		context.Background(),
		orderID,
		paypal.CaptureOrderRequest{},
	)
	return res, err
}

// VerifyCheckoutSession validates a returning hosted session exactly once:
// the supplied session and order identifiers must match what was stored when
// the session was created, and the provider must report the session approved,
// before the order is committed. No polling, no retry.
func (pp *PayPalService) VerifyCheckoutSession(req *http.Request, checkoutSession *models.CheckoutResourceRest, sessionID, orderID string) (*models.OrderResourceRest, ResponseType, error) {

	if sessionID == "" || orderID == "" {
		return nil, InvalidData, &SessionInvalidError{Reason: "session or order identifier not supplied"}
	}

	if checkoutSession.MetaData.ExternalSessionID != sessionID || checkoutSession.MetaData.PendingOrderID != orderID {
		return nil, InvalidData, &SessionInvalidError{Reason: "session does not match checkout"}
	}

	isExpired, err := IsExpired(*checkoutSession, &pp.CheckoutService.Config)
	if err != nil {
		return nil, Error, fmt.Errorf("error checking checkout session expiry status: [%v]", err)
	}
	if isExpired {
		if err := pp.CheckoutService.UpdateCheckoutStatus(req, *checkoutSession, Expired); err != nil {
			log.ErrorR(req, fmt.Errorf("error setting status of expired checkout session: [%v]", err))
		}
		return nil, Forbidden, &SessionInvalidError{Reason: "Session expired"}
	}

	statusResponse, _, err := pp.CheckProviderStatus(checkoutSession)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment status from paypal: [%v]", err)
	}

	if statusResponse.Status != paypal.OrderStatusApproved {
		if updateErr := pp.CheckoutService.UpdateCheckoutStatus(req, *checkoutSession, Failed); updateErr != nil {
			log.ErrorR(req, fmt.Errorf("error setting checkout status to failed: [%v]", updateErr))
		}
		return nil, Declined, &SessionInvalidError{Reason: fmt.Sprintf("paypal session status is [%s], not approved", statusResponse.Status)}
	}

	captureResponse, err := pp.CapturePayment(sessionID)
	if err != nil {
		return nil, Error, fmt.Errorf("error capturing paypal payment: [%v]", err)
	}
	log.InfoR(req, "Captured PayPal payment", log.Data{"checkout_id": checkoutSession.MetaData.ID, "capture_status": captureResponse.Status})

	orderResource, _, err := pp.CheckoutService.CommitOrder(checkoutSession, orderID, sessionID, checkoutSession.Amount)
	if err != nil {
		metrics.CheckoutCommitFailuresTotal.Inc()
		return nil, Error, &OrderCommitError{PaymentIntentID: sessionID, Err: err}
	}

	if err := pp.CheckoutService.UpdateCheckoutStatus(req, *checkoutSession, Paid); err != nil {
		log.ErrorR(req, fmt.Errorf("error setting checkout status to paid: [%v]", err), log.Data{"checkout_id": checkoutSession.MetaData.ID})
	}

	return orderResource, Success, nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
