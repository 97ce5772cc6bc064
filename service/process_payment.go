package service

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/metrics"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// PaymentProcessor drives one checkout attempt for the direct in-page flow:
// intent creation, confirmation, order commit, strictly in that order. No
// step starts before the previous one resolves and no step is retried
// automatically; a failed attempt leaves the session restartable.
type PaymentProcessor struct {
	CheckoutService *CheckoutService
	CardProvider    *CardProviderService
}

// ProcessPayment runs a single checkout attempt. The amount is captured from
// the checkout session once at entry; the same value is used for intent
// creation and order commit so a charge can never be committed against a
// different amount.
func (processor *PaymentProcessor) ProcessPayment(req *http.Request, checkoutSession *models.CheckoutResourceRest, paymentMethodData map[string]string) (*models.OrderResourceRest, ResponseType, error) {

	// An unconfigured provider client means submission is a no-op
	if !processor.CardProvider.IsConfigured() {
		return nil, NotConfigured, fmt.Errorf("card provider client is not configured")
	}

	// Only one attempt may be in flight per session
	if checkoutSession.Status == Processing.String() {
		return nil, Conflict, fmt.Errorf("checkout session [%s] already has a payment attempt in flight", checkoutSession.MetaData.ID)
	}
	if checkoutSession.Status == Paid.String() {
		return nil, Conflict, fmt.Errorf("checkout session [%s] is already paid", checkoutSession.MetaData.ID)
	}

	isExpired, err := IsExpired(*checkoutSession, &processor.CheckoutService.Config)
	if err != nil {
		return nil, Error, fmt.Errorf("error checking checkout session expiry status: [%v]", err)
	}
	if isExpired {
		if err := processor.CheckoutService.UpdateCheckoutStatus(req, *checkoutSession, Expired); err != nil {
			log.ErrorR(req, fmt.Errorf("error setting status of expired checkout session: [%v]", err))
		}
		return nil, Forbidden, fmt.Errorf("checkout session has expired")
	}

	// Capture the amount once for the whole attempt
	amount := checkoutSession.Amount

	if err := processor.CheckoutService.UpdateCheckoutStatus(req, *checkoutSession, Processing); err != nil {
		return nil, Error, err
	}

	metrics.CheckoutAttemptsTotal.Inc()

	intentResponse, err := processor.CardProvider.CreatePaymentIntent(checkoutSession)
	if err != nil {
		processor.failAttempt(req, checkoutSession)
		return nil, Error, &IntentCreationError{Err: err}
	}

	err = processor.CheckoutService.StorePaymentIntentID(checkoutSession.MetaData.ID, intentResponse.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error storing payment intent id for checkout session: [%v]", err))
	}

	confirmResponse, err := processor.CardProvider.ConfirmPaymentIntent(intentResponse.ID, intentResponse.ClientSecret, paymentMethodData)
	if err != nil {
		processor.failAttempt(req, checkoutSession)
		return nil, Error, fmt.Errorf("error confirming payment intent: [%v]", err)
	}

	// Only an exact succeeded status authorises order commit; any other
	// status, requires_action included, fails this attempt with the
	// provider's message intact
	if confirmResponse.Status != "succeeded" {
		processor.failAttempt(req, checkoutSession)
		metrics.CheckoutDeclinedTotal.Inc()
		return nil, Declined, &PaymentConfirmationError{
			PaymentIntentID: intentResponse.ID,
			Message:         confirmResponse.Message,
		}
	}

	orderResource, _, err := processor.CheckoutService.CommitOrder(checkoutSession, generateID(), intentResponse.ID, amount)
	if err != nil {
		// Money may be captured with no matching order. There is no
		// automatic compensation; the intent id is logged and counted for
		// back-office reconciliation.
		processor.failAttempt(req, checkoutSession)
		metrics.CheckoutCommitFailuresTotal.Inc()
		log.ErrorR(req, fmt.Errorf("order commit failed after successful charge: [%v]", err), log.Data{"payment_intent_id": intentResponse.ID, "checkout_id": checkoutSession.MetaData.ID})
		return nil, Error, &OrderCommitError{PaymentIntentID: intentResponse.ID, Err: err}
	}

	if err := processor.CheckoutService.UpdateCheckoutStatus(req, *checkoutSession, Paid); err != nil {
		log.ErrorR(req, fmt.Errorf("error setting checkout status to paid: [%v]", err), log.Data{"checkout_id": checkoutSession.MetaData.ID})
	}

	metrics.CheckoutSucceededTotal.Inc()
	log.InfoR(req, "Successfully processed checkout payment", log.Data{"checkout_id": checkoutSession.MetaData.ID, "order_id": orderResource.ID})

	return orderResource, Success, nil
}

// failAttempt returns the session to a restartable state after a failed step
func (processor *PaymentProcessor) failAttempt(req *http.Request, checkoutSession *models.CheckoutResourceRest) {
	if err := processor.CheckoutService.UpdateCheckoutStatus(req, *checkoutSession, Failed); err != nil {
		log.ErrorR(req, fmt.Errorf("error setting checkout status to failed: [%v]", err), log.Data{"checkout_id": checkoutSession.MetaData.ID})
	}
}
