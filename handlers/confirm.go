package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/companieshouse/checkout.api.ch.gov.uk/utils"
)

// HandleConfirmPayment runs the direct payment flow for a checkout session:
// creates a payment intent with the card provider, confirms it with the
// payment method data collected by the web tier and commits the order
func HandleConfirmPayment(w http.ResponseWriter, req *http.Request) {
	// get checkout resource from context, put there by CheckoutAuthenticationInterceptor
	checkoutSession, ok := req.Context().Value(helpers.ContextKeyCheckoutSession).(*models.CheckoutResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid CheckoutResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingConfirmPaymentRequest models.IncomingConfirmPaymentRequest
	err := requestDecoder.Decode(&incomingConfirmPaymentRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(incomingConfirmPaymentRequest.PaymentMethodData) == 0 {
		log.ErrorR(req, fmt.Errorf("payment method data not supplied for resource [%s]", checkoutSession.MetaData.ID))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderResource, responseType, err := paymentProcessor.ProcessPayment(req, checkoutSession, incomingConfirmPaymentRequest.PaymentMethodData)

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error processing payment: [%v]", err), log.Data{"service_response_type": responseType.String()})

		switch responseType {
		case service.NotConfigured:
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		case service.Conflict:
			w.WriteHeader(http.StatusConflict)
			return
		case service.Forbidden:
			w.WriteHeader(http.StatusForbidden)
			return
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
			return
		case service.Declined:
			// the provider decline message is user displayable and must be
			// passed through verbatim
			var confirmationError *service.PaymentConfirmationError
			if errors.As(err, &confirmationError) {
				m := utils.NewMessageResponse(confirmationError.Message)
				utils.WriteJSONWithStatus(w, req, m, http.StatusPaymentRequired)
				return
			}
			w.WriteHeader(http.StatusPaymentRequired)
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	// payment is confirmed and the order committed, notify downstream consumers
	err = handleOrderMessage(orderResource.ID, checkoutSession.MetaData.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing order kafka message: [%v]", err))
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(orderResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successfully processed payment for checkout session", log.Data{"checkout_id": checkoutSession.MetaData.ID, "order_id": orderResource.ID})
}
