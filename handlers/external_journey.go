package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
)

// HandleCreateExternalPaymentJourney creates a hosted payment session with the
// external provider and returns the URL the web tier should redirect the user to
func HandleCreateExternalPaymentJourney(w http.ResponseWriter, req *http.Request) {
	// get checkout resource from context, put there by CheckoutAuthenticationInterceptor
	checkoutSession, ok := req.Context().Value(helpers.ContextKeyCheckoutSession).(*models.CheckoutResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid CheckoutResourceRest in request context"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Check if the checkout session is expired
	isExpired, err := service.IsExpired(*checkoutSession, &checkoutService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error checking checkout session expiry status: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if isExpired {
		log.ErrorR(req, fmt.Errorf("checkout session has expired"))
		w.WriteHeader(http.StatusForbidden)
		return
	}

	providerService, err := getExternalProviderService(checkoutService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating external provider service: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	nextURL, responseType, err := providerService.CreateExternalSession(req, checkoutSession)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating external payment journey: [%v]", err), log.Data{"service_response_type": responseType.String()})
		switch responseType {
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	externalPaymentJourney := models.ExternalPaymentJourney{NextURL: nextURL}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(externalPaymentJourney)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %s", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successfully started hosted session with external provider", log.Data{"checkout_id": checkoutSession.MetaData.ID})
}
