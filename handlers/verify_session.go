package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/companieshouse/checkout.api.ch.gov.uk/utils"
)

// HandleVerifyCheckoutSession verifies a returning hosted session on behalf
// of the web tier and commits the order when the provider reports it paid
func HandleVerifyCheckoutSession(w http.ResponseWriter, req *http.Request) {
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
	var incomingVerifySessionRequest models.IncomingVerifySessionRequest
	err := requestDecoder.Decode(&incomingVerifySessionRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Reject an incomplete request up front so that no provider call is made
	if incomingVerifySessionRequest.SessionID == "" || incomingVerifySessionRequest.OrderID == "" {
		log.ErrorR(req, fmt.Errorf("session or order identifier not supplied for resource [%s]", checkoutSession.MetaData.ID))
		response := models.VerifySessionResponse{Success: false, Message: "invalid session"}
		utils.WriteJSONWithStatus(w, req, response, http.StatusBadRequest)
		return
	}

	providerService, err := getExternalProviderService(checkoutService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating external provider service: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderResource, responseType, err := providerService.VerifyCheckoutSession(req, checkoutSession, incomingVerifySessionRequest.SessionID, incomingVerifySessionRequest.OrderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error verifying checkout session: [%v]", err), log.Data{"service_response_type": responseType.String()})

		response := models.VerifySessionResponse{
			Success: false,
			Message: verificationFailureMessage(err),
		}

		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, response, http.StatusBadRequest)
		case service.Forbidden:
			utils.WriteJSONWithStatus(w, req, response, http.StatusForbidden)
		case service.Declined:
			utils.WriteJSONWithStatus(w, req, response, http.StatusPaymentRequired)
		default:
			utils.WriteJSONWithStatus(w, req, response, http.StatusInternalServerError)
		}
		return
	}

	err = handleOrderMessage(orderResource.ID, checkoutSession.MetaData.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing order kafka message: [%v]", err))
	}

	response := models.VerifySessionResponse{
		Success: true,
		OrderID: orderResource.ID,
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successfully verified checkout session", log.Data{"checkout_id": checkoutSession.MetaData.ID, "order_id": orderResource.ID})
}
