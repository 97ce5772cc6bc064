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

// HandleCreateCheckoutSession creates a checkout session and returns a journey URL for the calling app to redirect to
func HandleCreateCheckoutSession(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingCheckoutResourceRequest models.IncomingCheckoutResourceRequest
	err := requestDecoder.Decode(&incomingCheckoutResourceRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// once we've read and decoded request body call the checkout service to handle internal business logic
	checkoutResource, responseType, err := checkoutService.CreateCheckoutSession(req, incomingCheckoutResourceRequest)

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating checkout resource: [%v]", err))
		switch responseType {
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	// response body contains fully decorated REST model
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", checkoutResource.Links.Journey)
	w.WriteHeader(http.StatusCreated)

	err = json.NewEncoder(w).Encode(checkoutResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request for new checkout resource", log.Data{"checkout_id": checkoutResource.MetaData.ID, "status": http.StatusCreated})
}

// HandleGetCheckoutSession retrieves the checkout session from request context
func HandleGetCheckoutSession(w http.ResponseWriter, req *http.Request) {

	// get checkout resource from context, put there by CheckoutAuthenticationInterceptor
	checkoutSession, ok := req.Context().Value(helpers.ContextKeyCheckoutSession).(*models.CheckoutResourceRest)

	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid CheckoutResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Check if the checkout session is expired
	isExpired, err := service.IsExpired(*checkoutSession, &checkoutService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error checking checkout session expiry status: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if isExpired && checkoutSession.Status != service.Paid.String() {
		checkoutSession.Status = service.Expired.String()
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(checkoutSession)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successful GET request for checkout resource", log.Data{"checkout_id": checkoutSession.MetaData.ID})
}

// HandlePatchCheckoutSession patches and updates the checkout session
func HandlePatchCheckoutSession(w http.ResponseWriter, req *http.Request) {
	// get checkout resource from context, put there by CheckoutAuthenticationInterceptor
	checkoutSession, ok := req.Context().Value(helpers.ContextKeyCheckoutSession).(*models.CheckoutResourceRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid CheckoutResourceRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
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

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var checkoutUpdateData models.CheckoutResourceRest
	err = requestDecoder.Decode(&checkoutUpdateData)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if checkoutUpdateData.PaymentMethod == "" && checkoutUpdateData.Status == "" {
		log.ErrorR(req, fmt.Errorf("no valid fields for the patch request have been supplied for resource [%s]", checkoutSession.MetaData.ID))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	responseType, err := checkoutService.PatchCheckoutSession(req, checkoutSession.MetaData.ID, checkoutUpdateData)

	if err != nil {
		log.ErrorR(req, fmt.Errorf("error patching checkout resource: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if responseType != service.Success {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successful PATCH request for checkout resource", log.Data{"checkout_id": checkoutSession.MetaData.ID, "status": http.StatusOK})
}
