package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

// HandleCheckoutCallback handles the return redirect from the hosted payment
// provider and sends the user back to the storefront
func HandleCheckoutCallback(w http.ResponseWriter, req *http.Request) {
	// Get the checkout session
	vars := mux.Vars(req)
	id := vars["checkout_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("checkout id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sessionID := req.URL.Query().Get("session_id")
	if sessionID == "" {
		// PayPal names the session identifier "token" on the return redirect
		sessionID = req.URL.Query().Get("token")
	}
	orderID := req.URL.Query().Get("order_id")

	cartURL := checkoutService.Config.WebURL + "/cart"

	// A malformed return redirect is rejected before anything is looked up.
	// No call is made to the provider for these.
	if sessionID == "" || orderID == "" {
		log.ErrorR(req, fmt.Errorf("session or order identifier not supplied on callback for checkout [%s]", id))
		redirectUser(w, req, cartURL, models.RedirectParams{Status: "invalid-session", Message: "invalid session"})
		return
	}

	// The checkout session must be retrieved directly to enable access to metadata outside the data block
	checkoutSession, _, err := checkoutService.GetCheckoutSession(req, id)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting checkout session: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if checkoutSession == nil {
		log.ErrorR(req, fmt.Errorf("checkout session not found. id: %s", id))
		w.WriteHeader(http.StatusNotFound)
		return
	}

	providerService, err := getExternalProviderService(checkoutService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating external provider service: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	params := models.RedirectParams{
		State: checkoutSession.MetaData.State,
		Ref:   checkoutSession.Reference,
	}

	orderResource, responseType, err := providerService.VerifyCheckoutSession(req, checkoutSession, sessionID, orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error verifying checkout session: [%v]", err), log.Data{"service_response_type": responseType.String()})

		params.Status = service.Failed.String()
		params.Message = verificationFailureMessage(err)

		redirectUser(w, req, cartURL, params)
		return
	}

	log.InfoR(req, "Successfully closed checkout session", log.Data{"checkout_id": id, "order_id": orderResource.ID})

	err = handleOrderMessage(orderResource.ID, checkoutSession.MetaData.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing order kafka message: [%v]", err))
	}

	params.Status = service.Paid.String()

	redirectUser(w, req, checkoutService.Config.WebURL, params)
}

// verificationFailureMessage picks a user displayable message for a failed
// verification. Provider and session messages are passed through verbatim,
// anything else gets a generic message.
func verificationFailureMessage(err error) string {
	switch err.(type) {
	case *service.SessionInvalidError, *service.PaymentConfirmationError:
		return err.Error()
	default:
		return "Payment could not be confirmed"
	}
}
