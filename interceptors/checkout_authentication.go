package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

// CheckoutAuthenticationInterceptor contains the checkout service used in the interceptor
type CheckoutAuthenticationInterceptor struct {
	Service service.CheckoutService
}

// CheckoutAuthenticationIntercept checks that the user is authenticated for the checkout
func (checkoutAuthenticationInterceptor CheckoutAuthenticationInterceptor) CheckoutAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check for a checkout ID in request
		vars := mux.Vars(r)
		id := vars["checkout_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("CheckoutAuthenticationInterceptor error: no checkout id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Get identity type from request
		identityType := authentication.GetAuthorisedIdentityType(r)
		if !(identityType == helpers.Oauth2IdentityType || identityType == helpers.APIKeyIdentityType) {
			log.Error(fmt.Errorf("authentication interceptor unauthorised: not oauth2 or API key identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		authorisedUser := ""

		if identityType == helpers.Oauth2IdentityType {
			// Get user details from context, passed in by UserAuthenticationInterceptor
			userDetails, ok := r.Context().Value(authentication.ContextKeyUserDetails).(authentication.AuthUserDetails)
			if !ok {
				log.ErrorR(r, fmt.Errorf("CheckoutAuthenticationInterceptor error: invalid AuthUserDetails from UserAuthenticationInterceptor"))
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			// Get user details from request
			authorisedUser = userDetails.ID
			if authorisedUser == "" {
				log.Error(fmt.Errorf("CheckoutAuthenticationInterceptor unauthorised: no authorised identity"))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		}

		// Get the checkout session from the ID in request
		checkoutSession, responseType, err := checkoutAuthenticationInterceptor.Service.GetCheckoutSession(r, id)
		if err != nil {
			log.Error(fmt.Errorf("CheckoutAuthenticationInterceptor error when retrieving checkout session: [%v]", err), log.Data{"service_response_type": responseType.String()})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if responseType == service.NotFound {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if responseType != service.Success {
			log.Error(fmt.Errorf("CheckoutAuthenticationInterceptor error when retrieving checkout session. Status: [%s]", responseType.String()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Store checkoutSession in context to use later in the handler
		ctx := context.WithValue(r.Context(), helpers.ContextKeyCheckoutSession, checkoutSession)

		// Set up variables that are used to determine authorisation below
		isGetRequest := http.MethodGet == r.Method
		authUserIsCheckoutCreator := authorisedUser == checkoutSession.CreatedBy.ID
		authUserHasOrderLookupRole := helpers.IsRoleAuthorised(r, helpers.AdminOrderLookupRole)
		isAPIKeyRequest := identityType == helpers.APIKeyIdentityType
		apiKeyHasElevatedPrivileges := helpers.IsKeyElevatedPrivilegesAuthorised(r)

		// Set up debug map for logging at each exit point
		debugMap := log.Data{
			"checkout_id":                     id,
			"auth_user_is_checkout_creator":   authUserIsCheckoutCreator,
			"auth_user_has_order_lookup_role": authUserHasOrderLookupRole,
			"api_key_has_elevated_privileges": apiKeyHasElevatedPrivileges,
			"request_method":                  r.Method,
		}

		// Now that we have the checkout data and authorised user there are
		// multiple cases that can be allowed through:
		switch {
		case authUserIsCheckoutCreator:
			// 1) Authorised user created the checkout
			log.InfoR(r, "CheckoutAuthenticationInterceptor authorised as creator", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		case authUserHasOrderLookupRole && isGetRequest:
			// 2) Authorised user has permission to look up any checkout session
			// and request is a GET i.e. to see checkout data but not modify it
			log.InfoR(r, "CheckoutAuthenticationInterceptor authorised as order lookup role on GET", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		case isAPIKeyRequest && apiKeyHasElevatedPrivileges:
			// 3) Authorised API key with elevated privileges is an internal API
			// key that we trust
			log.InfoR(r, "CheckoutAuthenticationInterceptor authorised as api key elevated user", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		default:
			// If none of the conditions above are met then the request is
			// unauthorised
			w.WriteHeader(http.StatusUnauthorized)
			log.InfoR(r, "CheckoutAuthenticationInterceptor unauthorised", debugMap)
		}
	})
}
