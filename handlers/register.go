package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/dao"
	"github.com/companieshouse/checkout.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var checkoutService *service.CheckoutService
var paymentProcessor *service.PaymentProcessor

// getExternalProviderService allows the hosted-provider construction to be
// swapped out in unit tests
var getExternalProviderService = func(cfg config.Config) (service.PaymentProviderService, error) {
	client, err := service.GetPayPalClient(cfg)
	if err != nil {
		return nil, err
	}
	return &service.PayPalService{Client: client, CheckoutService: *checkoutService}, nil
}

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewMongoService(cfg.MongoDBURL, cfg.Database, cfg.Collection, cfg.OrdersCollection)

	checkoutService = &service.CheckoutService{
		DAO:    m,
		Config: cfg,
	}

	cardProviderService := &service.CardProviderService{CheckoutService: *checkoutService}

	paymentProcessor = &service.PaymentProcessor{
		CheckoutService: checkoutService,
		CardProvider:    cardProviderService,
	}

	ca := &interceptors.CheckoutAuthenticationInterceptor{
		Service: *checkoutService,
	}

	userAuthInterceptor := &authentication.UserAuthenticationInterceptor{
		AllowAPIKeyUser:                true,
		RequireElevatedAPIKeyPrivilege: true,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")
	mainRouter.Handle("/metrics", promhttp.Handler()).Methods("GET").Name("get-metrics")

	// Create subrouters. All routes except the callback need auth middleware,
	// so the router needs to be split up. This allows per-subrouter middleware.

	// create-checkout endpoint should not be intercepted by the checkout auth
	// interceptor, so needs to be it's own subrouter
	rootCheckoutRouter := mainRouter.PathPrefix("/checkouts").Subrouter()
	rootCheckoutRouter.HandleFunc("", HandleCreateCheckoutSession).Methods("POST").Name("create-checkout")

	// get/patch-checkout endpoints need checkout and user auth, so need their
	// own subrouter
	getCheckoutRouter := rootCheckoutRouter.PathPrefix("/{checkout_id}").Subrouter()
	getCheckoutRouter.HandleFunc("", HandleGetCheckoutSession).Methods("GET").Name("get-checkout")
	getCheckoutRouter.HandleFunc("", HandlePatchCheckoutSession).Methods("PATCH").Name("patch-checkout")

	// direct in-page payment submission
	confirmRouter := mainRouter.PathPrefix("/checkouts/{checkout_id}/payments").Subrouter()
	confirmRouter.HandleFunc("", HandleConfirmPayment).Methods("POST").Name("confirm-payment")

	// redirect-flow verification for the web tier
	verifySessionRouter := mainRouter.PathPrefix("/checkouts/{checkout_id}/verify-session").Subrouter()
	verifySessionRouter.HandleFunc("", HandleVerifyCheckoutSession).Methods("POST").Name("verify-checkout-session")

	privateJourneyRouter := mainRouter.PathPrefix("/private/checkouts/{checkout_id}/external-journey").Subrouter()
	privateJourneyRouter.HandleFunc("", HandleCreateExternalPaymentJourney).Methods("POST").Name("create-external-payment-journey")

	// callback endpoints should not be intercepted by the checkout or user
	// auth interceptors, so need to be their own subrouter
	callbackRouter := mainRouter.PathPrefix("/callback").Subrouter()
	callbackRouter.HandleFunc("/checkouts/{checkout_id}", HandleCheckoutCallback).Methods("GET").Name("handle-checkout-callback")

	// admin lookup of committed orders
	adminOrderRouter := mainRouter.PathPrefix("/admin/orders/{order_id}").Subrouter()
	adminOrderRouter.HandleFunc("", HandleGetOrder).Methods("GET").Name("get-order")

	// Set middleware for subrouters
	rootCheckoutRouter.Use(log.Handler, userAuthInterceptor.UserAuthenticationIntercept)
	getCheckoutRouter.Use(ca.CheckoutAuthenticationIntercept)
	confirmRouter.Use(log.Handler, userAuthInterceptor.UserAuthenticationIntercept, ca.CheckoutAuthenticationIntercept)
	verifySessionRouter.Use(log.Handler, userAuthInterceptor.UserAuthenticationIntercept, ca.CheckoutAuthenticationIntercept)
	privateJourneyRouter.Use(log.Handler, userAuthInterceptor.UserAuthenticationIntercept, ca.CheckoutAuthenticationIntercept)
	callbackRouter.Use(log.Handler)
	adminOrderRouter.Use(log.Handler, authentication.ElevatedPrivilegesInterceptor)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
