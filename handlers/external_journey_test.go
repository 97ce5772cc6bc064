package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/dao"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleCreateExternalPaymentJourney(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.ExpiryTimeInMinutes = "90"

	Convey("Checkout session missing from context", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := httptest.NewRequest("POST", "/private/checkouts/1234/external-journey", nil)
		w := httptest.NewRecorder()
		HandleCreateExternalPaymentJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Expired checkout session", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		checkoutSession := defaultCheckoutSession()
		checkoutSession.CreatedAt = time.Now().Add(-2 * time.Hour)

		req := requestWithCheckoutSession("POST", "/private/checkouts/1234/external-journey", nil, checkoutSession)
		w := httptest.NewRecorder()
		HandleCreateExternalPaymentJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Error creating provider service", t, func() {
		original := getExternalProviderService
		getExternalProviderService = func(cfg config.Config) (service.PaymentProviderService, error) {
			return nil, fmt.Errorf("error")
		}
		defer func() { getExternalProviderService = original }()

		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := requestWithCheckoutSession("POST", "/private/checkouts/1234/external-journey", nil, defaultCheckoutSession())
		w := httptest.NewRecorder()
		HandleCreateExternalPaymentJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("External journey created", t, func() {
		stub := &stubProviderService{}
		restore := useStubProvider(stub)
		defer restore()

		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := requestWithCheckoutSession("POST", "/private/checkouts/1234/external-journey", nil, defaultCheckoutSession())
		w := httptest.NewRecorder()
		HandleCreateExternalPaymentJourney(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		journey := models.ExternalPaymentJourney{}
		err := json.Unmarshal(w.Body.Bytes(), &journey)
		So(err, ShouldBeNil)
		So(journey.NextURL, ShouldEqual, "https://paypal.example.com/approve")
	})
}
