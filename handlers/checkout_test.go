package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/dao"
	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func createMockCheckoutService(mockDAO *dao.MockDAO, cfg *config.Config) *service.CheckoutService {
	return &service.CheckoutService{
		DAO:    mockDAO,
		Config: *cfg,
	}
}

func defaultCheckoutSession() *models.CheckoutResourceRest {
	return &models.CheckoutResourceRest{
		Amount:    "49.99",
		Status:    "pending",
		CreatedAt: time.Now(),
		Reference: "ref123",
		MetaData: models.CheckoutResourceMetaDataRest{
			ID:          "1234",
			RedirectURI: "https://shop.example.com/return",
			State:       "state123",
		},
	}
}

// requestWithCheckoutSession builds a request carrying the checkout session
// the way CheckoutAuthenticationInterceptor stores it
func requestWithCheckoutSession(method, target string, body *bytes.Buffer, checkoutSession *models.CheckoutResourceRest) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
	}
	ctx := context.WithValue(req.Context(), helpers.ContextKeyCheckoutSession, checkoutSession)
	return req.WithContext(ctx)
}

func TestUnitHandleCreateCheckoutSession(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.ExpiryTimeInMinutes = "90"

	Convey("Request body empty", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req, _ := http.NewRequest("POST", "/checkouts", nil)
		w := httptest.NewRecorder()
		HandleCreateCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request body invalid", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := httptest.NewRequest("POST", "/checkouts", bytes.NewBuffer([]byte("not json")))
		w := httptest.NewRecorder()
		HandleCreateCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Invalid order draft", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		body, _ := json.Marshal(models.IncomingCheckoutResourceRequest{})
		req := httptest.NewRequest("POST", "/checkouts", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleCreateCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Checkout session created", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().CreateCheckoutResource(gomock.Any()).Return(nil)
		checkoutService = createMockCheckoutService(mock, cfg)

		incoming := models.IncomingCheckoutResourceRequest{
			RedirectURI: "https://shop.example.com/return",
			Amount:      "49.99",
			LineItems: []models.LineItemRest{
				{Amount: "49.99", Description: "widget", ItemCode: "WID-1", Quantity: 1},
			},
		}
		body, _ := json.Marshal(incoming)
		req := httptest.NewRequest("POST", "/checkouts", bytes.NewBuffer(body))
		req.Header.Set("Eric-Identity", "identity")
		req.Header.Set("Eric-Authorised-User", "test@example.com; forename=f; surname=s")
		w := httptest.NewRecorder()
		HandleCreateCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Header().Get("Location"), ShouldNotBeEmpty)

		responseBody := models.CheckoutResourceRest{}
		err := json.Unmarshal(w.Body.Bytes(), &responseBody)
		So(err, ShouldBeNil)
		So(responseBody.Amount, ShouldEqual, "49.99")
		So(responseBody.Status, ShouldEqual, "pending")
	})
}

func TestUnitHandleGetCheckoutSession(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.ExpiryTimeInMinutes = "90"

	Convey("Checkout session missing from context", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := httptest.NewRequest("GET", "/checkouts/1234", nil)
		w := httptest.NewRecorder()
		HandleGetCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Checkout session returned", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := requestWithCheckoutSession("GET", "/checkouts/1234", nil, defaultCheckoutSession())
		w := httptest.NewRecorder()
		HandleGetCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		responseBody := models.CheckoutResourceRest{}
		err := json.Unmarshal(w.Body.Bytes(), &responseBody)
		So(err, ShouldBeNil)
		So(responseBody.Status, ShouldEqual, "pending")
	})

	Convey("Expired checkout session reported as expired", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		checkoutSession := defaultCheckoutSession()
		checkoutSession.CreatedAt = time.Now().Add(-2 * time.Hour)

		req := requestWithCheckoutSession("GET", "/checkouts/1234", nil, checkoutSession)
		w := httptest.NewRecorder()
		HandleGetCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		responseBody := models.CheckoutResourceRest{}
		err := json.Unmarshal(w.Body.Bytes(), &responseBody)
		So(err, ShouldBeNil)
		So(responseBody.Status, ShouldEqual, "expired")
	})
}

func TestUnitHandlePatchCheckoutSession(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()
	cfg.ExpiryTimeInMinutes = "90"

	Convey("Checkout session missing from context", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := httptest.NewRequest("PATCH", "/checkouts/1234", nil)
		w := httptest.NewRecorder()
		HandlePatchCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Expired checkout session cannot be patched", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		checkoutSession := defaultCheckoutSession()
		checkoutSession.CreatedAt = time.Now().Add(-2 * time.Hour)

		req := requestWithCheckoutSession("PATCH", "/checkouts/1234", bytes.NewBuffer([]byte("{}")), checkoutSession)
		w := httptest.NewRecorder()
		HandlePatchCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("No valid fields supplied", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := requestWithCheckoutSession("PATCH", "/checkouts/1234", bytes.NewBuffer([]byte("{}")), defaultCheckoutSession())
		w := httptest.NewRecorder()
		HandlePatchCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Error patching checkout session", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().PatchCheckoutResource("1234", gomock.Any()).Return(fmt.Errorf("error"))
		checkoutService = createMockCheckoutService(mock, cfg)

		body, _ := json.Marshal(models.CheckoutResourceRest{PaymentMethod: "card"})
		req := requestWithCheckoutSession("PATCH", "/checkouts/1234", bytes.NewBuffer(body), defaultCheckoutSession())
		w := httptest.NewRecorder()
		HandlePatchCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Checkout session patched", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().PatchCheckoutResource("1234", gomock.Any()).Return(nil)
		checkoutService = createMockCheckoutService(mock, cfg)

		body, _ := json.Marshal(models.CheckoutResourceRest{PaymentMethod: "card"})
		req := requestWithCheckoutSession("PATCH", "/checkouts/1234", bytes.NewBuffer(body), defaultCheckoutSession())
		w := httptest.NewRecorder()
		HandlePatchCheckoutSession(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
