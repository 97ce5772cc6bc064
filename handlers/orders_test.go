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
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleGetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	cfg, _ := config.Get()

	Convey("Order ID not supplied", t, func() {
		checkoutService = createMockCheckoutService(dao.NewMockDAO(mockCtrl), cfg)

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		HandleGetOrder(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Error getting order resource", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetOrderResource("o_1").Return(nil, fmt.Errorf("error"))
		checkoutService = createMockCheckoutService(mock, cfg)

		req := httptest.NewRequest("GET", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "o_1"})
		w := httptest.NewRecorder()
		HandleGetOrder(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Order not found", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetOrderResource("o_1").Return(nil, nil)
		checkoutService = createMockCheckoutService(mock, cfg)

		req := httptest.NewRequest("GET", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "o_1"})
		w := httptest.NewRecorder()
		HandleGetOrder(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Order returned", t, func() {
		mock := dao.NewMockDAO(mockCtrl)
		mock.EXPECT().GetOrderResource("o_1").Return(&models.OrderResourceDB{
			ID:              "o_1",
			CheckoutID:      "1234",
			PaymentIntentID: "pi_1",
			Amount:          "49.99",
			Status:          "paid",
			CreatedAt:       time.Now(),
		}, nil)
		checkoutService = createMockCheckoutService(mock, cfg)

		req := httptest.NewRequest("GET", "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"order_id": "o_1"})
		w := httptest.NewRecorder()
		HandleGetOrder(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)

		orderResource := models.OrderResourceRest{}
		err := json.Unmarshal(w.Body.Bytes(), &orderResource)
		So(err, ShouldBeNil)
		So(orderResource.ID, ShouldEqual, "o_1")
		So(orderResource.Amount, ShouldEqual, "49.99")
	})
}
