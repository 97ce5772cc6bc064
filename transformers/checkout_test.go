package transformers

import (
	"testing"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func restCheckoutFixture() models.CheckoutResourceRest {
	return models.CheckoutResourceRest{
		Amount:      "49.99",
		DeliveryFee: "3.50",
		CreatedAt:   time.Now().Truncate(time.Millisecond),
		CreatedBy: models.CreatedByRest{
			ID:       "identity",
			Email:    "test@example.com",
			Forename: "f",
			Surname:  "s",
		},
		CustomerAddress: models.CustomerAddressRest{
			AddressLine1: "1 Test Street",
			Locality:     "Testville",
			PostalCode:   "TE1 1ST",
			Country:      "GB",
		},
		Links: models.CheckoutLinksRest{
			Journey: "https://shop.example.com/checkouts/1234/pay",
			Self:    "checkouts/1234",
		},
		Reference: "ref123",
		Status:    "pending",
		LineItems: []models.LineItemRest{
			{
				Amount:      "46.49",
				Description: "widget",
				ItemCode:    "WID-1",
				Quantity:    1,
				Links:       models.LineItemLinksRest{Resource: "https://catalogue.example.com/items/WID-1"},
			},
		},
		MetaData: models.CheckoutResourceMetaDataRest{
			ID:                "1234",
			RedirectURI:       "https://shop.example.com/return",
			State:             "state123",
			ExternalSessionID: "cs_1",
			PaymentIntentID:   "pi_1",
			PendingOrderID:    "o_1",
		},
	}
}

func TestUnitCheckoutTransformer(t *testing.T) {
	Convey("Rest to DB and back preserves the resource", t, func() {
		rest := restCheckoutFixture()

		dbResource := CheckoutTransformer{}.TransformToDB(rest)
		So(dbResource.ID, ShouldEqual, "1234")
		So(dbResource.RedirectURI, ShouldEqual, "https://shop.example.com/return")
		So(dbResource.ExternalSessionID, ShouldEqual, "cs_1")
		So(dbResource.PaymentIntentID, ShouldEqual, "pi_1")
		So(dbResource.PendingOrderID, ShouldEqual, "o_1")
		So(dbResource.Data.Amount, ShouldEqual, "49.99")
		So(dbResource.Data.LineItems, ShouldHaveLength, 1)
		So(dbResource.Data.LineItems[0].ItemCode, ShouldEqual, "WID-1")

		roundTripped := CheckoutTransformer{}.TransformToRest(dbResource)
		So(roundTripped, ShouldResemble, rest)
	})
}

func TestUnitOrderTransformer(t *testing.T) {
	Convey("Order snapshot carries the checkout data block", t, func() {
		checkout := restCheckoutFixture()
		orderRest := models.OrderResourceRest{
			ID:              "o_1",
			CheckoutID:      "1234",
			PaymentIntentID: "pi_1",
			Amount:          "49.99",
			Status:          "paid",
			CreatedAt:       time.Now().Truncate(time.Millisecond),
		}

		dbResource := OrderTransformer{}.TransformToDB(orderRest, checkout)
		So(dbResource.ID, ShouldEqual, "o_1")
		So(dbResource.CheckoutID, ShouldEqual, "1234")
		So(dbResource.Data.Amount, ShouldEqual, "49.99")
		So(dbResource.Data.LineItems[0].Description, ShouldEqual, "widget")

		roundTripped := OrderTransformer{}.TransformToRest(dbResource)
		So(roundTripped, ShouldResemble, orderRest)
	})
}
