package dao

import (
	"testing"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func setDriverUp() (MongoService, mtest.CommandError, *mtest.Options, models.CheckoutResourceDB, models.OrderResourceDB) {
	mongoService := MongoService{
		CheckoutsCollection: "checkouts",
		OrdersCollection:    "orders",
	}

	commandError := mtest.CommandError{
		Code:    1,
		Message: "Message",
		Name:    "Name",
		Labels:  []string{"label1"},
	}

	checkoutResource := models.CheckoutResourceDB{
		ID:                "ID",
		RedirectURI:       "RedirectURI",
		State:             "State",
		ExternalSessionID: "ExternalSessionID",
		PaymentIntentID:   "PaymentIntentID",
		Data: models.CheckoutResourceDataDB{
			Amount:    "49.99",
			Status:    "pending",
			CreatedAt: time.Now().Truncate(time.Millisecond),
		},
	}

	orderResource := models.OrderResourceDB{
		ID:              "OrderID",
		CheckoutID:      "ID",
		PaymentIntentID: "PaymentIntentID",
		Amount:          "49.99",
		Status:          "paid",
	}

	opts := mtest.NewOptions().DatabaseName("databaseName").ClientType(mtest.Mock)

	return mongoService, commandError, opts, checkoutResource, orderResource
}

func TestUnitCreateCheckoutResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, checkoutResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("CreateCheckoutResource runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.CreateCheckoutResource(&checkoutResource)

		assert.Nil(t, err)
	})

	mt.Run("CreateCheckoutResource runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.CreateCheckoutResource(&checkoutResource)

		assert.NotNil(t, err)
	})
}

func TestUnitGetCheckoutResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, checkoutResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetCheckoutResource successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "models.CheckoutResourceDB", mtest.FirstBatch, bson.D{
			{"_id", checkoutResource.ID},
			{"redirect_uri", checkoutResource.RedirectURI},
			{"state", checkoutResource.State},
		}))

		mongoService.db = mt.DB

		checkoutResource, err := mongoService.GetCheckoutResource("ID")
		assert.NotNil(t, checkoutResource)
		assert.Nil(t, err)
		assert.Equal(t, checkoutResource.ID, "ID")
		assert.Equal(t, checkoutResource.State, "State")
		assert.Equal(t, checkoutResource.RedirectURI, "RedirectURI")
	})

	mt.Run("GetCheckoutResource with error findone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		checkoutResource, err := mongoService.GetCheckoutResource("ID")

		assert.NotNil(t, err)
		assert.Nil(t, checkoutResource)
	})
}

func TestUnitPatchCheckoutResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, checkoutResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("PatchCheckoutResource runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.PatchCheckoutResource("ID", &checkoutResource)

		assert.Nil(t, err)
	})

	mt.Run("PatchCheckoutResource runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.PatchCheckoutResource("ID", &checkoutResource)

		assert.NotNil(t, err)
	})
}

func TestUnitCreateOrderResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, _, orderResource := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("CreateOrderResource runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.CreateOrderResource(&orderResource)

		assert.Nil(t, err)
	})

	mt.Run("CreateOrderResource runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.CreateOrderResource(&orderResource)

		assert.NotNil(t, err)
	})
}

func TestUnitGetOrderResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, _, orderResource := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetOrderResource successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "models.OrderResourceDB", mtest.FirstBatch, bson.D{
			{"_id", orderResource.ID},
			{"checkout_id", orderResource.CheckoutID},
			{"payment_intent_id", orderResource.PaymentIntentID},
			{"amount", orderResource.Amount},
			{"status", orderResource.Status},
		}))

		mongoService.db = mt.DB

		orderResource, err := mongoService.GetOrderResource("OrderID")
		assert.NotNil(t, orderResource)
		assert.Nil(t, err)
		assert.Equal(t, orderResource.ID, "OrderID")
		assert.Equal(t, orderResource.PaymentIntentID, "PaymentIntentID")
		assert.Equal(t, orderResource.Status, "paid")
	})

	mt.Run("GetOrderResource with error findone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		orderResource, err := mongoService.GetOrderResource("OrderID")

		assert.NotNil(t, err)
		assert.Nil(t, orderResource)
	})
}
