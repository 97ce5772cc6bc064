package dao

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no database connection
	// so the service must crash here as it cannot continue.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. Failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// NewGetMongoDatabase returns a handle to the configured database
func NewGetMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface backed by mongodb
type MongoService struct {
	db                  MongoDatabaseInterface
	CheckoutsCollection string
	OrdersCollection    string
}

var mtx sync.Mutex

// NewMongoService returns a MongoService for the supplied connection details
func NewMongoService(mongoDBURL, databaseName, checkoutsCollection, ordersCollection string) *MongoService {
	mtx.Lock()
	defer mtx.Unlock()

	return &MongoService{
		db:                  NewGetMongoDatabase(mongoDBURL, databaseName),
		CheckoutsCollection: checkoutsCollection,
		OrdersCollection:    ordersCollection,
	}
}

// CreateCheckoutResource writes a new checkout resource to the DB
func (m *MongoService) CreateCheckoutResource(checkoutResource *models.CheckoutResourceDB) error {
	collection := m.db.Collection(m.CheckoutsCollection)
	_, err := collection.InsertOne(context.Background(), checkoutResource)

	return err
}

// GetCheckoutResource gets a checkout resource from the DB
// If the checkout is not found in the DB, return nil
func (m *MongoService) GetCheckoutResource(id string) (*models.CheckoutResourceDB, error) {
	var resource models.CheckoutResourceDB

	collection := m.db.Collection(m.CheckoutsCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// PatchCheckoutResource patches a checkout resource in the DB
func (m *MongoService) PatchCheckoutResource(id string, checkoutUpdate *models.CheckoutResourceDB) error {
	collection := m.db.Collection(m.CheckoutsCollection)

	patchUpdate := make(bson.M)

	// Patch only these fields
	if checkoutUpdate.Data.PaymentMethod != "" {
		patchUpdate["data.payment_method"] = checkoutUpdate.Data.PaymentMethod
	}
	if checkoutUpdate.Data.Status != "" {
		patchUpdate["data.status"] = checkoutUpdate.Data.Status
	}
	if !checkoutUpdate.Data.CompletedAt.IsZero() {
		patchUpdate["data.completed_at"] = checkoutUpdate.Data.CompletedAt
	}
	if checkoutUpdate.ExternalSessionID != "" {
		patchUpdate["external_session_id"] = checkoutUpdate.ExternalSessionID
	}
	if checkoutUpdate.PaymentIntentID != "" {
		patchUpdate["payment_intent_id"] = checkoutUpdate.PaymentIntentID
	}
	if checkoutUpdate.PendingOrderID != "" {
		patchUpdate["pending_order_id"] = checkoutUpdate.PendingOrderID
	}

	updateCall := bson.M{"$set": patchUpdate}

	_, err := collection.UpdateByID(context.Background(), id, updateCall)

	return err
}

// CreateOrderResource writes a new order resource to the DB. This is the sole
// write of durable order state.
func (m *MongoService) CreateOrderResource(orderResource *models.OrderResourceDB) error {
	collection := m.db.Collection(m.OrdersCollection)
	_, err := collection.InsertOne(context.Background(), orderResource)

	return err
}

// GetOrderResource gets an order resource from the DB
// If the order is not found in the DB, return nil
func (m *MongoService) GetOrderResource(id string) (*models.OrderResourceDB, error) {
	var resource models.OrderResourceDB

	collection := m.db.Collection(m.OrdersCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}
