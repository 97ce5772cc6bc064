package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/config"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// ProducerTopic is the topic to which the order confirmed kafka message is sent
const ProducerTopic = "order-confirmed"

// ProducerSchemaName is the schema which will be used to send the order confirmed kafka message with
const ProducerSchemaName = "order-confirmed"

// orderConfirmed represents the avro schema shared with the downstream
// fulfilment consumers
type orderConfirmed struct {
	OrderID    string `avro:"order_id"`
	CheckoutID string `avro:"checkout_id"`
}

// handleOrderMessage allows us to mock the call to produceOrderMessage for unit tests
var handleOrderMessage = produceOrderMessage

// redirectUser redirects user to the provided redirect_uri with query params
func redirectUser(w http.ResponseWriter, r *http.Request, redirectURI string, params models.RedirectParams) {
	// Redirect the user to the redirect_uri, passing the state, ref and status as query params
	req, err := http.NewRequest("GET", redirectURI, nil)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error redirecting user: [%s]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	query := req.URL.Query()
	query.Add("state", params.State)
	query.Add("ref", params.Ref)
	query.Add("status", params.Status)
	if params.Message != "" {
		query.Add("message", params.Message)
	}

	generatedURL := fmt.Sprintf("%s?%s", redirectURI, query.Encode())
	log.InfoR(r, "Redirecting to:", log.Data{"generated_url": generatedURL})

	http.Redirect(w, r, generatedURL, http.StatusSeeOther)
}

// produceOrderMessage handles creating a producer, marshalling the order and
// checkout ids into the correct avro schema and sending the message to the
// topic defined in ProducerTopic
func produceOrderMessage(orderID string, checkoutID string) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	orderConfirmedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: orderConfirmedSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(orderID, checkoutID, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceOrderMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(orderID string, checkoutID string, orderConfirmedSchema avro.Schema) (*producer.Message, error) {
	orderConfirmedMessage := orderConfirmed{OrderID: orderID, CheckoutID: checkoutID}

	messageBytes, err := orderConfirmedSchema.Marshal(orderConfirmedMessage)
	if err != nil {
		err = fmt.Errorf("error marshalling order confirmed message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
