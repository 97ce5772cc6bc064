package service

import (
	"fmt"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/transformers"
	"github.com/shopspring/decimal"
)

// CommitOrder materialises the order record for a checkout whose payment has
// been confirmed. The committed amount must equal the amount the payment
// intent was created with.
func (service *CheckoutService) CommitOrder(checkoutSession *models.CheckoutResourceRest, orderID, paymentIntentID, amount string) (*models.OrderResourceRest, ResponseType, error) {

	committedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid order amount [%s]: [%v]", amount, err)
	}
	sessionAmount, err := decimal.NewFromString(checkoutSession.Amount)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid checkout amount [%s]: [%v]", checkoutSession.Amount, err)
	}
	if !committedAmount.Equal(sessionAmount) {
		return nil, InvalidData, fmt.Errorf("order amount [%s] different from checkout amount [%s] for id [%s]", amount, checkoutSession.Amount, checkoutSession.MetaData.ID)
	}

	orderResourceRest := models.OrderResourceRest{
		ID:              orderID,
		CheckoutID:      checkoutSession.MetaData.ID,
		PaymentIntentID: paymentIntentID,
		Amount:          amount,
		Status:          Paid.String(),
		// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	orderResourceDB := transformers.OrderTransformer{}.TransformToDB(orderResourceRest, *checkoutSession)

	err = service.DAO.CreateOrderResource(&orderResourceDB)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing order to MongoDB: %v", err)
	}

	return &orderResourceRest, Success, nil
}

// GetOrder retrieves a committed order with the given id
func (service *CheckoutService) GetOrder(id string) (*models.OrderResourceRest, ResponseType, error) {
	orderResource, err := service.DAO.GetOrderResource(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order resource from db: [%v]", err)
	}
	if orderResource == nil {
		return nil, NotFound, nil
	}

	orderResourceRest := transformers.OrderTransformer{}.TransformToRest(*orderResource)

	return &orderResourceRest, Success, nil
}
