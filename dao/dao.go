package dao

import "github.com/companieshouse/checkout.api.ch.gov.uk/models"

// DAO is an interface for accessing checkout and order data from a backend store
type DAO interface {
	CreateCheckoutResource(checkoutResource *models.CheckoutResourceDB) error
	GetCheckoutResource(id string) (*models.CheckoutResourceDB, error)
	PatchCheckoutResource(id string, checkoutUpdate *models.CheckoutResourceDB) error
	CreateOrderResource(orderResource *models.OrderResourceDB) error
	GetOrderResource(id string) (*models.OrderResourceDB, error)
}
