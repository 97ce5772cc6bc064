package transformers

import (
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// CheckoutTransformer transforms checkout resource data between rest and database models
type CheckoutTransformer struct{}

// TransformToDB transforms a checkout resource rest model into a checkout resource database model
func (ct CheckoutTransformer) TransformToDB(rest models.CheckoutResourceRest) models.CheckoutResourceDB {
	checkoutResourceData := models.CheckoutResourceDataDB{
		Amount:        rest.Amount,
		DeliveryFee:   rest.DeliveryFee,
		CompletedAt:   rest.CompletedAt,
		CreatedAt:     rest.CreatedAt,
		Description:   rest.Description,
		PaymentMethod: rest.PaymentMethod,
		Reference:     rest.Reference,
		Status:        rest.Status,
	}

	checkoutResourceData.CreatedBy = models.CreatedByDB(rest.CreatedBy)
	checkoutResourceData.CustomerAddress = models.CustomerAddressDB(rest.CustomerAddress)
	checkoutResourceData.Links = models.CheckoutLinksDB(rest.Links)

	checkoutResourceData.LineItems = make([]models.LineItemDB, len(rest.LineItems))
	for i, item := range rest.LineItems {
		checkoutResourceData.LineItems[i] = models.LineItemDB{
			Amount:      item.Amount,
			Description: item.Description,
			ItemCode:    item.ItemCode,
			Quantity:    item.Quantity,
			Links:       models.LineItemLinksDB(item.Links),
		}
	}

	checkoutResource := models.CheckoutResourceDB{
		ID:                rest.MetaData.ID,
		RedirectURI:       rest.MetaData.RedirectURI,
		State:             rest.MetaData.State,
		ExternalSessionID: rest.MetaData.ExternalSessionID,
		PaymentIntentID:   rest.MetaData.PaymentIntentID,
		PendingOrderID:    rest.MetaData.PendingOrderID,
		Data:              checkoutResourceData,
	}

	return checkoutResource
}

// TransformToRest transforms a checkout resource database model into a checkout resource rest model
func (ct CheckoutTransformer) TransformToRest(dbResource models.CheckoutResourceDB) models.CheckoutResourceRest {
	checkoutResource := models.CheckoutResourceRest{
		Amount:        dbResource.Data.Amount,
		DeliveryFee:   dbResource.Data.DeliveryFee,
		CompletedAt:   dbResource.Data.CompletedAt,
		CreatedAt:     dbResource.Data.CreatedAt,
		Description:   dbResource.Data.Description,
		PaymentMethod: dbResource.Data.PaymentMethod,
		Reference:     dbResource.Data.Reference,
		Status:        dbResource.Data.Status,
	}

	checkoutResource.CreatedBy = models.CreatedByRest(dbResource.Data.CreatedBy)
	checkoutResource.CustomerAddress = models.CustomerAddressRest(dbResource.Data.CustomerAddress)
	checkoutResource.Links = models.CheckoutLinksRest(dbResource.Data.Links)

	checkoutResource.LineItems = make([]models.LineItemRest, len(dbResource.Data.LineItems))
	for i, item := range dbResource.Data.LineItems {
		checkoutResource.LineItems[i] = models.LineItemRest{
			Amount:      item.Amount,
			Description: item.Description,
			ItemCode:    item.ItemCode,
			Quantity:    item.Quantity,
			Links:       models.LineItemLinksRest(item.Links),
		}
	}

	checkoutResource.MetaData = models.CheckoutResourceMetaDataRest{
		ID:                dbResource.ID,
		RedirectURI:       dbResource.RedirectURI,
		State:             dbResource.State,
		ExternalSessionID: dbResource.ExternalSessionID,
		PaymentIntentID:   dbResource.PaymentIntentID,
		PendingOrderID:    dbResource.PendingOrderID,
	}

	return checkoutResource
}

// OrderTransformer transforms order resource data between rest and database models
type OrderTransformer struct{}

// TransformToDB transforms an order resource rest model into an order resource
// database model, snapshotting the checkout data block it was committed from
func (ot OrderTransformer) TransformToDB(rest models.OrderResourceRest, checkout models.CheckoutResourceRest) models.OrderResourceDB {
	checkoutDB := CheckoutTransformer{}.TransformToDB(checkout)

	return models.OrderResourceDB{
		ID:              rest.ID,
		CheckoutID:      rest.CheckoutID,
		PaymentIntentID: rest.PaymentIntentID,
		Amount:          rest.Amount,
		Status:          rest.Status,
		CreatedAt:       rest.CreatedAt,
		Data:            checkoutDB.Data,
	}
}

// TransformToRest transforms an order resource database model into an order resource rest model
func (ot OrderTransformer) TransformToRest(dbResource models.OrderResourceDB) models.OrderResourceRest {
	return models.OrderResourceRest{
		ID:              dbResource.ID,
		CheckoutID:      dbResource.CheckoutID,
		PaymentIntentID: dbResource.PaymentIntentID,
		Amount:          dbResource.Amount,
		Status:          dbResource.Status,
		CreatedAt:       dbResource.CreatedAt,
	}
}
