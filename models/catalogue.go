package models

// CatalogueItemRest is the representation of an item retrieved from the
// catalogue API, used to verify draft line item pricing
type CatalogueItemRest struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	ItemCode    string `json:"item_code"`
}
