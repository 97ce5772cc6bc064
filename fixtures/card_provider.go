package fixtures

import "github.com/companieshouse/checkout.api.ch.gov.uk/models"

func GetIntentResponse(id string) *models.IncomingIntentResponse {
	return &models.IncomingIntentResponse{
		ID:           id,
		ClientSecret: "cs_1",
		Status:       "requires_confirmation",
	}
}

func GetConfirmResponse(id string, status string) *models.IncomingConfirmResponse {
	return &models.IncomingConfirmResponse{
		ID:     id,
		Status: status,
	}
}

func GetDeclinedConfirmResponse(id string) *models.IncomingConfirmResponse {
	return &models.IncomingConfirmResponse{
		ID:      id,
		Status:  "declined",
		Message: "Your card was declined.",
	}
}
