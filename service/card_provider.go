package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/metrics"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

// CardProviderService handles the specific functionality of integrating the
// card payment provider into checkout sessions
type CardProviderService struct {
	CheckoutService CheckoutService
}

// IsConfigured returns whether the provider client has a URL and credentials.
// An unconfigured client means payment submission is a no-op.
func (cp *CardProviderService) IsConfigured() bool {
	return cp.CheckoutService.Config.CardProviderURL != "" && cp.CheckoutService.Config.CardProviderToken != ""
}

// CreatePaymentIntent asks the provider to reserve a charge for the checkout
// amount. Each call may reserve a new provider-side intent, so callers must
// not call it more than once per checkout attempt.
func (cp *CardProviderService) CreatePaymentIntent(checkoutSession *models.CheckoutResourceRest) (*models.IncomingIntentResponse, error) {
	cfg := &cp.CheckoutService.Config

	amountToPay, err := convertToMinorUnitsFromDecimal(checkoutSession.Amount)
	if err != nil {
		return nil, fmt.Errorf("error converting amount to minor units: [%s]", err)
	}

	var intentRequest models.OutgoingIntentRequest
	intentRequest.Amount = amountToPay
	intentRequest.Currency = cfg.CurrencyCode
	intentRequest.Reference = checkoutSession.Reference
	intentRequest.Description = "Storefront order"

	requestBody, err := json.Marshal(intentRequest)
	if err != nil {
		return nil, fmt.Errorf("error reading IntentRequest: [%s]", err)
	}

	request, err := http.NewRequest("POST", cfg.CardProviderURL+"/payment_intents", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("error generating request for card provider: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+cfg.CardProviderToken)
	request.Header.Add("content-type", "application/json")

	timer := time.Now()
	resp, err := http.DefaultClient.Do(request)
	metrics.CardProviderRequestDuration.Observe(time.Since(timer).Seconds())
	if err != nil {
		return nil, fmt.Errorf("error sending request to card provider to create payment intent: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from card provider: [%s]", err)
	}

	intentResponse := &models.IncomingIntentResponse{}
	err = json.Unmarshal(body, intentResponse)
	if err != nil {
		return nil, fmt.Errorf("error reading response from card provider: [%s]", err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status [%v] back from card provider: [%s]", resp.StatusCode, intentResponse.Message)
	}

	if intentResponse.ClientSecret == "" {
		return nil, fmt.Errorf("no client secret returned from card provider")
	}

	return intentResponse, nil
}

// ConfirmPaymentIntent submits the collected payment-method data against the
// intent and returns the provider's terminal or error status
func (cp *CardProviderService) ConfirmPaymentIntent(intentID, clientSecret string, paymentMethodData map[string]string) (*models.IncomingConfirmResponse, error) {
	cfg := &cp.CheckoutService.Config

	confirmRequest := models.OutgoingConfirmRequest{
		ClientSecret:      clientSecret,
		PaymentMethodData: paymentMethodData,
	}

	requestBody, err := json.Marshal(confirmRequest)
	if err != nil {
		return nil, fmt.Errorf("error reading ConfirmRequest: [%s]", err)
	}

	request, err := http.NewRequest("POST", fmt.Sprintf("%s/payment_intents/%s/confirm", cfg.CardProviderURL, intentID), bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("error generating request for card provider: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+cfg.CardProviderToken)
	request.Header.Add("content-type", "application/json")

	timer := time.Now()
	resp, err := http.DefaultClient.Do(request)
	metrics.CardProviderRequestDuration.Observe(time.Since(timer).Seconds())
	if err != nil {
		return nil, fmt.Errorf("error sending request to card provider to confirm payment intent: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from card provider when confirming payment: [%s]", err)
	}

	confirmResponse := &models.IncomingConfirmResponse{}
	err = json.Unmarshal(body, confirmResponse)
	if err != nil {
		return nil, fmt.Errorf("error reading response from card provider when confirming payment: [%s]", err)
	}

	return confirmResponse, nil
}

// convertToMinorUnitsFromDecimal converts a decimal currency amount to an
// integer number of minor units, e.g. "116.32" to 11632
func convertToMinorUnitsFromDecimal(amount string) (int, error) {
	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, err
	}
	return int(amountDecimal.Mul(decimal.NewFromInt(100)).IntPart()), nil
}
