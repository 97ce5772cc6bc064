package service

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/dao"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/transformers"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CheckoutService contains the DAO for db access
type CheckoutService struct {
	DAO    dao.DAO
	Config config.Config
}

// CheckoutStatus Enum Type
type CheckoutStatus int

// Enumeration containing all possible checkout statuses
const (
	Pending CheckoutStatus = 1 + iota
	Processing
	Paid
	Failed
	Expired
)

// String representation of checkout statuses
var checkoutStatuses = [...]string{
	"pending",
	"processing",
	"paid",
	"failed",
	"expired",
}

func (checkoutStatus CheckoutStatus) String() string {
	return checkoutStatuses[checkoutStatus-1]
}

var amountFormat = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// CreateCheckoutSession creates a checkout session from an order draft and
// returns the decorated REST resource
func (service *CheckoutService) CreateCheckoutSession(req *http.Request, incomingCheckoutResourceRequest models.IncomingCheckoutResourceRequest) (*models.CheckoutResourceRest, ResponseType, error) {

	err := validateIncomingCheckout(incomingCheckoutResourceRequest)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid incoming checkout: [%v]", err)
	}

	totalAmount, err := getTotalAmount(incomingCheckoutResourceRequest.LineItems, incomingCheckoutResourceRequest.DeliveryFee)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("error getting amount from line items: [%v]", err)
	}

	// The draft's stated amount must match the computed total so a stale cart
	// cannot reserve a mismatched charge
	if totalAmount != incomingCheckoutResourceRequest.Amount {
		return nil, InvalidData, fmt.Errorf("amount in order draft [%s] different from computed total [%s]", incomingCheckoutResourceRequest.Amount, totalAmount)
	}

	err = service.validateLineItemResources(req, incomingCheckoutResourceRequest.LineItems)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("error validating line item resources: [%v]", err)
	}

	user := strings.Split(req.Header.Get("Eric-Authorised-User"), ";")
	email := user[0]
	var forename string
	var surname string

	for i := 1; i < len(user); i++ {
		v := strings.Split(user[i], "=")
		if v[0] == " forename" {
			forename = v[1]
		} else if v[0] == " surname" {
			surname = v[1]
		} else {
			return nil, Error, fmt.Errorf("unexpected format in Eric-Authorised-User: %s", user)
		}
	}

	checkoutResourceRest := models.CheckoutResourceRest{}
	checkoutResourceRest.CreatedBy = models.CreatedByRest{
		ID:       req.Header.Get("Eric-Identity"),
		Email:    email,
		Forename: forename,
		Surname:  surname,
	}
	checkoutResourceRest.Amount = totalAmount
	checkoutResourceRest.DeliveryFee = incomingCheckoutResourceRequest.DeliveryFee
	checkoutResourceRest.CustomerAddress = incomingCheckoutResourceRequest.CustomerAddress
	checkoutResourceRest.LineItems = incomingCheckoutResourceRequest.LineItems
	// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
	checkoutResourceRest.CreatedAt = time.Now().Truncate(time.Millisecond)
	checkoutResourceRest.Reference = incomingCheckoutResourceRequest.Reference
	checkoutResourceRest.Status = Pending.String()

	checkoutResourceRest.MetaData = models.CheckoutResourceMetaDataRest{
		ID:          generateID(),
		RedirectURI: incomingCheckoutResourceRequest.RedirectURI,
		State:       incomingCheckoutResourceRequest.State,
	}

	journeyURL := service.Config.WebURL + "/checkouts/" + checkoutResourceRest.MetaData.ID + "/pay"
	checkoutResourceRest.Links = models.CheckoutLinksRest{
		Journey: journeyURL,
		Self:    fmt.Sprintf("checkouts/%s", checkoutResourceRest.MetaData.ID),
	}

	checkoutResourceDB := transformers.CheckoutTransformer{}.TransformToDB(checkoutResourceRest)

	err = service.DAO.CreateCheckoutResource(&checkoutResourceDB)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing to MongoDB: %v", err)
	}

	return &checkoutResourceRest, Success, nil
}

// GetCheckoutSession retrieves the checkout session with the given id
func (service *CheckoutService) GetCheckoutSession(req *http.Request, id string) (*models.CheckoutResourceRest, ResponseType, error) {
	checkoutResource, err := service.DAO.GetCheckoutResource(id)
	if err != nil {
		err = fmt.Errorf("error getting checkout resource from db: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}
	if checkoutResource == nil {
		log.TraceR(req, "checkout session not found", log.Data{"checkout_id": id})
		return nil, NotFound, nil
	}

	checkoutResourceRest := transformers.CheckoutTransformer{}.TransformToRest(*checkoutResource)

	return &checkoutResourceRest, Success, nil
}

// PatchCheckoutSession patches and updates the checkout session
func (service *CheckoutService) PatchCheckoutSession(req *http.Request, id string, checkoutUpdate models.CheckoutResourceRest) (ResponseType, error) {

	if checkoutUpdate.PaymentMethod == "" && checkoutUpdate.Status == "" {
		return InvalidData, fmt.Errorf("no valid fields for the patch request have been supplied for resource [%s]", id)
	}

	checkoutResourceUpdateDB := transformers.CheckoutTransformer{}.TransformToDB(checkoutUpdate)

	err := service.DAO.PatchCheckoutResource(id, &checkoutResourceUpdateDB)
	if err != nil {
		return Error, fmt.Errorf("error patching checkout session on database: [%v]", err)
	}

	return Success, nil
}

// StoreExternalSessionDetails stores the provider-side session id and the
// pending order id for the redirect flow
func (service *CheckoutService) StoreExternalSessionDetails(id, externalSessionID, pendingOrderID string) error {
	update := models.CheckoutResourceDB{
		ExternalSessionID: externalSessionID,
		PendingOrderID:    pendingOrderID,
	}
	return service.DAO.PatchCheckoutResource(id, &update)
}

// StorePaymentIntentID stores the provider-side intent id on the checkout
// session for the direct flow
func (service *CheckoutService) StorePaymentIntentID(id, paymentIntentID string) error {
	update := models.CheckoutResourceDB{
		PaymentIntentID: paymentIntentID,
	}
	return service.DAO.PatchCheckoutResource(id, &update)
}

// UpdateCheckoutStatus patches the status of the checkout session
func (service *CheckoutService) UpdateCheckoutStatus(req *http.Request, checkoutSession models.CheckoutResourceRest, status CheckoutStatus) error {
	update := models.CheckoutResourceRest{Status: status.String()}
	if status == Paid {
		// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
		update.CompletedAt = time.Now().Truncate(time.Millisecond)
	}
	_, err := service.PatchCheckoutSession(req, checkoutSession.MetaData.ID, update)
	if err != nil {
		return fmt.Errorf("error updating checkout status: [%s]", err)
	}
	return nil
}

// IsExpired returns whether a checkout session has passed its configured expiry window
func IsExpired(checkoutSession models.CheckoutResourceRest, cfg *config.Config) (bool, error) {
	expiryTimeInMinutes, err := strconv.Atoi(cfg.ExpiryTimeInMinutes)
	if err != nil {
		return false, fmt.Errorf("error converting expiry time to int: [%v]", err)
	}

	// Sessions already closed never expire
	if checkoutSession.Status == Paid.String() {
		return false, nil
	}

	expiryTime := checkoutSession.CreatedAt.Add(time.Minute * time.Duration(expiryTimeInMinutes))
	return time.Now().After(expiryTime), nil
}

func getTotalAmount(lineItems []models.LineItemRest, deliveryFee string) (string, error) {
	var totalAmount decimal.Decimal
	for _, item := range lineItems {
		if !amountFormat.MatchString(item.Amount) {
			return "", fmt.Errorf("amount [%s] format incorrect", item.Amount)
		}

		amount, _ := decimal.NewFromString(item.Amount)
		totalAmount = totalAmount.Add(amount)
	}

	if deliveryFee != "" {
		if !amountFormat.MatchString(deliveryFee) {
			return "", fmt.Errorf("delivery fee [%s] format incorrect", deliveryFee)
		}
		fee, _ := decimal.NewFromString(deliveryFee)
		totalAmount = totalAmount.Add(fee)
	}

	return totalAmount.StringFixed(2), nil
}

// validateLineItemResources checks each line item that carries a catalogue
// resource link against the catalogue, in parallel. An item priced
// differently to its catalogue resource invalidates the draft.
func (service *CheckoutService) validateLineItemResources(req *http.Request, lineItems []models.LineItemRest) error {
	g, ctx := errgroup.WithContext(req.Context())
	g.SetLimit(4)

	for _, item := range lineItems {
		if item.Links.Resource == "" {
			continue
		}

		item := item
		g.Go(func() error {
			err := validateResource(item.Links.Resource, &service.Config)
			if err != nil {
				return err
			}

			resourceReq, err := http.NewRequestWithContext(ctx, "GET", item.Links.Resource, nil)
			if err != nil {
				return fmt.Errorf("failed to create catalogue resource request: [%v]", err)
			}

			var client http.Client
			resp, err := client.Do(resourceReq)
			if err != nil {
				return fmt.Errorf("error getting catalogue resource: [%v]", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("error status [%v] getting catalogue resource [%s]", resp.StatusCode, item.Links.Resource)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("error reading catalogue resource: [%v]", err)
			}

			catalogueItem := &models.CatalogueItemRest{}
			err = json.Unmarshal(body, catalogueItem)
			if err != nil {
				return fmt.Errorf("error reading catalogue resource: [%v]", err)
			}

			itemAmount, _ := decimal.NewFromString(item.Amount)
			unitAmount, err := decimal.NewFromString(catalogueItem.Amount)
			if err != nil {
				return fmt.Errorf("invalid amount in catalogue resource [%s]: [%v]", item.Links.Resource, err)
			}

			expected := unitAmount.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if !itemAmount.Equal(expected) {
				return fmt.Errorf("amount for item [%s] does not match catalogue price", item.ItemCode)
			}

			return nil
		})
	}

	return g.Wait()
}

// Generates a string of 20 numbers made up of 7 random numbers, followed by 13 numbers derived from the current time
func generateID() (i string) {
	rand.Seed(time.Now().UTC().UnixNano())
	ranNumber := fmt.Sprintf("%07d", rand.Intn(9999999))
	millis := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10)
	return ranNumber + millis
}

func validateResource(resource string, cfg *config.Config) error {
	parsedURL, err := url.Parse(resource)
	if err != nil {
		return err
	}
	resourceDomain := strings.Join([]string{parsedURL.Scheme, parsedURL.Host}, "://")

	allowList := strings.Split(cfg.DomainAllowList, ",")
	matched := false
	for _, domain := range allowList {
		if resourceDomain == domain {
			matched = true
			break
		}
	}
	if !matched {
		err = fmt.Errorf("invalid resource domain: %s", resourceDomain)
		return err
	}
	return err
}

func validateIncomingCheckout(incomingCheckoutResourceRequest models.IncomingCheckoutResourceRequest) error {
	validate := validator.New()
	return validate.Struct(incomingCheckoutResourceRequest)
}
