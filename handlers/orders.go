package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/gorilla/mux"
)

// HandleGetOrder retrieves a committed order by id for support and
// reconciliation use
func HandleGetOrder(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["order_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderResource, responseType, err := checkoutService.GetOrder(id)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order resource: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if responseType == service.NotFound {
		log.InfoR(req, "order resource not found", log.Data{"order_id": id})
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(orderResource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.InfoR(req, "Successful GET request for order resource", log.Data{"order_id": id})
}
