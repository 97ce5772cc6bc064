package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"

	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/handlers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/metrics"

	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "checkout.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	metrics.Register()

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info("Starting checkout.api.ch.gov.uk service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting checkout.api.ch.gov.uk service")
}
