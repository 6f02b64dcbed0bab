package http

import (
	"github.com/gorilla/mux"
)

// NewRouter wires all handlers under /api/v1.
func NewRouter(orders *OrderHandler, invoices *InvoiceHandler, customers *CustomerHandler) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/orders", orders.CreateOrder).Methods("POST")
	api.HandleFunc("/bills", orders.GenerateBill).Methods("POST")
	api.HandleFunc("/orders/{id}/items", orders.ReplaceItems).Methods("PUT")
	api.HandleFunc("/orders/{id}", orders.GetOrder).Methods("GET")
	api.HandleFunc("/orders/{id}", orders.DeleteOrder).Methods("DELETE")

	api.HandleFunc("/orders/{id}/invoice", invoices.Download).Methods("GET")
	api.HandleFunc("/orders/{id}/invoice/email", invoices.Email).Methods("POST")

	api.HandleFunc("/customers", customers.Create).Methods("POST")
	api.HandleFunc("/customers", customers.Search).Methods("GET")
	api.HandleFunc("/customers/{id}", customers.Update).Methods("PUT")
	api.HandleFunc("/customers/{id}/status", customers.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/customers/{id}", customers.Delete).Methods("DELETE")

	return router
}
