package service

import (
	"context"

	"rentdesk-backend/internal/invoice"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository"
)

type invoiceService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
}

func NewInvoiceService(orders repository.OrderRepository, customers repository.CustomerRepository) InvoiceService {
	return &invoiceService{orders: orders, customers: customers}
}

func (s *invoiceService) Assemble(ctx context.Context, orderID int32) (*invoice.View, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		logger.Error("invoice assembly failed", "operation", "Assemble", "orderID", orderID, "error", err)
		return nil, err
	}
	items, err := s.orders.ListItems(ctx, orderID)
	if err != nil {
		logger.Error("invoice assembly failed", "operation", "Assemble", "orderID", orderID, "error", err)
		return nil, err
	}

	view := &invoice.View{
		OrderID:         order.ID,
		InvoiceNo:       order.InvoiceNo,
		OrderDate:       order.OrderDate,
		RentStart:       order.RentStart,
		RentEnd:         order.RentEnd,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
	}
	for _, it := range items {
		view.Items = append(view.Items, invoice.Line{
			Product:   it.Product,
			Price:     it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal,
		})
	}
	return view, nil
}
