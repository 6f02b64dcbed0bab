package service

import (
	"context"
	"fmt"
	"io"

	"rentdesk-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
	business string
}

func NewEmailService(host string, port int, username, password, from, businessName string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		business: businessName,
	}
}

func (s *emailService) SendInvoice(ctx context.Context, to, customerName, invoiceNo string, total float64, attach func(io.Writer) error) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Invoice %s from %s", invoiceNo, s.business))

	body := fmt.Sprintf("Hello %s,\n\nPlease find your invoice %s attached. The invoice total is %s.\n\nBest regards,\n%s",
		customerName, invoiceNo, utils.FormatAmount(total), s.business)
	m.SetBody("text/plain", body)
	m.Attach(fmt.Sprintf("invoice-%s.pdf", invoiceNo), gomail.SetCopyFunc(attach))

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invoice email: %w", err)
	}
	return nil
}

func (s *emailService) SendDailySalesReport(ctx context.Context, to, date string, orderCount int32, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Daily sales report - %s", date))

	body := fmt.Sprintf("Sales for %s:\n\nOrders: %d\nTotal: %s\n\n%s",
		date, orderCount, utils.FormatAmount(total), s.business)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send sales report: %w", err)
	}
	return nil
}
