package main

import (
	"context"
	"fmt"
	"io"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/addorderitem"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/changecustomeraddress"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/createproduct"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/placeorder"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/registercustomer"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/handlers"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/orderrepository"
)

// scenario walks through the checkout use cases, each of them notifying an event.
type scenario struct {
	features *features
	orders   *orderrepository.Repository
	mailer   *handlers.OutboxMailer
	audit    *auditLog
}

func newScenario(
	f *features,
	orders *orderrepository.Repository,
	mailer *handlers.OutboxMailer,
	audit *auditLog,
) *scenario {

	return &scenario{features: f, orders: orders, mailer: mailer, audit: audit}
}

func (s *scenario) run(ctx context.Context, out io.Writer, printAudit bool) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"register customer", func() error {
			_, err := s.features.registerCustomer.Handle(ctx,
				registercustomer.BuildCommand("customer-1", "Ada Lovelace"))
			return err
		}},
		{"change customer address", func() error {
			_, err := s.features.changeCustomerAddress.Handle(ctx,
				changecustomeraddress.BuildCommand("customer-1", "Analytical Street", 12, "10115", "London"))
			return err
		}},
		{"create product keyboard", func() error {
			_, err := s.features.createProduct.Handle(ctx,
				createproduct.BuildCommand("product-1", "Keyboard", 4999))
			return err
		}},
		{"create product mouse", func() error {
			_, err := s.features.createProduct.Handle(ctx,
				createproduct.BuildCommand("product-2", "Mouse", 1999))
			return err
		}},
		{"place order", func() error {
			_, err := s.features.placeOrder.Handle(ctx,
				placeorder.BuildCommand("order-1", "customer-1", placeorder.Line{ProductID: "product-1", Quantity: 1}))
			return err
		}},
		{"add order item", func() error {
			_, err := s.features.addOrderItem.Handle(ctx,
				addorderitem.BuildCommand("order-1", "product-2", 2))
			return err
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "orders:")
	for _, order := range orders {
		_, _ = fmt.Fprintf(out, "  %s customer=%s items=%d total=%d cents\n",
			order.ID(), order.CustomerID(), len(order.Items()), order.Total())
	}

	_, _ = fmt.Fprintln(out, "emails:")
	for _, email := range s.mailer.Sent() {
		_, _ = fmt.Fprintf(out, "  to=%s subject=%q\n", email.To, email.Subject)
	}

	if printAudit {
		_, _ = fmt.Fprintln(out, "audit log:")
		_, _ = out.Write(s.audit.buffer.Bytes())
	}

	return nil
}
