package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/mailer"
	"floorquote/internal/model"
	"floorquote/internal/repository"
)

// ContactInput is a validated contact-form submission.
type ContactInput struct {
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Timeline    string
	Message     string
}

// QuoteService is the request-normalization-and-fan-out pipeline behind the
// contact form and the store cart. Each accepted request persists an order
// record, upserts the customer, and dispatches two notification emails.
type QuoteService interface {
	SubmitContact(ctx context.Context, in ContactInput) error
	SubmitOrder(ctx context.Context, req OrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
}

type quoteService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	mailer       mailer.Mailer
	contactEmail string
}

// NewQuoteService creates a new quote pipeline. The mailer is constructed
// once at process start and passed in by handle.
func NewQuoteService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	m mailer.Mailer,
	contactEmail string,
) QuoteService {
	return &quoteService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		mailer:       m,
		contactEmail: contactEmail,
	}
}

// SubmitContact runs the contact-form pipeline: persist an order record of
// the inquiry, upsert the customer, notify the business, acknowledge the
// submitter. The business notification is the primary side effect; a failed
// customer acknowledgment is logged but does not fail the request.
func (s *quoteService) SubmitContact(ctx context.Context, in ContactInput) error {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	order := &model.Order{
		Customer: model.OrderCustomer{
			Name:  strings.TrimSpace(in.Name),
			Email: email,
			Phone: strings.TrimSpace(in.Phone),
			Notes: in.Message,
		},
		Source: model.OrderSourceContact,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("persist contact request: %w", err)
	}

	// Customer upsert failures never block the notification purpose of the request.
	if err := s.customerRepo.Upsert(ctx, email, order.Customer.Name, order.Customer.Phone); err != nil {
		log.Error().Err(err).Str("component", "SubmitContact").Msg("customer upsert failed")
	}

	if err := s.mailer.Send(mailer.Message{
		To:      s.contactEmail,
		ReplyTo: email,
		Subject: "New quote inquiry from " + order.Customer.Name,
		HTML:    contactBusinessBody(in),
	}); err != nil {
		return fmt.Errorf("send business notification: %w", err)
	}

	if err := s.mailer.Send(mailer.Message{
		To:      email,
		Subject: "We received your inquiry",
		HTML:    contactAckBody(in),
	}); err != nil {
		log.Error().Err(err).Str("component", "SubmitContact").Msg("customer acknowledgment failed")
	}

	return nil
}

// SubmitOrder runs the store-cart pipeline. Rejects empty carts, normalizes
// the loose payload, persists the order, upserts the customer when an email
// was supplied, and fans out the two notification emails.
func (s *quoteService) SubmitOrder(ctx context.Context, req OrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.ErrNoItems
	}

	order := NormalizeOrder(req)
	if err := s.orderRepo.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if order.Customer.Email != "" {
		if err := s.customerRepo.Upsert(ctx, order.Customer.Email, order.Customer.Name, order.Customer.Phone); err != nil {
			log.Error().Err(err).Str("component", "SubmitOrder").Msg("customer upsert failed")
		}
	}

	if err := s.mailer.Send(mailer.Message{
		To:      s.contactEmail,
		ReplyTo: order.Customer.Email,
		Subject: "New order request from " + order.Customer.Name,
		HTML:    orderBusinessBody(&order),
	}); err != nil {
		return nil, fmt.Errorf("send business notification: %w", err)
	}

	if order.Customer.Email != "" {
		if err := s.mailer.Send(mailer.Message{
			To:      order.Customer.Email,
			Subject: "Your quote request",
			HTML:    orderAckBody(&order),
		}); err != nil {
			log.Error().Err(err).Str("component", "SubmitOrder").Msg("customer confirmation failed")
		}
	}

	return &order, nil
}

func (s *quoteService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.List(ctx)
}

func contactBusinessBody(in ContactInput) string {
	var b strings.Builder
	b.WriteString("<h2>New quote inquiry</h2>")
	b.WriteString("<p><strong>Name:</strong> " + escapeText(in.Name) + "</p>")
	b.WriteString("<p><strong>Email:</strong> " + escapeText(in.Email) + "</p>")
	if in.Phone != "" {
		b.WriteString("<p><strong>Phone:</strong> " + escapeText(in.Phone) + "</p>")
	}
	if in.ProjectType != "" {
		b.WriteString("<p><strong>Project type:</strong> " + escapeText(in.ProjectType) + "</p>")
	}
	if in.Timeline != "" {
		b.WriteString("<p><strong>Timeline:</strong> " + escapeText(in.Timeline) + "</p>")
	}
	b.WriteString("<p><strong>Message:</strong><br>" + escapeText(in.Message) + "</p>")
	return b.String()
}

func contactAckBody(in ContactInput) string {
	var b strings.Builder
	b.WriteString("<p>Hi " + escapeText(in.Name) + ",</p>")
	b.WriteString("<p>Thanks for reaching out. We received your inquiry and will get back to you within one business day.</p>")
	b.WriteString("<p>Your message:<br>" + escapeText(in.Message) + "</p>")
	return b.String()
}

func orderBusinessBody(order *model.Order) string {
	var b strings.Builder
	b.WriteString("<h2>New order request</h2>")
	b.WriteString("<p><strong>Customer:</strong> " + escapeText(order.Customer.Name) + "</p>")
	if order.Customer.Email != "" {
		b.WriteString("<p><strong>Email:</strong> " + escapeText(order.Customer.Email) + "</p>")
	}
	if order.Customer.Phone != "" {
		b.WriteString("<p><strong>Phone:</strong> " + escapeText(order.Customer.Phone) + "</p>")
	}
	if order.Customer.Notes != "" {
		b.WriteString("<p><strong>Notes:</strong><br>" + escapeText(order.Customer.Notes) + "</p>")
	}

	b.WriteString(`<table border="1" cellpadding="6" cellspacing="0">`)
	b.WriteString("<tr><th>#</th><th>Item</th><th>Qty</th><th>Unit price</th><th>Line total</th></tr>")
	for i, item := range order.Items {
		name := escapeText(item.Name)
		if item.Description != "" {
			name += "<br><small>" + escapeText(item.Description) + "</small>"
		}
		b.WriteString(fmt.Sprintf(
			"<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			i+1, name, formatNumber(item.Qty), formatMoney(item.UnitPrice), formatMoney(item.LineTotal),
		))
	}
	b.WriteString("</table>")

	if order.Total != nil {
		b.WriteString(fmt.Sprintf("<p><strong>Total:</strong> $%.2f</p>", *order.Total))
	}
	return b.String()
}

func orderAckBody(order *model.Order) string {
	var b strings.Builder
	b.WriteString("<p>Hi " + escapeText(order.Customer.Name) + ",</p>")
	b.WriteString("<p>Thanks for your quote request. Here is what we received:</p><ul>")
	for _, item := range order.Items {
		b.WriteString("<li>" + escapeText(item.Name) + " &times; " + formatNumber(item.Qty) + "</li>")
	}
	b.WriteString("</ul>")
	if order.Total != nil {
		b.WriteString(fmt.Sprintf("<p>Estimated total: $%.2f</p>", *order.Total))
	}
	b.WriteString("<p>We will follow up shortly to confirm pricing and scheduling.</p>")
	return b.String()
}

// formatMoney renders a known amount or "-" for unknown.
func formatMoney(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *v)
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
