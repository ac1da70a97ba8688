package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "floorquote/internal/errors"
	"floorquote/internal/mailer"
	"floorquote/internal/model"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Upsert(ctx context.Context, email, name, phone string) error {
	args := m.Called(ctx, email, name, phone)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(msg mailer.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

const businessEmail = "office@floors.test"

func newQuoteService(customers *MockCustomerRepository, orders *MockOrderRepository, m *MockMailer) QuoteService {
	return NewQuoteService(customers, orders, m, businessEmail)
}

func TestQuoteService_SubmitOrder_EmptyCart(t *testing.T) {
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	mails := new(MockMailer)

	svc := newQuoteService(customers, orders, mails)
	_, err := svc.SubmitOrder(context.Background(), OrderRequest{})

	assert.Equal(t, apperrors.ErrNoItems, err)
	// No upsert, no persistence, no email on an empty cart.
	customers.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mails.AssertNotCalled(t, "Send", mock.Anything)
}

func TestQuoteService_SubmitOrder_HappyPath(t *testing.T) {
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	mails := new(MockMailer)

	orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
	customers.On("Upsert", mock.Anything, "a@b.com", "Unknown", "").Return(nil)
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == businessEmail
	})).Return(nil).Once()
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "a@b.com"
	})).Return(nil).Once()

	svc := newQuoteService(customers, orders, mails)
	order, err := svc.SubmitOrder(context.Background(), OrderRequest{
		Items:    []OrderItemInput{{Name: "Tile", Qty: 3.0, UnitPrice: 10.0}},
		Customer: OrderCustomerInput{Email: "a@b.com"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, f(30), order.Items[0].LineTotal)
	assert.Equal(t, f(30), order.Total)

	customers.AssertExpectations(t)
	orders.AssertExpectations(t)
	mails.AssertExpectations(t)
}

func TestQuoteService_SubmitOrder_NoCustomerEmail(t *testing.T) {
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	mails := new(MockMailer)

	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	// Only the business notification goes out when no email was supplied.
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == businessEmail
	})).Return(nil).Once()

	svc := newQuoteService(customers, orders, mails)
	_, err := svc.SubmitOrder(context.Background(), OrderRequest{
		Items: []OrderItemInput{{Name: "Tile", Qty: 1.0}},
	})

	assert.NoError(t, err)
	customers.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mails.AssertExpectations(t)
}

func TestQuoteService_SubmitOrder_BusinessEmailFailureIsFatal(t *testing.T) {
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	mails := new(MockMailer)

	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	customers.On("Upsert", mock.Anything, "a@b.com", "Unknown", "").Return(nil)
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == businessEmail
	})).Return(errors.New("smtp down")).Once()

	svc := newQuoteService(customers, orders, mails)
	_, err := svc.SubmitOrder(context.Background(), OrderRequest{
		Items:    []OrderItemInput{{Name: "Tile", Qty: 1.0}},
		Customer: OrderCustomerInput{Email: "a@b.com"},
	})

	assert.Error(t, err)
	// The customer confirmation is never attempted after the business mail failed.
	mails.AssertNumberOfCalls(t, "Send", 1)
}

func TestQuoteService_SubmitOrder_AckFailureIsNotFatal(t *testing.T) {
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	mails := new(MockMailer)

	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	customers.On("Upsert", mock.Anything, "a@b.com", "Unknown", "").Return(nil)
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == businessEmail
	})).Return(nil).Once()
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "a@b.com"
	})).Return(errors.New("mailbox full")).Once()

	svc := newQuoteService(customers, orders, mails)
	_, err := svc.SubmitOrder(context.Background(), OrderRequest{
		Items:    []OrderItemInput{{Name: "Tile", Qty: 1.0}},
		Customer: OrderCustomerInput{Email: "a@b.com"},
	})

	assert.NoError(t, err)
	mails.AssertExpectations(t)
}

func TestQuoteService_SubmitOrder_UpsertFailureIsSwallowed(t *testing.T) {
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	mails := new(MockMailer)

	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	customers.On("Upsert", mock.Anything, "a@b.com", "Unknown", "").Return(errors.New("db hiccup"))
	mails.On("Send", mock.Anything).Return(nil)

	svc := newQuoteService(customers, orders, mails)
	_, err := svc.SubmitOrder(context.Background(), OrderRequest{
		Items:    []OrderItemInput{{Name: "Tile", Qty: 1.0}},
		Customer: OrderCustomerInput{Email: "a@b.com"},
	})

	assert.NoError(t, err)
}

func TestQuoteService_SubmitContact(t *testing.T) {
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	mails := new(MockMailer)

	var persisted *model.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*model.Order)
		}).Return(nil)
	customers.On("Upsert", mock.Anything, "jane@x.com", "Jane Doe", "").Return(nil)
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == businessEmail && msg.ReplyTo == "jane@x.com"
	})).Return(nil).Once()
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == "jane@x.com"
	})).Return(nil).Once()

	svc := newQuoteService(customers, orders, mails)
	err := svc.SubmitContact(context.Background(), ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Message: "Need flooring quote",
	})

	assert.NoError(t, err)
	assert.NotNil(t, persisted)
	assert.Equal(t, model.OrderSourceContact, persisted.Source)
	assert.Equal(t, "Need flooring quote", persisted.Customer.Notes)

	customers.AssertExpectations(t)
	mails.AssertExpectations(t)
}

func TestQuoteService_SubmitContact_EscapesUserText(t *testing.T) {
	customers := new(MockCustomerRepository)
	orders := new(MockOrderRepository)
	mails := new(MockMailer)

	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	customers.On("Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	var businessBody string
	mails.On("Send", mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == businessEmail
	})).Run(func(args mock.Arguments) {
		businessBody = args.Get(0).(mailer.Message).HTML
	}).Return(nil).Once()
	mails.On("Send", mock.Anything).Return(nil)

	svc := newQuoteService(customers, orders, mails)
	err := svc.SubmitContact(context.Background(), ContactInput{
		Name:    "<script>x</script>",
		Email:   "jane@x.com",
		Message: "line one\nline two",
	})

	assert.NoError(t, err)
	assert.NotContains(t, businessBody, "<script>")
	assert.Contains(t, businessBody, "&lt;script&gt;")
	assert.Contains(t, businessBody, "line one<br>line two")
}
