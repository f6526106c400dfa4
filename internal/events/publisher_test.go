package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"financial-dashboard/internal/finance"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	declared   []string
	published  []amqp091.Publishing
	keys       []string
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, exchange+"/"+key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func recordedTransaction() finance.Transaction {
	return finance.Transaction{
		ID:        42,
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("96.7"),
		Kind:      finance.KindExpense,
		Category:  "Groceries",
		AccountID: 1,
	}
}

func TestPublisher_PublishTransactionRecorded(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "finance", "transaction.recorded", nil)
	require.NoError(t, p.setup())
	assert.Equal(t, []string{"finance:topic"}, ch.declared)

	err := p.PublishTransactionRecorded(context.Background(), recordedTransaction())
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	assert.Equal(t, []string{"finance/transaction.recorded"}, ch.keys)
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, amqp091.Persistent, ch.published[0].DeliveryMode)

	var msg TransactionRecorded
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &msg))
	assert.Equal(t, int64(42), msg.ID)
	assert.Equal(t, "2024-01-15", msg.Date)
	assert.Equal(t, "expense", msg.Kind)
	assert.Equal(t, "96.70", msg.Amount)
	assert.Equal(t, "Groceries", msg.Category)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublisher_HookSwallowsErrors(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p := newPublisher(ch, "finance", "transaction.recorded", nil)

	assert.NotPanics(t, func() {
		p.Hook()(context.Background(), recordedTransaction())
	})
	assert.Empty(t, ch.published)
}

func TestPublisher_Nil(t *testing.T) {
	var p *Publisher

	assert.NoError(t, p.PublishTransactionRecorded(context.Background(), recordedTransaction()))
	assert.NoError(t, p.Close())
}
