// Package events публикует принятые pending транзакции во внешний процесс сеттлмента.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/tubecash/internal/domain"
)

const (
	// SettlementExchange durable topic exchange, который слушает процесс сеттлмента.
	SettlementExchange = "tubecash.settlement"

	routingKeyPrefix = "transaction."
)

// TransactionSubmittedEvent полезная нагрузка события о новой pending транзакции.
type TransactionSubmittedEvent struct {
	TransactionID int64     `json:"transaction_id"`
	AccountID     int64     `json:"account_id"`
	Type          string    `json:"type"`
	Amount        int64     `json:"amount"`
	Method        string    `json:"method,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AMQPPublisher публикует события сеттлмента в RabbitMQ. Ошибки публикации логирует
// сам и отдает наверх: транзакция к этому моменту уже записана в леджер, так что
// сбой фида не должен откатывать прием заявки.
type AMQPPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	l       *logrus.Entry
}

func NewAMQPPublisher(amqpURL string, l *logrus.Logger) (*AMQPPublisher, error) {
	conn, connErr := amqp091.Dial(amqpURL)
	if connErr != nil {
		return nil, fmt.Errorf("dialing amqp: %w", connErr)
	}

	channel, channelErr := conn.Channel()
	if channelErr != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("opening amqp channel: %w", channelErr)
	}

	if declareErr := channel.ExchangeDeclare(
		SettlementExchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); declareErr != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declaring settlement exchange: %w", declareErr)
	}

	return &AMQPPublisher{
		conn:    conn,
		channel: channel,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"exchange":  SettlementExchange,
		}),
	}, nil
}

// TransactionSubmitted публикует событие с ключом маршрутизации transaction.<type>.
func (p *AMQPPublisher) TransactionSubmitted(ctx context.Context, transaction *domain.Transaction) error {
	body, marshalErr := json.Marshal(TransactionSubmittedEvent{
		TransactionID: transaction.ID,
		AccountID:     transaction.AccountID,
		Type:          string(transaction.Type),
		Amount:        transaction.Amount,
		Method:        string(transaction.Method),
		Reference:     transaction.Reference,
		CreatedAt:     transaction.CreatedAt,
	})
	if marshalErr != nil {
		p.l.WithError(marshalErr).Error("marshaling settlement event")
		return fmt.Errorf("marshaling settlement event: %w", marshalErr)
	}

	routingKey := routingKeyPrefix + string(transaction.Type)
	publishErr := p.channel.PublishWithContext(ctx,
		SettlementExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if publishErr != nil {
		p.l.WithError(publishErr).
			WithField("routingKey", routingKey).
			Error("publishing settlement event")
		return fmt.Errorf("publishing settlement event: %w", publishErr)
	}
	return nil
}

func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// NopPublisher заглушка на случай, когда AMQP не сконфигурирован: прием заявок
// работает, фид сеттлмента просто не отправляется.
type NopPublisher struct{}

func (NopPublisher) TransactionSubmitted(_ context.Context, _ *domain.Transaction) error {
	return nil
}
