package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"lvr-storage-service/internal/core/domain"
)

const (
	ingestExchange   = "lvr_exchange"
	ingestRoutingKey = "ingest.report"
)

// IngestReportPublisher emits one event per committed ingestion run.
type IngestReportPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewIngestReportPublisher(url string) (*IngestReportPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(ingestExchange, "direct", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &IngestReportPublisher{conn: conn, channel: channel}, nil
}

func (p *IngestReportPublisher) ReportIngestRun(ctx context.Context, report domain.IngestReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal ingest report: %w", err)
	}

	err = p.channel.PublishWithContext(ctx, ingestExchange, ingestRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish ingest report: %w", err)
	}
	return nil
}

func (p *IngestReportPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
