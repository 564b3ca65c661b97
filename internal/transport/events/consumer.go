package events

import (
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQueue         = "loyalty.activities"
	deadLetterSuffix     = ".dead"
	defaultPrefetchCount = 20
	consumerTag          = "club-loyal"
)

// Consumer подписка на очередь событий активностей. Подтверждение сообщений ручное, этим занимается Processor.
type Consumer struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	l     *logrus.Entry
}

// NewConsumer подключается к брокеру и объявляет durable очередь queue. Пустое имя очереди заменяется на DefaultQueue,
// неположительный deliveryLimit на DefaultDeliveryLimit.
func NewConsumer(amqpURL, queue string, deliveryLimit int64, l *logrus.Logger) (*Consumer, error) {
	if queue == "" {
		queue = DefaultQueue
	}
	if deliveryLimit <= 0 {
		deliveryLimit = DefaultDeliveryLimit
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("new consumer: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("new consumer: open channel: %w", err)
	}

	if err = declareQueues(ch, queue, deliveryLimit); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("new consumer: %w", err)
	}

	if err = ch.Qos(defaultPrefetchCount, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("new consumer: qos: %w", err)
	}

	return &Consumer{
		conn:  conn,
		ch:    ch,
		queue: queue,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "consumer",
			"queue":     queue,
		}),
	}, nil
}

// Deliveries начинает потребление очереди. Канал закрывается при закрытии соединения.
func (c *Consumer) Deliveries() (<-chan amqp.Delivery, error) {
	deliveries, err := c.ch.Consume(c.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume `%s`: %w", c.queue, err)
	}
	c.l.Info("Consuming")
	return deliveries, nil
}

func (c *Consumer) Close() error {
	var errs []error
	if c.ch != nil {
		if err := c.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if c.conn != nil && !c.conn.IsClosed() {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close consumer: %w", errors.Join(errs...))
	}
	return nil
}

// declareQueues объявляет quorum очередь queue и очередь queue + deadLetterSuffix. Брокер сам перекладывает
// в нее сообщения, отклоненные без возврата или превысившие deliveryLimit доставок.
func declareQueues(ch *amqp.Channel, queue string, deliveryLimit int64) error {
	deadLetterQueue := queue + deadLetterSuffix
	if _, err := ch.QueueDeclare(deadLetterQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue `%s`: %w", deadLetterQueue, err)
	}

	args := amqp.Table{
		amqp.QueueTypeArg:           amqp.QueueTypeQuorum,
		"x-delivery-limit":          deliveryLimit,
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": deadLetterQueue,
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, args); err != nil {
		return fmt.Errorf("declare queue `%s`: %w", queue, err)
	}
	return nil
}
