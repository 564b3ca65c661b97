// Package events принимает события активностей участников из очереди RabbitMQ и начисляет за них баллы.
package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/club-loyal/internal/domain"
)

const (
	defaultServiceTimeout      = 3 * time.Second
	defaultRetryPause          = 2 * time.Second
	defaultWorkers        uint = 4

	// DefaultDeliveryLimit сколько раз сообщение доставляется, прежде чем уйти в очередь недоставленных.
	DefaultDeliveryLimit = 10
	deliveryCountHeader  = "x-delivery-count"
)

// ActivityMessage тело сообщения очереди.
type ActivityMessage struct {
	MemberID int64                  `json:"memberId"`
	Events   []domain.ActivityEvent `json:"events"`
}

type outcome string

const (
	outcomeAck     outcome = "ack"
	outcomeRequeue outcome = "requeue"
	outcomeReject  outcome = "reject"
)

// Processor обрабатывает сообщения с активностями пулом воркеров.
type Processor struct {
	svs           Servicer
	l             *logrus.Entry
	workers       uint
	retryPause    time.Duration
	deliveryLimit int64
}

func New(svs Servicer, l *logrus.Logger) *Processor {
	return &Processor{
		svs: svs,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "processor",
		}),
		workers:       defaultWorkers,
		retryPause:    defaultRetryPause,
		deliveryLimit: DefaultDeliveryLimit,
	}
}

// SetWorkers устанавливает кол-во воркеров, параллельно обрабатывающих сообщения.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetRetryPause устанавливает паузу перед возвратом сообщения в очередь.
func (p *Processor) SetRetryPause(pause time.Duration) *Processor {
	p.retryPause = pause
	return p
}

// SetDeliveryLimit устанавливает предельное кол-во доставок сообщения. Сообщение, упавшее на последней доставке,
// отклоняется без возврата и попадает в очередь недоставленных.
func (p *Processor) SetDeliveryLimit(limit int64) *Processor {
	if limit > 0 {
		p.deliveryLimit = limit
	}
	return p
}

// Run читает deliveries до отмены контекста или закрытия канала и ждет завершения всех воркеров.
//
// Каждое сообщение подтверждается, если ни одно событие не упало с ошибкой хранилища. Иначе сообщение
// возвращается в очередь после паузы: повторная доставка безопасна, уже начисленные награды будут пропущены
// по ключу идемпотентности. Сообщения, которые не удалось разобрать или исчерпавшие лимит доставок, отклоняются
// без возврата.
func (p *Processor) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	p.l.WithField("workers", p.workers).Info("Starting")

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) // nolint:gosec

	for i := range p.workers {
		go p.worker(ctx, wg, i+1, deliveries)
	}
	wg.Wait()

	p.l.Info("Stopped")
}

func (p *Processor) worker(ctx context.Context, wg *sync.WaitGroup, workerID uint, deliveries <-chan amqp.Delivery) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			l := p.l.WithFields(logrus.Fields{
				"worker":      workerID,
				"deliveryTag": d.DeliveryTag,
			})
			if err := p.settle(d, p.handle(ctx, l, d)); err != nil {
				l.WithError(err).Error("settle delivery")
			}
		}
	}
}

// handle разбирает сообщение и начисляет баллы. Возвращает решение по сообщению.
func (p *Processor) handle(ctx context.Context, l *logrus.Entry, d amqp.Delivery) outcome {
	msg, err := decodeMessage(d.Body)
	if err != nil {
		l.WithError(err).Warn("reject message")
		return outcomeReject
	}
	l = l.WithField("memberID", msg.MemberID)

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout*time.Duration(len(msg.Events)))
	results := p.svs.ProcessMultipleActivities(reqCtx, msg.MemberID, msg.Events)
	cancel()

	if !results.HasFailed() {
		l.WithField("created", len(results.Created())).Debug("Processed")
		return outcomeAck
	}

	attempt := deliveryCount(d) + 1
	if attempt >= p.deliveryLimit {
		l.WithField("attempt", attempt).Error("delivery limit reached, message is dead-lettered")
		return outcomeReject
	}

	pause := time.Duration(jitter(float64(p.retryPause), 0.2, 0.2)) // nolint:mnd
	l.WithField("pause", pause).Warn("store failure, message will be requeued")
	select {
	case <-ctx.Done():
	case <-time.After(pause):
	}
	return outcomeRequeue
}

func (p *Processor) settle(d amqp.Delivery, o outcome) error {
	var err error
	switch o {
	case outcomeAck:
		err = d.Ack(false)
	case outcomeRequeue:
		err = d.Nack(false, true)
	case outcomeReject:
		err = d.Reject(false)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", o, err)
	}
	return nil
}

func decodeMessage(body []byte) (*ActivityMessage, error) {
	var msg ActivityMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMessage, err.Error())
	}
	if msg.MemberID <= 0 {
		return nil, fmt.Errorf("%w: memberId must be positive", ErrInvalidMessage)
	}
	if len(msg.Events) == 0 {
		return nil, fmt.Errorf("%w: no events", ErrInvalidMessage)
	}
	return &msg, nil
}

// deliveryCount кол-во предыдущих доставок сообщения. Заголовок выставляет quorum очередь. Без заголовка
// повторная доставка считается одной попыткой.
func deliveryCount(d amqp.Delivery) int64 {
	switch v := d.Headers[deliveryCountHeader].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	}
	if d.Redelivered {
		return 1
	}
	return 0
}
