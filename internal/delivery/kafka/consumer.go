package kafka

import (
	"context"
	"errors"
	"strconv"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"order-store/internal/pkg/errs"
	"order-store/internal/service"
)

const maxBackoff = 5 * time.Second

type Config struct {
	Brokers     []string
	GroupID     string
	Topic       string
	DLQ         string
	MaxRetries  int
	BaseBackoff time.Duration
}

// MessageHandler stores one message payload.
type MessageHandler interface {
	HandleMessage(ctx context.Context, payload []byte) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	cfg    Config
	reader messageReader
	dlq    messageWriter
	h      MessageHandler
	log    *logrus.Entry
}

func NewConsumer(cfg Config, h MessageHandler) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        100 * time.Millisecond,
		CommitInterval: 0,
	})

	var dlq messageWriter
	if cfg.DLQ != "" {
		dlq = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.DLQ,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		}
	}
	return newConsumer(cfg, r, dlq, h)
}

func newConsumer(cfg Config, r messageReader, dlq messageWriter, h MessageHandler) *Consumer {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 200 * time.Millisecond
	}
	return &Consumer{
		cfg:    cfg,
		reader: r,
		dlq:    dlq,
		h:      h,
		log:    logrus.WithFields(logrus.Fields{"topic": cfg.Topic, "group": cfg.GroupID}),
	}
}

// Subscribe consumes until ctx is cancelled. A message is committed once it
// is stored or parked in the DLQ.
func (c *Consumer) Subscribe(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			c.log.WithError(err).Error("kafka fetch failed")
			if !wait(ctx, 300*time.Millisecond) {
				return nil
			}
			continue
		}

		l := c.log.WithFields(logrus.Fields{"partition": m.Partition, "offset": m.Offset})
		l.WithField("key", string(m.Key)).Debug("message fetched")

		attempts, last := c.handle(ctx, m)
		if last != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !c.park(ctx, m, attempts, last, l) {
				if ctx.Err() != nil {
					return nil
				}
				continue
			}
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.WithError(err).Error("commit failed")
		}
	}
}

// handle runs the handler with retries and reports the attempts made and the
// final error, nil on success.
func (c *Consumer) handle(ctx context.Context, m kafka.Message) (int, error) {
	var last error
	attempt := 0
	for ; attempt <= c.cfg.MaxRetries; attempt++ {
		if !wait(ctx, backoff(attempt, c.cfg.BaseBackoff)) {
			return attempt, ctx.Err()
		}
		last = c.h.HandleMessage(ctx, m.Value)
		if last == nil {
			return attempt + 1, nil
		}
		if isNonRetryable(last) {
			return attempt + 1, last
		}
	}
	return attempt, last
}

// park writes a failed message to the DLQ. It reports false when the message
// must not be committed.
func (c *Consumer) park(ctx context.Context, m kafka.Message, attempts int, cause error, l *logrus.Entry) bool {
	if c.dlq == nil {
		l.WithError(cause).Warn("DLQ disabled, drop message")
		return true
	}

	headers := append([]kafka.Header(nil), m.Headers...)
	dlqMsg := kafka.Message{
		Key:   m.Key,
		Value: m.Value,
		Headers: append(headers,
			kafka.Header{Key: "x-dlq-reason", Value: []byte(trimErr(cause))},
			kafka.Header{Key: "x-dlq-attempts", Value: []byte(strconv.Itoa(attempts))},
			kafka.Header{Key: "x-dlq-ts", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
			kafka.Header{Key: "x-dlq-source-topic", Value: []byte(c.cfg.Topic)},
			kafka.Header{Key: "x-dlq-group", Value: []byte(c.cfg.GroupID)},
		),
	}
	if err := c.dlq.WriteMessages(ctx, dlqMsg); err != nil {
		if ctx.Err() == nil {
			l.WithError(err).Error("write to DLQ failed")
			wait(ctx, 500*time.Millisecond)
		}
		return false
	}
	l.WithError(cause).Warn("message moved to DLQ")
	return true
}

func (c *Consumer) Close() error {
	var first error
	if c.reader != nil {
		if err := c.reader.Close(); err != nil {
			first = err
		}
	}
	if c.dlq != nil {
		if err := c.dlq.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func backoff(n int, base time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	if n > 16 {
		return maxBackoff
	}
	d := base * (1 << (n - 1))
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

func trimErr(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > 1000 {
		return s[:1000]
	}
	return s
}

func isNonRetryable(err error) bool {
	return errors.Is(err, service.ErrDecode) || errors.Is(err, errs.ErrValidation)
}
