// Package source drives the day-by-day retrieval of receipts from the
// fiscal data operator.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ofd_import/internal/ofd"
	"ofd_import/internal/receipt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// One query per day with a fixed pause in between; the operator throttles
// aggressively, so the range is never fanned out in parallel.
const defaultPacing = 1 * time.Second

// Client is the remote operator surface the retriever needs.
type Client interface {
	Authenticate(ctx context.Context, apiKey string) (string, error)
	FetchDay(ctx context.Context, taxID, deviceID, storageSerial, token string, day time.Time) ([]ofd.Document, error)
}

// Notifier shows user-facing notices. Fire-and-forget; not part of the
// retrieval result.
type Notifier interface {
	Notify(message string, title ...string)
}

type Retriever struct {
	client   Client
	notifier Notifier
	logger   *zap.Logger
	pacing   time.Duration
}

func NewRetriever(client Client, notifier Notifier, logger *zap.Logger) *Retriever {
	return NewRetrieverWithPacing(client, notifier, logger, defaultPacing)
}

func NewRetrieverWithPacing(client Client, notifier Notifier, logger *zap.Logger, pacing time.Duration) *Retriever {
	return &Retriever{
		client:   client,
		notifier: notifier,
		logger:   logger.Named("source"),
		pacing:   pacing,
	}
}

// Retrieve authenticates once and walks the range one calendar day at a
// time, mapping every returned document. A failed auth ends the run with
// a notice and an empty result; a failed fetch or mapping aborts with an
// error rather than under-reporting a day. Cancellation is not an error:
// whatever was accumulated so far is returned.
func (r *Retriever) Retrieve(ctx context.Context, creds Credentials, dates DateRange) ([]receipt.Receipt, error) {
	logger := r.logger.With(zap.String("run_id", uuid.NewString()))

	token, err := r.client.Authenticate(ctx, creds.APIKey)
	if err != nil {
		logger.Error("failed to obtain session token", zap.Error(err))
		r.notifier.Notify("Не удалось получить временный токен!")
		return nil, nil
	}

	days := dates.Days()
	receipts := []receipt.Receipt{}
	for i, day := range days {
		select {
		case <-ctx.Done():
			logger.Info("retrieval cancelled",
				zap.Int("days_done", i),
				zap.Int("receipts", len(receipts)),
			)
			return receipts, nil
		default:
		}

		docs, err := r.client.FetchDay(ctx, creds.TaxID, creds.DeviceID, creds.StorageSerial, token, day)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return receipts, nil
			}
			return receipts, fmt.Errorf("fetching %s: %w", day.Format("2006-01-02"), err)
		}

		for _, doc := range docs {
			mapped, err := ofd.MapReceipt(doc)
			if err != nil {
				return receipts, fmt.Errorf("mapping %s: %w", day.Format("2006-01-02"), err)
			}
			receipts = append(receipts, mapped)
		}

		if i < len(days)-1 {
			select {
			case <-ctx.Done():
				logger.Info("retrieval cancelled",
					zap.Int("days_done", i+1),
					zap.Int("receipts", len(receipts)),
				)
				return receipts, nil
			case <-time.After(r.pacing):
			}
		}
	}

	logger.Info("retrieval finished",
		zap.Int("days", len(days)),
		zap.Int("receipts", len(receipts)),
	)
	return receipts, nil
}
