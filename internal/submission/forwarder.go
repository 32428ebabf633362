package submission

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/errors"
)

const forwardTimeout = 10 * time.Second

// Forwarder POSTs submissions to the external spreadsheet endpoint.
//
// Forwarding is fire-and-forget: the wizard shows the result without waiting,
// and the outcome of the request is observed only for logging. There is no
// retry and the response body is discarded.
type Forwarder struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewForwarder creates a Forwarder for the given endpoint. An empty endpoint
// disables forwarding, which is useful in development and tests.
func NewForwarder(endpoint string, logger *slog.Logger) *Forwarder {
	return &Forwarder{
		endpoint: endpoint,
		client:   &http.Client{Timeout: forwardTimeout}, //nolint:exhaustruct // defaults suffice
		logger:   logger.With("source", "SubmissionForwarder"),
	}
}

// Dispatch forwards the submission in the background and returns immediately.
func (f *Forwarder) Dispatch(s Submission) {
	ctx := context.Background()
	if f.endpoint == "" {
		f.logger.LogAttrs(ctx, slog.LevelDebug, "forwarding disabled, skipping submission",
			slog.String("id", s.ID))
		return
	}
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		if err := f.forward(ctx, s); err != nil {
			f.logger.LogAttrs(ctx, slog.LevelWarn, "failed to forward submission",
				slog.String("id", s.ID), errors.SlogError(err))
			return
		}
		f.logger.LogAttrs(ctx, slog.LevelInfo, "forwarded submission", slog.String("id", s.ID))
	}()
}

// Wait blocks until all dispatched submissions have been attempted. Used on
// shutdown and in tests.
func (f *Forwarder) Wait() {
	f.wg.Wait()
}

func (f *Forwarder) forward(ctx context.Context, s Submission) error {
	ctx, cancel := context.WithTimeout(ctx, forwardTimeout)
	defer cancel()

	body := s.FormValues().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "post submission")
	}
	// The response is not parsed, only the status is worth logging.
	if err = resp.Body.Close(); err != nil {
		return errors.Wrap(err, "close response body")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.New("unexpected response status", slog.Int("status", resp.StatusCode))
	}
	return nil
}
