// Package relay forwards log entries to an external form-ingestion
// endpoint, one HTTP form post per entry. Delivery is best-effort and
// at-least-once: an entry is marked sent once its post succeeds, and a
// transport failure aborts the run so the remainder is retried next time.
package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/SHOSESHOSE/time-tracker/internal/aggregate"
	"github.com/SHOSESHOSE/time-tracker/internal/clock"
	"github.com/SHOSESHOSE/time-tracker/internal/config"
	"github.com/SHOSESHOSE/time-tracker/internal/store"
)

// ErrBusy is returned when a send is invoked while another is running.
var ErrBusy = errors.New("a send is already in progress")

// Result holds counters for a send operation.
type Result struct {
	Sent    int
	Skipped int
}

// Sender posts unsent entries to the configured endpoint. It is
// non-reentrant: a busy flag rejects overlapping invocations, mirroring
// the single in-flight send the tool guarantees.
type Sender struct {
	store      *store.Store
	cfg        config.RelayConfig
	httpClient *http.Client
	now        func() time.Time
	sleep      func(time.Duration)
	busy       atomic.Bool
}

// New returns a Sender over st using the relay settings in cfg.
func New(st *store.Store, cfg config.RelayConfig) *Sender {
	return &Sender{
		store:      st,
		cfg:        cfg,
		httpClient: http.DefaultClient,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// Send posts every unsent entry of the given day, pacing posts by the
// configured delay. Each entry is marked sent and persisted immediately
// after its post succeeds ("assumed delivered"); a transport failure or
// non-2xx status aborts the loop, leaving earlier marks in place so only
// the remainder is retried.
func (s *Sender) Send(ctx context.Context, date, user string) (Result, error) {
	if s.cfg.Endpoint == "" {
		return Result{}, fmt.Errorf("no relay endpoint configured")
	}
	if !s.busy.CompareAndSwap(false, true) {
		return Result{}, ErrBusy
	}
	defer s.busy.Store(false)

	client := s.httpClient
	if s.cfg.Auth.ClientID != "" {
		var err error
		client, err = authClient(ctx, s.cfg.Auth)
		if err != nil {
			return Result{}, err
		}
	}

	user = strings.TrimSpace(user)
	if user == "" {
		user = "unknown"
	}

	var result Result
	first := true
	for _, e := range aggregate.ForDay(date, s.store.LoadAll()) {
		if e.Sent {
			result.Skipped++
			continue
		}
		if !first {
			s.sleep(time.Duration(s.cfg.DelayMS) * time.Millisecond)
		}
		first = false

		end := ""
		if e.End != nil {
			end = clock.FormatHM(*e.End)
		}
		form := url.Values{
			s.cfg.Fields.User:     {user},
			s.cfg.Fields.Date:     {e.Date},
			s.cfg.Fields.Category: {e.Category},
			s.cfg.Fields.Start:    {clock.FormatHM(e.Start)},
			s.cfg.Fields.End:      {end},
			s.cfg.Fields.Minutes:  {strconv.Itoa(aggregate.Minutes(e.Start, e.End, s.now()))},
		}

		if err := s.post(ctx, client, form); err != nil {
			return result, fmt.Errorf("relay transport error after %d entries: %w", result.Sent, err)
		}

		if err := s.markSent(e.ID); err != nil {
			return result, err
		}
		result.Sent++
	}
	return result, nil
}

// post submits one form to the endpoint. No response body is consumed;
// a non-2xx status counts as a transport failure.
func (s *Sender) post(ctx context.Context, client *http.Client, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// markSent flips the sent flag on one entry and persists the store, so
// an interrupted run does not resend what already went out.
func (s *Sender) markSent(id string) error {
	entries := s.store.LoadAll()
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Sent = true
			return s.store.ReplaceAll(entries)
		}
	}
	return nil
}
