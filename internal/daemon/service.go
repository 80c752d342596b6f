// Package daemon provides the long-running background budget watcher service.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"minhafinanca/internal/ledger"
	"minhafinanca/internal/money"
	"minhafinanca/internal/notify"
	"minhafinanca/internal/store"
)

// Budget alert thresholds, in percent of income spent.
const (
	warnThreshold     = 70
	criticalThreshold = 90
)

// Config controls the daemon runtime behavior.
type Config struct {
	DBPath       string
	Interval     time.Duration
	Addr         string
	EventsBuffer int
	Notifier     *notify.Notifier
}

// Snapshot is a compact budget state for status/event payloads.
type Snapshot struct {
	At              time.Time `json:"at"`
	Expenses        int       `json:"expenses"`
	TotalExpenses   int64     `json:"total_expenses"`
	Income          int64     `json:"income"`
	Balance         int64     `json:"balance"`
	ProgressPercent float64   `json:"progress_percent"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	Expenses      int     `json:"expenses"`
	TotalExpenses int64   `json:"total_expenses"`
	Income        int64   `json:"income"`
	Progress      float64 `json:"progress"`
}

func (d Delta) isZero() bool {
	return d.Expenses == 0 &&
		d.TotalExpenses == 0 &&
		d.Income == 0 &&
		d.Progress == 0
}

// Event is emitted whenever the budget snapshot updates or a threshold is
// crossed.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	DBPath          string    `json:"db_path"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 10 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7877"
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notify.New(notify.PermissionDenied)
	}

	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	snap, err := s.loadSnapshot()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = time.Now()
		s.pollCount++
		s.mu.Unlock()
		log.Printf("minhafinanca daemon poll error: %v", err)
		return
	}

	var events []Event

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = snap.At
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		events = append(events, Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: snap.At,
			Snapshot:  snap,
		})
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			events = append(events, Event{
				ID:        s.nextEventID,
				Type:      "budget_delta",
				Timestamp: snap.At,
				Snapshot:  snap,
				Delta:     delta,
			})
		}
		if typ := crossedThreshold(prev.ProgressPercent, snap.ProgressPercent); typ != "" {
			s.nextEventID++
			events = append(events, Event{
				ID:        s.nextEventID,
				Type:      typ,
				Timestamp: snap.At,
				Snapshot:  snap,
				Delta:     diffSnapshots(prev, snap),
			})
		}
	}
	s.mu.Unlock()

	for _, ev := range events {
		s.publishEvent(ev)
		s.notifyThreshold(ev)
	}
}

func (s *Service) loadSnapshot() (Snapshot, error) {
	db, err := store.Open(s.cfg.DBPath)
	if err != nil {
		return Snapshot{}, err
	}
	defer func() { _ = db.Close() }()

	state, err := db.LoadSnapshot()
	if err != nil {
		return Snapshot{}, err
	}

	led := ledger.New(state.Expenses)
	summary := ledger.Summarize(state.Income, led.Total())

	return Snapshot{
		At:              time.Now(),
		Expenses:        led.Len(),
		TotalExpenses:   summary.TotalExpenses,
		Income:          state.Income,
		Balance:         summary.Balance,
		ProgressPercent: summary.ProgressPercent,
	}, nil
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Expenses:      curr.Expenses - prev.Expenses,
		TotalExpenses: curr.TotalExpenses - prev.TotalExpenses,
		Income:        curr.Income - prev.Income,
		Progress:      curr.ProgressPercent - prev.ProgressPercent,
	}
}

// crossedThreshold returns the event type for an upward threshold crossing,
// or "" when none was crossed. The critical threshold wins when a single
// poll jumps past both.
func crossedThreshold(prevPct, currPct float64) string {
	if prevPct <= criticalThreshold && currPct > criticalThreshold {
		return "budget_critical"
	}
	if prevPct <= warnThreshold && currPct > warnThreshold {
		return "budget_warning"
	}
	return ""
}

func (s *Service) notifyThreshold(ev Event) {
	switch ev.Type {
	case "budget_warning":
		s.cfg.Notifier.Send("Minha Finança", fmt.Sprintf("Atenção: %.0f%% da renda já foi gasta", ev.Snapshot.ProgressPercent))
	case "budget_critical":
		s.cfg.Notifier.Send("Minha Finança", fmt.Sprintf("Orçamento no limite: %.0f%% da renda gasta (saldo %s)",
			ev.Snapshot.ProgressPercent, money.Format(ev.Snapshot.Balance)))
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		DBPath:          s.cfg.DBPath,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
