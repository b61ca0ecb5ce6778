package fitness

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"fitlife/internal/storage"
)

// dateLayout is the calendar-date key format of the history archive.
const dateLayout = "2006-01-02"

// DaySteps is one archived day.
type DaySteps struct {
	Date  string
	Steps int
}

// HistoryAggregator owns the day-keyed step archive. The archive is a JSON
// object mapping YYYY-MM-DD (local time) to step totals, stored under a
// single key. One entry per day; writing the same date overwrites.
type HistoryAggregator struct {
	store storage.Store
	clock Clock
}

func NewHistoryAggregator(store storage.Store, clock Clock) *HistoryAggregator {
	return &HistoryAggregator{store: store, clock: clock}
}

func (h *HistoryAggregator) readArchive(ctx context.Context) (map[string]int, error) {
	raw, ok, err := h.store.Get(ctx, storage.KeyStepHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	archive := make(map[string]int)
	if !ok {
		return archive, nil
	}
	if err := json.Unmarshal([]byte(raw), &archive); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return archive, nil
}

func (h *HistoryAggregator) writeArchive(ctx context.Context, archive map[string]int) error {
	raw, err := json.Marshal(archive)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := h.store.Set(ctx, storage.KeyStepHistory, string(raw)); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// SnapshotToday records the current step counter under today's date key,
// overwriting any earlier snapshot for the same day. Calling it repeatedly
// within a day with an unchanged counter is a no-op in effect.
func (h *HistoryAggregator) SnapshotToday(ctx context.Context) error {
	steps, err := readSteps(ctx, h.store)
	if err != nil {
		return err
	}

	archive, err := h.readArchive(ctx)
	if err != nil {
		return err
	}

	today := h.clock.Now().Format(dateLayout)
	archive[today] = steps

	return h.writeArchive(ctx, archive)
}

// RecentSeries returns the trailing n archived days in chronological order,
// oldest first. Date keys are sorted, so "recent" means the most recent
// calendar days present, regardless of insertion order. Empty slice when the
// archive has no entries.
func (h *HistoryAggregator) RecentSeries(ctx context.Context, n int) ([]DaySteps, error) {
	archive, err := h.readArchive(ctx)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(archive))
	for d := range archive {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if n > 0 && len(dates) > n {
		dates = dates[len(dates)-n:]
	}

	series := make([]DaySteps, 0, len(dates))
	for _, d := range dates {
		series = append(series, DaySteps{Date: d, Steps: archive[d]})
	}
	return series, nil
}
