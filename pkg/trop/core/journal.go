package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/bytebufferpool"

	"github.com/ib-77/trop/pkg/trop"
)

// Entry is one recorded pipeline outcome.
type Entry struct {
	ID    uuid.UUID
	At    time.Time
	Stage string
	Ok    bool
	Repr  string
}

// Journal is a concurrency-safe trace of what flowed through a pipeline.
// Each entry records an identifier, a UTC timestamp, the stage label, and
// the rendered outcome. Stages of mixed value types share one journal
// through the variant-erased trop.Outcome view.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
}

func NewJournal() *Journal {
	return &Journal{}
}

// Record appends one outcome under the given stage label.
func (j *Journal) Record(stage string, o trop.Outcome) {
	e := Entry{
		ID:    uuid.New(),
		At:    time.Now().UTC(),
		Stage: stage,
		Ok:    o.IsSuccess(),
		Repr:  o.String(),
	}

	j.mu.Lock()
	j.entries = append(j.entries, e)
	j.mu.Unlock()
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Entries returns a copy of the recorded entries in record order.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Render formats the journal, one line per entry, through a pooled buffer.
func (j *Journal) Render() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	j.mu.Lock()
	defer j.mu.Unlock()
	for _, e := range j.entries {
		fmt.Fprintf(b, "%s %s [%s] %s\n",
			e.At.Format(time.RFC3339Nano), e.ID, e.Stage, e.Repr)
	}
	return b.String()
}
