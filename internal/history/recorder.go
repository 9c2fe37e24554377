package history

import (
	"context"
	"log"
	"sync"
	"time"

	"linguaflow/internal/database"
	"linguaflow/internal/model"
	"linguaflow/internal/store"
)

const writeTimeout = 10 * time.Second

var createTranslation = store.CreateTranslation

// Recorder persists translation history off the response path. Writes are
// at-most-effort: a failed or dropped write is logged and never surfaces to
// the caller that produced the translation.
type Recorder struct {
	db   database.DB
	jobs chan model.Translation
	wg   sync.WaitGroup
}

// NewRecorder starts n workers draining the record queue. n<=0 defaults to 1.
func NewRecorder(db database.DB, n int) *Recorder {
	if n <= 0 {
		n = 1
	}
	r := &Recorder{
		db:   db,
		jobs: make(chan model.Translation, 64),
	}
	r.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer r.wg.Done()
			for tr := range r.jobs {
				r.write(tr)
			}
		}()
	}
	return r
}

// Record enqueues a translation for persistence. When the queue is full the
// entry is dropped rather than blocking the response.
func (r *Recorder) Record(tr model.Translation) {
	select {
	case r.jobs <- tr:
	default:
		log.Printf("history: queue full, dropping record for user %s", tr.UserID)
	}
}

// Close drains pending records and stops the workers.
func (r *Recorder) Close() {
	close(r.jobs)
	r.wg.Wait()
}

func (r *Recorder) write(tr model.Translation) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if _, err := createTranslation(ctx, r.db, &tr); err != nil {
		log.Printf("history: save translation for user %s: %v", tr.UserID, err)
	}
}
