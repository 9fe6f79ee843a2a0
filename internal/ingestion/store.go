package ingestion

import (
	"fmt"
	"sync"
	"time"

	"github.com/concave-dev/ingest/internal/utils"
)

// Store is the process-wide, in-memory mapping of submission token to
// submission record. Records are never deleted for the life of the process.
//
// All methods are safe for concurrent use. Reads return deep copies so
// callers never observe or cause mutations outside the store's lock.
type Store struct {
	mu          sync.RWMutex
	submissions map[string]*Submission
	batchSize   int
	seq         uint64

	// Overridable in tests
	newID func() string
	now   func() time.Time
}

// NewStore creates an empty store that splits submissions into batches of
// at most batchSize identifiers.
func NewStore(batchSize int) *Store {
	return &Store{
		submissions: make(map[string]*Submission),
		batchSize:   batchSize,
		newID:       utils.GenerateID,
		now:         time.Now,
	}
}

// BatchSize returns the configured maximum batch size.
func (s *Store) BatchSize() int {
	return s.batchSize
}

// Create allocates a token and creation time for a new submission, splits ids
// into batches and records it. The returned submission is a copy.
func (s *Store) Create(ids []int, priority Priority) (*Submission, error) {
	if priority.Rank() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}

	batches, err := Split(ids, s.batchSize, s.newID)
	if err != nil {
		return nil, fmt.Errorf("failed to split submission: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	sub := &Submission{
		ID:        s.newID(),
		Priority:  priority,
		CreatedAt: s.now(),
		Seq:       s.seq,
		Batches:   batches,
	}
	s.submissions[sub.ID] = sub

	return sub.clone(), nil
}

// Get returns a copy of the submission with the given token.
func (s *Store) Get(token string) (*Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[token]
	if !ok {
		return nil, false
	}
	return sub.clone(), true
}

// StartBatch moves the first yet_to_start batch of the submission to
// triggered and returns a copy of it. A nil batch with a nil error means the
// submission has no unstarted batches left.
func (s *Store) StartBatch(token string) (*Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[token]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, token)
	}

	for _, b := range sub.Batches {
		if b.Status == StatusNotStarted {
			b.Status = StatusInProgress
			return b.clone(), nil
		}
	}
	return nil, nil
}

// CompleteBatch moves a triggered batch to completed. Any other starting
// state yields ErrInvalidTransition.
func (s *Store) CompleteBatch(token, batchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[token]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, token)
	}

	for _, b := range sub.Batches {
		if b.ID != batchID {
			continue
		}
		if !b.Status.CanTransition(StatusCompleted) {
			return fmt.Errorf("%w: batch %s is %s", ErrInvalidTransition, batchID, b.Status)
		}
		b.Status = StatusCompleted
		return nil
	}
	return fmt.Errorf("%w: %s in ingestion %s", ErrBatchNotFound, batchID, token)
}

// HasPending reports whether the submission still has a yet_to_start batch.
func (s *Store) HasPending(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[token]
	if !ok {
		return false
	}
	for _, b := range sub.Batches {
		if b.Status == StatusNotStarted {
			return true
		}
	}
	return false
}

// Report returns the derived status view of a submission, or ErrNotFound.
func (s *Store) Report(token string) (*StatusReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[token]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, token)
	}
	return sub.Report(), nil
}

// Count returns the number of recorded submissions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.submissions)
}

// StatusCounts returns how many submissions currently derive to each status.
func (s *Store) StatusCounts() map[Status]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[Status]int{
		StatusNotStarted: 0,
		StatusInProgress: 0,
		StatusCompleted:  0,
	}
	for _, sub := range s.submissions {
		counts[sub.Status()]++
	}
	return counts
}
