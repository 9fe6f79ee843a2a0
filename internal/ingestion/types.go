// Package ingestion implements the data model of the ingestion service:
// submissions, their fixed-size batches, the in-memory submission store and
// the derivation of a submission's overall status from its batches.
//
// DATA MODEL:
//   - Submission: token, priority tier, creation time and ordered batches
//   - Batch: token, contiguous slice of identifiers and a forward-only status
//   - StatusReport: the client view of a submission, derived on every read
//
// Batch membership and order never change once a submission is created. Only
// batch status mutates, and only forward:
// yet_to_start -> triggered -> completed.
//
// The store is the single source of truth. The dispatch loop is its only
// writer of batch statuses; HTTP handlers create submissions and read reports.
package ingestion

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the ingestion package. Callers match them with
// errors.Is since they are usually wrapped with the offending token.
var (
	ErrNotFound          = errors.New("ingestion not found")
	ErrBatchNotFound     = errors.New("batch not found")
	ErrInvalidTransition = errors.New("invalid batch status transition")
	ErrEmptyIDs          = errors.New("ids must not be empty")
	ErrInvalidBatchSize  = errors.New("batch size must be at least 1")
	ErrInvalidPriority   = errors.New("invalid priority")
)

// Priority is a submission's priority tier.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Rank returns the numeric rank used for queue ordering. Higher ranks are
// dispatched first; unknown tiers rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ParsePriority converts a tier name into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if p.Rank() == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Status is the lifecycle state of a batch, and the derived state of a
// submission. Values are the wire names clients see.
type Status string

const (
	StatusNotStarted Status = "yet_to_start"
	StatusInProgress Status = "triggered"
	StatusCompleted  Status = "completed"
)

// next returns the only legal successor of s, or "" for terminal states.
func (s Status) next() Status {
	switch s {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return ""
	}
}

// CanTransition reports whether a batch may move from s to to.
func (s Status) CanTransition(to Status) bool {
	return to != "" && s.next() == to
}

// Batch is a contiguous, order-preserving slice of a submission's identifiers.
type Batch struct {
	ID     string `json:"batch_id"`
	IDs    []int  `json:"ids"`
	Status Status `json:"status"`
}

func (b *Batch) clone() *Batch {
	ids := make([]int, len(b.IDs))
	copy(ids, b.IDs)
	return &Batch{ID: b.ID, IDs: ids, Status: b.Status}
}

// Submission is one accepted ingestion request.
type Submission struct {
	ID        string
	Priority  Priority
	CreatedAt time.Time

	// Seq is the store's insertion sequence; it breaks creation time ties.
	Seq uint64

	Batches []*Batch
}

func (s *Submission) clone() *Submission {
	out := *s
	out.Batches = make([]*Batch, len(s.Batches))
	for i, b := range s.Batches {
		out.Batches[i] = b.clone()
	}
	return &out
}

// StatusReport is the client-facing view of a submission.
type StatusReport struct {
	IngestionID string  `json:"ingestion_id"`
	Status      Status  `json:"status"`
	Batches     []Batch `json:"batches"`
}
