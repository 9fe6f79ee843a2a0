package scheduler

import (
	"container/heap"
	"sync"
	"time"
)

// Entry is a unit of queued work: one submission that still has unstarted
// batches. Re-queued entries keep their original CreatedAt and Seq so a
// submission never loses its place within its tier.
type Entry struct {
	Token     string
	Rank      int
	CreatedAt time.Time
	Seq       uint64
}

// before reports whether e must be dispatched ahead of other: higher rank
// first, then earlier creation, then earlier insertion.
func (e Entry) before(other Entry) bool {
	if e.Rank != other.Rank {
		return e.Rank > other.Rank
	}
	if !e.CreatedAt.Equal(other.CreatedAt) {
		return e.CreatedAt.Before(other.CreatedAt)
	}
	return e.Seq < other.Seq
}

type queueItem struct {
	entry Entry
	index int
}

// entryHeap implements heap.Interface ordered by Entry.before.
type entryHeap []*queueItem

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	return h[i].entry.before(h[j].entry)
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// Queue is the priority-ordered worklist of submissions awaiting dispatch.
// It holds at most one entry per submission token. Safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	items   entryHeap
	byToken map[string]*queueItem
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{byToken: make(map[string]*queueItem)}
}

// Push adds an entry. Returns false without modifying the queue when the
// token is already queued.
func (q *Queue) Push(e Entry) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, exists := q.byToken[e.Token]; exists {
		return false
	}
	item := &queueItem{entry: e}
	heap.Push(&q.items, item)
	q.byToken[e.Token] = item
	return true
}

// Pop removes and returns the highest-priority entry. ok is false when the
// queue is empty.
func (q *Queue) Pop() (Entry, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Len() == 0 {
		return Entry{}, false
	}
	item := heap.Pop(&q.items).(*queueItem)
	delete(q.byToken, item.entry.Token)
	return item.entry, true
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// Contains reports whether the token currently has a queued entry.
func (q *Queue) Contains(token string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.byToken[token]
	return ok
}
