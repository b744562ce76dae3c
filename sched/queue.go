package sched

import (
	"sort"
	"time"
)

type entry struct {
	due  time.Time
	seq  uint64
	task func()
}

func (e entry) before(o entry) bool {
	if e.due.Equal(o.due) {
		return e.seq < o.seq
	}
	return e.due.Before(o.due)
}

// queue holds pending tasks ordered by due time, then by scheduling order.
// It is not safe for concurrent use.
type queue struct {
	entries []entry
	seq     uint64
}

func (q *queue) push(due time.Time, task func()) {
	e := entry{due: due, seq: q.seq, task: task}
	q.seq++

	idx := sort.Search(len(q.entries), func(i int) bool {
		return e.before(q.entries[i])
	})
	q.entries = append(q.entries, entry{})
	copy(q.entries[idx+1:], q.entries[idx:])
	q.entries[idx] = e
}

func (q *queue) peek() (entry, bool) {
	if len(q.entries) == 0 {
		return entry{}, false
	}
	return q.entries[0], true
}

func (q *queue) pop() entry {
	e := q.entries[0]
	q.entries[0] = entry{}
	q.entries = q.entries[1:]
	return e
}

func (q *queue) len() int { return len(q.entries) }
