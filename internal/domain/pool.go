package domain

import (
	"math/bits"
	"sort"
)

// PoolEntry pairs a talk with the id it was assigned at ingestion.
type PoolEntry struct {
	ID   TalkID
	Talk Talk
}

// Pool holds the talks that have not been scheduled yet. Talks are bucketed by
// duration so counting, choosing and removing a fitting talk never scans the
// whole pool. It is owned by a single builder call and is not safe for
// concurrent use.
type Pool struct {
	talks     []Talk
	taken     []bool
	slots     []int
	buckets   map[int]*durationBucket
	durations []int
	size      int
}

func NewPool(talks ...Talk) *Pool {
	p := &Pool{
		talks:   make([]Talk, 0, len(talks)),
		taken:   make([]bool, 0, len(talks)),
		slots:   make([]int, 0, len(talks)),
		buckets: make(map[int]*durationBucket),
	}
	for _, talk := range talks {
		p.Add(talk)
	}
	return p
}

// Add appends a talk under the next sequential id. Ids are never reused.
func (p *Pool) Add(talk Talk) TalkID {
	id := TalkID(len(p.talks))
	p.talks = append(p.talks, talk)
	p.taken = append(p.taken, false)
	p.slots = append(p.slots, p.bucket(talk.Duration).push(id))
	p.size++
	return id
}

func (p *Pool) bucket(duration int) *durationBucket {
	if p.buckets == nil {
		p.buckets = make(map[int]*durationBucket)
	}
	if b, ok := p.buckets[duration]; ok {
		return b
	}

	b := newDurationBucket()
	p.buckets[duration] = b

	i := sort.SearchInts(p.durations, duration)
	p.durations = append(p.durations, 0)
	copy(p.durations[i+1:], p.durations[i:])
	p.durations[i] = duration

	return b
}

func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return p.size
}

func (p *Pool) Empty() bool {
	return p.Len() == 0
}

func (p *Pool) Get(id TalkID) (Talk, bool) {
	if !p.holds(id) {
		return Talk{}, false
	}
	return p.talks[id], true
}

func (p *Pool) holds(id TalkID) bool {
	return p != nil && id >= 0 && int(id) < len(p.talks) && !p.taken[id]
}

// Entries returns a copy of the remaining entries in ingestion order.
func (p *Pool) Entries() []PoolEntry {
	if p == nil {
		return nil
	}
	out := make([]PoolEntry, 0, p.size)
	for i, talk := range p.talks {
		if !p.taken[i] {
			out = append(out, PoolEntry{ID: TalkID(i), Talk: talk})
		}
	}
	return out
}

// Talks returns the remaining talks in ingestion order.
func (p *Pool) Talks() []Talk {
	if p == nil {
		return nil
	}
	out := make([]Talk, 0, p.size)
	for i, talk := range p.talks {
		if !p.taken[i] {
			out = append(out, talk)
		}
	}
	return out
}

// CountFitting reports how many remaining talks last at most capacity minutes.
func (p *Pool) CountFitting(capacity int) int {
	if p == nil {
		return 0
	}
	count := 0
	for _, duration := range p.durations {
		if duration > capacity {
			break
		}
		count += p.buckets[duration].live
	}
	return count
}

// NthFitting returns the n-th (0-based) talk among those fitting capacity,
// ordered by duration and then by ingestion.
func (p *Pool) NthFitting(capacity, n int) (TalkID, bool) {
	if p == nil || n < 0 {
		return 0, false
	}
	for _, duration := range p.durations {
		if duration > capacity {
			break
		}
		b := p.buckets[duration]
		if n < b.live {
			return b.nth(n), true
		}
		n -= b.live
	}
	return 0, false
}

// Take removes the talk with the given id and returns it.
func (p *Pool) Take(id TalkID) (Talk, bool) {
	if !p.holds(id) {
		return Talk{}, false
	}

	talk := p.talks[id]
	p.buckets[talk.Duration].remove(p.slots[id])
	p.taken[id] = true
	p.size--
	return talk, true
}

// durationBucket keeps the ids of one duration in ingestion order with a
// Fenwick tree over their live flags.
type durationBucket struct {
	ids  []TalkID
	tree []int
	live int
}

func newDurationBucket() *durationBucket {
	return &durationBucket{tree: []int{0}}
}

func (b *durationBucket) push(id TalkID) int {
	b.ids = append(b.ids, id)
	i := len(b.ids)
	b.tree = append(b.tree, 1+b.prefix(i-1)-b.prefix(i-i&-i))
	b.live++
	return i - 1
}

func (b *durationBucket) prefix(i int) int {
	sum := 0
	for ; i > 0; i -= i & -i {
		sum += b.tree[i]
	}
	return sum
}

func (b *durationBucket) remove(slot int) {
	for i := slot + 1; i < len(b.tree); i += i & -i {
		b.tree[i]--
	}
	b.live--
}

func (b *durationBucket) nth(n int) TalkID {
	pos := 0
	rem := n + 1
	for step := 1 << (bits.Len(uint(len(b.ids))) - 1); step > 0; step >>= 1 {
		if next := pos + step; next < len(b.tree) && b.tree[next] < rem {
			pos = next
			rem -= b.tree[next]
		}
	}
	return b.ids[pos]
}
