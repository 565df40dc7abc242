package scheduling

import (
	"sort"
	"time"
)

type interval struct {
	start time.Time
	end   time.Time
	order int
	part  string
}

func (iv interval) overlaps(start, end time.Time) bool {
	return iv.start.Before(end) && start.Before(iv.end)
}

// intervalList keeps intervals sorted by start
type intervalList struct {
	items []interval
}

func (l *intervalList) insert(iv interval) {
	i := sort.Search(len(l.items), func(i int) bool {
		return l.items[i].start.After(iv.start)
	})
	l.items = append(l.items, interval{})
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = iv
}

// overlapCount counts intervals sharing time with [start, end)
func (l *intervalList) overlapCount(start, end time.Time) int {
	n := 0
	limit := sort.Search(len(l.items), func(i int) bool {
		return !l.items[i].start.Before(end)
	})
	for _, iv := range l.items[:limit] {
		if iv.end.After(start) {
			n++
		}
	}
	return n
}

// free reports whether no interval intersects [start, end)
func (l *intervalList) free(start, end time.Time) bool {
	limit := sort.Search(len(l.items), func(i int) bool {
		return !l.items[i].start.Before(end)
	})
	for i := limit - 1; i >= 0; i-- {
		if l.items[i].end.After(start) {
			return false
		}
	}
	return true
}

// lastEndingBy returns the latest interval that ended at or before t
func (l *intervalList) lastEndingBy(t time.Time) (interval, bool) {
	var (
		best  interval
		found bool
	)
	for _, iv := range l.items {
		if iv.start.After(t) {
			break
		}
		if !iv.end.After(t) && (!found || iv.end.After(best.end)) {
			best = iv
			found = true
		}
	}
	return best, found
}

// endsBetween lists interval ends in [from, to)
func (l *intervalList) endsBetween(from, to time.Time) []time.Time {
	var out []time.Time
	for _, iv := range l.items {
		if !iv.end.Before(from) && iv.end.Before(to) {
			out = append(out, iv.end)
		}
	}
	return out
}
