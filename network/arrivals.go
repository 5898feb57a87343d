package network

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

const arrivalLogSize = 64

// ArrivalStats summarizes the gaps between recent snapshot arrivals.
type ArrivalStats struct {
	Count  int     // Number of intervals measured
	MeanMs float64 // Mean interval
	StdMs  float64 // Standard deviation of the interval (jitter)
	MaxMs  float64
}

// ArrivalLog is a ring buffer of snapshot arrival times used to estimate
// network jitter. It is not safe for concurrent use.
type ArrivalLog struct {
	history   [arrivalLogSize]time.Time
	next      uint32
	intervals []float64 // reused by Stats to avoid allocation
}

// Record stores the arrival time of one snapshot.
func (l *ArrivalLog) Record(at time.Time) {
	l.history[l.next%arrivalLogSize] = at
	l.next++
}

// Len returns how many arrivals are currently held.
func (l *ArrivalLog) Len() int {
	if l.next < arrivalLogSize {
		return int(l.next)
	}
	return arrivalLogSize
}

// Stats returns interval statistics over the held arrivals, oldest first.
// Fewer than two arrivals yield zero stats.
func (l *ArrivalLog) Stats() ArrivalStats {
	n := l.Len()
	if n < 2 {
		return ArrivalStats{}
	}

	l.intervals = l.intervals[:0]
	start := l.next - uint32(n)
	prev := l.history[start%arrivalLogSize]
	maxMs := 0.0
	for seq := start + 1; seq < l.next; seq++ {
		at := l.history[seq%arrivalLogSize]
		ms := float64(at.Sub(prev)) / float64(time.Millisecond)
		l.intervals = append(l.intervals, ms)
		if ms > maxMs {
			maxMs = ms
		}
		prev = at
	}

	mean, std := stat.MeanStdDev(l.intervals, nil)
	if len(l.intervals) < 2 {
		std = 0
	}
	return ArrivalStats{
		Count:  len(l.intervals),
		MeanMs: mean,
		StdMs:  std,
		MaxMs:  maxMs,
	}
}
