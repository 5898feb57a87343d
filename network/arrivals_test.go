package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArrivalLog(t *testing.T) {
	t.Parallel()

	base := time.Unix(1700000000, 0)

	t.Run("needs two arrivals", func(t *testing.T) {
		t.Parallel()
		var l ArrivalLog
		assert.Equal(t, ArrivalStats{}, l.Stats())
		l.Record(base)
		assert.Equal(t, ArrivalStats{}, l.Stats())
	})

	t.Run("steady arrivals have no jitter", func(t *testing.T) {
		t.Parallel()
		var l ArrivalLog
		for i := 0; i < 10; i++ {
			l.Record(base.Add(time.Duration(i) * 50 * time.Millisecond))
		}
		s := l.Stats()
		assert.Equal(t, 9, s.Count)
		assert.InDelta(t, 50, s.MeanMs, 1e-9)
		assert.InDelta(t, 0, s.StdMs, 1e-9)
		assert.InDelta(t, 50, s.MaxMs, 1e-9)
	})

	t.Run("alternating gaps", func(t *testing.T) {
		t.Parallel()
		var l ArrivalLog
		at := base
		l.Record(at)
		for i := 0; i < 4; i++ {
			at = at.Add(40 * time.Millisecond)
			l.Record(at)
			at = at.Add(60 * time.Millisecond)
			l.Record(at)
		}
		s := l.Stats()
		assert.Equal(t, 8, s.Count)
		assert.InDelta(t, 50, s.MeanMs, 1e-9)
		// sample standard deviation of four 40s and four 60s
		assert.InDelta(t, 10.690449676, s.StdMs, 1e-6)
		assert.InDelta(t, 60, s.MaxMs, 1e-9)
	})

	t.Run("only the newest window is kept", func(t *testing.T) {
		t.Parallel()
		var l ArrivalLog
		at := base
		for i := 0; i < arrivalLogSize; i++ {
			at = at.Add(500 * time.Millisecond)
			l.Record(at)
		}
		for i := 0; i < arrivalLogSize; i++ {
			at = at.Add(20 * time.Millisecond)
			l.Record(at)
		}
		s := l.Stats()
		assert.Equal(t, arrivalLogSize, l.Len())
		assert.Equal(t, arrivalLogSize-1, s.Count)
		assert.InDelta(t, 20, s.MeanMs, 1e-9)
	})
}
