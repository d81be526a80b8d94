package kernels

import (
	"math"

	"github.com/katalvlaran/factortree/optree"
)

// rollingWindow is the shared ring buffer backing every ts_* kernel: it
// retains the last `window` pushed tensors, lane by lane, and reports
// whether it has observed enough ticks to be "ready" (i.e. not still
// warming up after construction or a day reset).
type rollingWindow struct {
	window int
	nstock int
	buf    [][]float64 // buf[slot][lane]
	filled int
	pos    int // next write slot; also the oldest slot once filled == window
}

func newRollingWindow(window, nstock int) (*rollingWindow, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	buf := make([][]float64, window)
	for i := range buf {
		buf[i] = make([]float64, nstock)
	}

	return &rollingWindow{window: window, nstock: nstock, buf: buf}, nil
}

// push records in as the most recent tick's values and advances the ring.
func (r *rollingWindow) push(in []float64) {
	copy(r.buf[r.pos], in)
	r.pos = (r.pos + 1) % r.window
	if r.filled < r.window {
		r.filled++
	}
}

// ready reports whether window ticks have been observed since construction
// or the last reset.
func (r *rollingWindow) ready() bool { return r.filled >= r.window }

// reset clears accumulated history, matching a kernel's day-start form.
func (r *rollingWindow) reset() {
	r.filled = 0
	r.pos = 0
}

// oldest returns the slot that will be overwritten by the next push, i.e.
// the value pushed exactly `window` ticks ago. Valid only once ready().
func (r *rollingWindow) oldest(lane int) float64 { return r.buf[r.pos][lane] }

// laneValues calls fn once per slot for the given lane, in no particular
// order; used by reducers (mean, sum, std) that need every observation.
func (r *rollingWindow) laneValues(lane int, fn func(v float64)) {
	for slot := 0; slot < r.window; slot++ {
		fn(r.buf[slot][lane])
	}
}

// laneMean returns the mean of lane's window, and whether any observation
// in the window was NaN (in which case the rolling rule is to propagate
// NaN rather than silently ignore it).
func (r *rollingWindow) laneMean(lane int) (mean float64, sawNaN bool) {
	var sum float64
	r.laneValues(lane, func(v float64) {
		if math.IsNaN(v) {
			sawNaN = true
		}
		sum += v
	})

	return sum / float64(r.window), sawNaN
}

// laneSum returns the sum of lane's window and whether it contained a NaN.
func (r *rollingWindow) laneSum(lane int) (sum float64, sawNaN bool) {
	r.laneValues(lane, func(v float64) {
		if math.IsNaN(v) {
			sawNaN = true
		}
		sum += v
	})

	return sum, sawNaN
}

// laneStdPopulation returns the population standard deviation of lane's
// window and whether it contained a NaN.
func (r *rollingWindow) laneStdPopulation(lane int) (std float64, sawNaN bool) {
	mean, sawNaN := r.laneMean(lane)
	if sawNaN {
		return math.NaN(), true
	}
	var acc float64
	r.laneValues(lane, func(v float64) {
		d := v - mean
		acc += d * d
	})

	return math.Sqrt(acc / float64(r.window)), false
}

// SaveState serializes the ring buffer's full contents and cursor state.
func (r *rollingWindow) SaveState(w optree.StateWriter) error {
	if err := w.WriteInt64(int64(r.window)); err != nil {
		return err
	}
	if err := w.WriteInt64(int64(r.nstock)); err != nil {
		return err
	}
	if err := w.WriteInt64(int64(r.filled)); err != nil {
		return err
	}
	if err := w.WriteInt64(int64(r.pos)); err != nil {
		return err
	}
	for _, slot := range r.buf {
		if err := w.WriteFloat64Slice(slot); err != nil {
			return err
		}
	}

	return nil
}

// LoadState restores a ring buffer previously written by SaveState. The
// window and lane count must match the kernel being restored into.
func (r *rollingWindow) LoadState(rd optree.StateReader) error {
	window, err := rd.ReadInt64()
	if err != nil {
		return err
	}
	nstock, err := rd.ReadInt64()
	if err != nil {
		return err
	}
	if int(window) != r.window || int(nstock) != r.nstock {
		return kernelsErrorf("rollingWindow.LoadState", ErrStateShape)
	}
	filled, err := rd.ReadInt64()
	if err != nil {
		return err
	}
	pos, err := rd.ReadInt64()
	if err != nil {
		return err
	}
	for i := 0; i < r.window; i++ {
		slot, err := rd.ReadFloat64Slice(r.nstock)
		if err != nil {
			return err
		}
		copy(r.buf[i], slot)
	}
	r.filled = int(filled)
	r.pos = int(pos)

	return nil
}
