package kernels

import (
	"math"

	"github.com/katalvlaran/factortree/optree"
	"github.com/katalvlaran/factortree/tensor"
)

// tsMeanKernel computes, per lane, the arithmetic mean of that lane's last
// `window` ticks. It emits NaN for every lane until `window` ticks have
// been observed (since construction or the last day reset), and NaN for
// any lane whose window contains a NaN observation.
type tsMeanKernel struct {
	rw *rollingWindow
}

func newTsMeanKernel(window, nstock int) (*tsMeanKernel, error) {
	rw, err := newRollingWindow(window, nstock)
	if err != nil {
		return nil, err
	}

	return &tsMeanKernel{rw: rw}, nil
}

func (k *tsMeanKernel) Update(in, out tensor.Tensor) {
	k.rw.push(in)
	if !k.rw.ready() {
		out.FillNaN()

		return
	}
	for lane := range out {
		mean, sawNaN := k.rw.laneMean(lane)
		if sawNaN {
			out[lane] = math.NaN()

			continue
		}
		out[lane] = mean
	}
}

func (k *tsMeanKernel) OnDayBegin() { k.rw.reset() }
func (k *tsMeanKernel) OnDayEnd()   {}

func (k *tsMeanKernel) SaveState(w optree.StateWriter) error { return k.rw.SaveState(w) }
func (k *tsMeanKernel) LoadState(r optree.StateReader) error { return k.rw.LoadState(r) }

// tsSumKernel computes, per lane, the sum of that lane's last `window`
// ticks, with the same warm-up and NaN-propagation rules as tsMeanKernel.
type tsSumKernel struct {
	rw *rollingWindow
}

func newTsSumKernel(window, nstock int) (*tsSumKernel, error) {
	rw, err := newRollingWindow(window, nstock)
	if err != nil {
		return nil, err
	}

	return &tsSumKernel{rw: rw}, nil
}

func (k *tsSumKernel) Update(in, out tensor.Tensor) {
	k.rw.push(in)
	if !k.rw.ready() {
		out.FillNaN()

		return
	}
	for lane := range out {
		sum, sawNaN := k.rw.laneSum(lane)
		if sawNaN {
			out[lane] = math.NaN()

			continue
		}
		out[lane] = sum
	}
}

func (k *tsSumKernel) OnDayBegin() { k.rw.reset() }
func (k *tsSumKernel) OnDayEnd()   {}

func (k *tsSumKernel) SaveState(w optree.StateWriter) error { return k.rw.SaveState(w) }
func (k *tsSumKernel) LoadState(r optree.StateReader) error { return k.rw.LoadState(r) }

// tsStdKernel computes, per lane, the population standard deviation of
// that lane's last `window` ticks.
type tsStdKernel struct {
	rw *rollingWindow
}

func newTsStdKernel(window, nstock int) (*tsStdKernel, error) {
	rw, err := newRollingWindow(window, nstock)
	if err != nil {
		return nil, err
	}

	return &tsStdKernel{rw: rw}, nil
}

func (k *tsStdKernel) Update(in, out tensor.Tensor) {
	k.rw.push(in)
	if !k.rw.ready() {
		out.FillNaN()

		return
	}
	for lane := range out {
		std, sawNaN := k.rw.laneStdPopulation(lane)
		if sawNaN {
			out[lane] = math.NaN()

			continue
		}
		out[lane] = std
	}
}

func (k *tsStdKernel) OnDayBegin() { k.rw.reset() }
func (k *tsStdKernel) OnDayEnd()   {}

func (k *tsStdKernel) SaveState(w optree.StateWriter) error { return k.rw.SaveState(w) }
func (k *tsStdKernel) LoadState(r optree.StateReader) error { return k.rw.LoadState(r) }

// tsDelayKernel emits, per lane, the value observed exactly `window` ticks
// ago, NaN until that much history has accumulated. Unlike the other
// rolling kernels, the output for the current tick is read from the buffer
// *before* the current tick's value is pushed: the window holds only
// strictly prior ticks, not the current one.
type tsDelayKernel struct {
	rw *rollingWindow
}

func newTsDelayKernel(window, nstock int) (*tsDelayKernel, error) {
	rw, err := newRollingWindow(window, nstock)
	if err != nil {
		return nil, err
	}

	return &tsDelayKernel{rw: rw}, nil
}

func (k *tsDelayKernel) Update(in, out tensor.Tensor) {
	if k.rw.ready() {
		for lane := range out {
			out[lane] = k.rw.oldest(lane)
		}
	} else {
		out.FillNaN()
	}
	k.rw.push(in)
}

func (k *tsDelayKernel) OnDayBegin() { k.rw.reset() }
func (k *tsDelayKernel) OnDayEnd()   {}

func (k *tsDelayKernel) SaveState(w optree.StateWriter) error { return k.rw.SaveState(w) }
func (k *tsDelayKernel) LoadState(r optree.StateReader) error { return k.rw.LoadState(r) }
