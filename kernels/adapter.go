package kernels

import (
	"math"
	"sync"
)

// rMin guards the gradient direction vector against division by a
// vanishing separation; the gradient of a radially symmetric kernel is
// zero at its own center
const rMin = 1.e-12

// Adapter flattens a Handle into the six-coordinate callable pair the
// moment checker integrates: a scalar weight and a 3-component gradient
// with components zeroed beyond the active dimension. It forwards every
// call to the bound kernel without caching. A non-finite kernel output
// inside the support latches a NonFiniteKernelValue fault; subsequent
// evaluation returns 0 so the surrounding quadrature stays well posed
// while the caller aborts on Fault().
type Adapter struct {
	hd    *Handle
	mu    sync.Mutex
	fault error
}

func NewAdapter(hd *Handle) *Adapter {
	return &Adapter{hd: hd}
}

func (ad *Adapter) Handle() *Handle { return ad.hd }

func (ad *Adapter) Value(xi, yi, zi, xj, yj, zj, h float64) (w float64) {
	r := separation(xi, yi, zi, xj, yj, zj)
	w = ad.hd.W(r, h)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		ad.setFault(&NonFiniteKernelValue{Family: ad.hd.Family, R: r, H: h, What: "kernel value"})
		w = 0
	}
	return
}

func (ad *Adapter) Gradient(xi, yi, zi, xj, yj, zj, h float64) (gx, gy, gz float64) {
	var (
		dx, dy, dz = xi - xj, yi - yj, zi - zj
	)
	r := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if r < rMin {
		return
	}
	scale := ad.hd.DWdr(r, h) / r
	gx = scale * dx
	if ad.hd.Dim > 1 {
		gy = scale * dy
	}
	if ad.hd.Dim > 2 {
		gz = scale * dz
	}
	if math.IsNaN(gx+gy+gz) || math.IsInf(gx+gy+gz, 0) {
		ad.setFault(&NonFiniteKernelValue{Family: ad.hd.Family, R: r, H: h, What: "kernel gradient"})
		gx, gy, gz = 0, 0, 0
	}
	return
}

// Fault reports the first non-finite evaluation seen, if any
func (ad *Adapter) Fault() (err error) {
	ad.mu.Lock()
	err = ad.fault
	ad.mu.Unlock()
	return
}

func (ad *Adapter) setFault(err error) {
	ad.mu.Lock()
	if ad.fault == nil {
		ad.fault = err
	}
	ad.mu.Unlock()
}

func separation(xi, yi, zi, xj, yj, zj float64) (r float64) {
	var (
		dx, dy, dz = xi - xj, yi - yj, zi - zj
	)
	r = math.Sqrt(dx*dx + dy*dy + dz*dz)
	return
}
