package kernels

import (
	"math"

	"github.com/notargets/sphkern/utils"
)

/*
Smoothing kernels are expressed as a dimensionless radial profile f(q),
q = r/h, with a per-dimension normalization Sigma(dim) so that

	W(r; h) = Sigma(dim)/h^dim * f(q)

and the gradient follows from the chain rule,

	dW/dr = Sigma(dim)/h^(dim+1) * f'(q)

Profiles are compactly supported: f and f' are identically zero for
q >= Q(), the support radius in units of h.
*/
type Shape interface {
	F(q float64) float64
	DF(q float64) float64
	Q() float64
	Sigma(dim int) float64
}

// Builder constructs a kernel Handle for a family at a given dimension
// and smoothing length. External kernel producers (code generators,
// plugin loaders) plug in here; the verification core only ever sees
// the resulting Handle.
type Builder func(dim int, h float64) (*Handle, error)

var families = map[string]Builder{
	"cubic-spline":   shapeBuilder("cubic-spline", CubicSpline{}),
	"quintic-spline": shapeBuilder("quintic-spline", QuinticSpline{}),
	"gaussian":       shapeBuilder("gaussian", Gaussian{}),
}

// Register adds or replaces a kernel family builder
func Register(name string, b Builder) {
	families[name] = b
}

func Families() (names []string) {
	for name := range families {
		names = append(names, name)
	}
	return
}

func Build(family string, dim int, h float64) (hd *Handle, err error) {
	b, ok := families[family]
	if !ok {
		return nil, &KernelBuildError{Family: family, Dim: dim, Reason: "unknown kernel family"}
	}
	return b(dim, h)
}

func shapeBuilder(name string, s Shape) Builder {
	return func(dim int, h float64) (hd *Handle, err error) {
		if dim < 1 || dim > 3 {
			return nil, &KernelBuildError{Family: name, Dim: dim, Reason: "unsupported dimension"}
		}
		if !(h > 0) {
			return nil, &KernelBuildError{Family: name, Dim: dim, Reason: "smoothing length must be positive"}
		}
		hd = &Handle{
			Family: name,
			Dim:    dim,
			H:      h,
			shape:  s,
		}
		return
	}
}

// Handle is an instantiated kernel: family profile bound to a dimension
// and smoothing length. Immutable once built.
type Handle struct {
	Family string
	Dim    int
	H      float64
	shape  Shape
}

// NewHandle binds an arbitrary Shape, primarily for externally supplied
// profiles registered through Register
func NewHandle(family string, dim int, h float64, shape Shape) (hd *Handle, err error) {
	if dim < 1 || dim > 3 {
		return nil, &KernelBuildError{Family: family, Dim: dim, Reason: "unsupported dimension"}
	}
	hd = &Handle{Family: family, Dim: dim, H: h, shape: shape}
	return
}

// W evaluates the kernel weight at separation r with smoothing length h.
// The h argument is honored per-call so a single Handle can be probed at
// several smoothing lengths, as the verification scenarios do.
func (hd *Handle) W(r, h float64) (w float64) {
	q := r / h
	if q >= hd.shape.Q() {
		return 0
	}
	w = hd.shape.Sigma(hd.Dim) / utils.POW(h, hd.Dim) * hd.shape.F(q)
	return
}

// DWdr evaluates the radial derivative dW/dr
func (hd *Handle) DWdr(r, h float64) (dw float64) {
	q := r / h
	if q >= hd.shape.Q() {
		return 0
	}
	dw = hd.shape.Sigma(hd.Dim) / utils.POW(h, hd.Dim+1) * hd.shape.DF(q)
	return
}

// SupportRadius is the physical support extent for smoothing length h
func (hd *Handle) SupportRadius(h float64) float64 {
	return hd.shape.Q() * h
}

/*
CubicSpline is the M4 B-spline kernel with support 2h:

	f(q) = 1 - 1.5 q^2 + 0.75 q^3     0 <= q <= 1
	     = 0.25 (2-q)^3               1 <  q <= 2

Normalizations 2/3, 10/(7 pi), 1/pi across 1D/2D/3D.
*/
type CubicSpline struct{}

func (CubicSpline) Q() float64 { return 2 }

func (CubicSpline) Sigma(dim int) (sigma float64) {
	switch dim {
	case 1:
		sigma = 2. / 3.
	case 2:
		sigma = 10. / (7. * math.Pi)
	case 3:
		sigma = 1. / math.Pi
	}
	return
}

func (CubicSpline) F(q float64) (f float64) {
	switch {
	case q <= 1:
		f = 1 - 1.5*q*q*(1-0.5*q)
	case q <= 2:
		tm2 := 2 - q
		f = 0.25 * tm2 * tm2 * tm2
	}
	return
}

func (CubicSpline) DF(q float64) (df float64) {
	switch {
	case q <= 1:
		df = -3*q + 2.25*q*q
	case q <= 2:
		tm2 := 2 - q
		df = -0.75 * tm2 * tm2
	}
	return
}

/*
QuinticSpline is the M6 B-spline kernel with support 3h:

	f(q) = (3-q)^5 - 6(2-q)^5 + 15(1-q)^5   0 <= q <= 1
	     = (3-q)^5 - 6(2-q)^5               1 <  q <= 2
	     = (3-q)^5                          2 <  q <= 3

Normalizations 1/120, 7/(478 pi), 1/(120 pi).
*/
type QuinticSpline struct{}

func (QuinticSpline) Q() float64 { return 3 }

func (QuinticSpline) Sigma(dim int) (sigma float64) {
	switch dim {
	case 1:
		sigma = 1. / 120.
	case 2:
		sigma = 7. / (478. * math.Pi)
	case 3:
		sigma = 1. / (120. * math.Pi)
	}
	return
}

func (QuinticSpline) F(q float64) (f float64) {
	switch {
	case q <= 1:
		f = utils.POW(3-q, 5) - 6*utils.POW(2-q, 5) + 15*utils.POW(1-q, 5)
	case q <= 2:
		f = utils.POW(3-q, 5) - 6*utils.POW(2-q, 5)
	case q <= 3:
		f = utils.POW(3-q, 5)
	}
	return
}

func (QuinticSpline) DF(q float64) (df float64) {
	switch {
	case q <= 1:
		df = -5*utils.POW(3-q, 4) + 30*utils.POW(2-q, 4) - 75*utils.POW(1-q, 4)
	case q <= 2:
		df = -5*utils.POW(3-q, 4) + 30*utils.POW(2-q, 4)
	case q <= 3:
		df = -5 * utils.POW(3-q, 4)
	}
	return
}

/*
Gaussian is exp(-q^2) truncated at 3h with the untruncated
normalization 1/(pi^(d/2) h^d). The mass lost beyond the cutoff is
~2.2e-5 in 1D and ~4.4e-4 in 3D, which is why its scenario budgets are
looser than the spline families'.
*/
type Gaussian struct{}

func (Gaussian) Q() float64 { return 3 }

func (Gaussian) Sigma(dim int) (sigma float64) {
	switch dim {
	case 1:
		sigma = 1. / math.Sqrt(math.Pi)
	case 2:
		sigma = 1. / math.Pi
	case 3:
		sigma = 1. / (math.Pi * math.Sqrt(math.Pi))
	}
	return
}

func (Gaussian) F(q float64) (f float64) {
	if q <= 3 {
		f = math.Exp(-q * q)
	}
	return
}

func (Gaussian) DF(q float64) (df float64) {
	if q <= 3 {
		df = -2 * q * math.Exp(-q*q)
	}
	return
}
