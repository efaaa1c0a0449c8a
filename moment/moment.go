/*
Package moment certifies the mathematical correctness of a smoothing
kernel by computing moment integrals of its value and gradient and
classifying them against analytically known expectations.

The integration strategy is split by dimension on purpose: 1D moments
use adaptive quadrature, 2D/3D moments use a fixed-resolution lattice
sum whose tolerances were calibrated at 101 (2D) and 51 (3D) points per
axis. Conventions: 1D kernel moments are taken about the origin (x^k),
1D gradient moments about the reference point ((x-xj)^k), and 2D/3D
moments about the reference point on the unit square/cube.
*/
package moment

import (
	"math"

	"github.com/notargets/sphkern/kernels"
	"github.com/notargets/sphkern/quadrature"
	"github.com/notargets/sphkern/utils"
)

// Spec describes one moment integral
type Spec struct {
	Dim        int
	H          float64
	Orders     [3]int     // monomial exponents per axis; only Orders[0] is used in 1D
	Ref        [3]float64 // kernel center xj / (x0,y0,z0)
	Bounds     [2]float64 // 1D integration interval; unused for the 2D/3D lattice
	Resolution int        // lattice points per axis for 2D/3D
}

// Result is the outcome of one numeric-vs-expected comparison
type Result struct {
	Value     float64
	Expected  float64
	Diff      float64
	Tolerance float64
	Passed    bool
}

// Err converts a failed comparison into a MomentMismatch; nil when passed
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return &MomentMismatch{Value: r.Value, Expected: r.Expected, Diff: r.Diff, Tolerance: r.Tolerance}
}

// Tolerance converts a decimal-places budget into the absolute
// tolerance of an assertAlmostEqual style comparison
func Tolerance(places int) float64 {
	return 0.5 * math.Pow(10, -float64(places))
}

// Classify compares a computed moment against its expected value within
// a decimal-places budget
func Classify(value, expected float64, places int) (res Result) {
	res = Result{
		Value:     value,
		Expected:  expected,
		Diff:      math.Abs(value - expected),
		Tolerance: Tolerance(places),
	}
	res.Passed = res.Diff <= res.Tolerance
	return
}

// CheckKernelMoment computes the Orders moment of the kernel weight:
// integral of x^k W in 1D over Bounds, or of the monomial about Ref
// times W over the unit square/cube in 2D/3D
func CheckKernelMoment(ad *kernels.Adapter, spec Spec) (v float64, err error) {
	switch spec.Dim {
	case 1:
		var (
			xj = spec.Ref[0]
			k  = spec.Orders[0]
			h  = spec.H
		)
		f := func(x float64) (w float64) {
			w = ad.Value(x, 0, 0, xj, 0, 0, h)
			if k > 0 { // plain W at order 0, sidestepping 0^0
				w *= utils.POW(x, k)
			}
			return
		}
		if v, err = quadrature.Integrate1D(f, spec.Bounds[0], spec.Bounds[1]); err != nil {
			return
		}
	case 2, 3:
		f := func(x, y, z float64) float64 {
			return monomial(spec, x, y, z) * ad.Value(x, y, z, spec.Ref[0], spec.Ref[1], spec.Ref[2], spec.H)
		}
		if v, err = quadrature.GridSum(f, spec.Dim, spec.Resolution); err != nil {
			return
		}
	default:
		err = &quadrature.ConfigError{Reason: "moment dimension must be 1, 2 or 3"}
		return
	}
	if fault := ad.Fault(); fault != nil {
		return 0, fault
	}
	return
}

// CheckGradientMoment is the gradient analog; the result always carries
// three components, zero beyond the active dimension
func CheckGradientMoment(ad *kernels.Adapter, spec Spec) (v []float64, err error) {
	switch spec.Dim {
	case 1:
		var (
			xj = spec.Ref[0]
			k  = spec.Orders[0]
			h  = spec.H
		)
		f := func(x float64) (g float64) {
			g, _, _ = ad.Gradient(x, 0, 0, xj, 0, 0, h)
			if k > 0 {
				g *= utils.POW(x-xj, k)
			}
			return
		}
		var gx float64
		if gx, err = quadrature.Integrate1D(f, spec.Bounds[0], spec.Bounds[1]); err != nil {
			return
		}
		v = []float64{gx, 0, 0}
	case 2, 3:
		f := func(x, y, z float64) []float64 {
			fac := monomial(spec, x, y, z)
			gx, gy, gz := ad.Gradient(x, y, z, spec.Ref[0], spec.Ref[1], spec.Ref[2], spec.H)
			return []float64{fac * gx, fac * gy, fac * gz}
		}
		if v, err = quadrature.GridSumVec(f, spec.Dim, spec.Resolution, 3); err != nil {
			return
		}
	default:
		err = &quadrature.ConfigError{Reason: "moment dimension must be 1, 2 or 3"}
		return
	}
	if fault := ad.Fault(); fault != nil {
		return nil, fault
	}
	return
}

func monomial(spec Spec, x, y, z float64) (fac float64) {
	fac = utils.POW(x-spec.Ref[0], spec.Orders[0]) * utils.POW(y-spec.Ref[1], spec.Orders[1])
	if spec.Dim == 3 {
		fac *= utils.POW(z-spec.Ref[2], spec.Orders[2])
	}
	return
}
