package suite

import "math"

// Lattice resolutions the 2D/3D budgets are calibrated against; change
// them only together with the Places entries below
const (
	Res2D = 101
	Res3D = 51
)

// Reference configuration for the grid scenarios: kernel centered on
// the unit square/cube with a support small enough to stay inside it
const (
	gridH      = 0.15
	gridCenter = 0.5
)

// Catalog returns the fixed verification suite. Point checks come
// first per family as smoke tests, then the moment checks. Expected
// values are analytic; Places budgets reflect the integration strategy
// (adaptive 1D vs fixed lattice) and, for the truncated Gaussian, its
// missing tail mass.
func Catalog() (scenarios []Scenario) {
	scenarios = append(scenarios, cubicScenarios()...)
	scenarios = append(scenarios, quinticScenarios()...)
	scenarios = append(scenarios, gaussianScenarios()...)
	return
}

func cubicScenarios() (s []Scenario) {
	const fam = "cubic-spline"
	s = []Scenario{
		// 1D smoke
		point("cubic-1d-peak-value", fam, 1, KernelPoint, 0, 2./3., 7),
		point("cubic-1d-beyond-support-value", fam, 1, KernelPoint, 3, 0, 7),
		point("cubic-1d-center-gradient", fam, 1, GradientPoint, 0, 0, 7),
		point("cubic-1d-beyond-support-gradient", fam, 1, GradientPoint, 3, 0, 7),
		// 1D moments
		kmom1("cubic-1d-normalization", fam, 1.0, -2, 2, 0, 0, 1.0, 8),
		kmom1("cubic-1d-normalization-h05", fam, 0.5, -2, 2, 0, 0, 1.0, 8),
		kmom1("cubic-1d-normalization-translated", fam, 1.0, 0, 4, 2, 0, 1.0, 8),
		kmom1("cubic-1d-first-moment", fam, 1.0, -2, 2, 0, 1, 0.0, 8),
		gmom1("cubic-1d-gradient-zeroth-moment", fam, 1.0, -2, 2, 0, 0, 0.0, 8),
		gmom1("cubic-1d-gradient-zeroth-moment-h05", fam, 0.5, -2, 2, 0, 0, 0.0, 8),
		gmom1("cubic-1d-gradient-zeroth-moment-translated", fam, 1.0, 0, 4, 2, 0, 0.0, 8),
		gmom1("cubic-1d-gradient-linear-consistency", fam, 1.0, 0, 4, 2, 1, -1.0, 8),
		// 2D smoke
		point("cubic-2d-peak-value", fam, 2, KernelPoint, 0, 10./(7.*math.Pi), 7),
		point("cubic-2d-beyond-support-value", fam, 2, KernelPoint, 3, 0, 7),
		point("cubic-2d-center-gradient", fam, 2, GradientPoint, 0, 0, 7),
		point("cubic-2d-beyond-support-gradient", fam, 2, GradientPoint, 3, 0, 7),
		// 2D moments
		kmom2("cubic-2d-normalization", fam, 0, 0, 1.0, 7),
		kmom2("cubic-2d-first-moment-y", fam, 0, 1, 0.0, 7),
		kmom2("cubic-2d-first-moment-x", fam, 1, 0, 0.0, 7),
		kmom2("cubic-2d-mixed-moment", fam, 1, 1, 0.0, 7),
		gmom2("cubic-2d-gradient-zeroth-moment", fam, 0, 0, []float64{0, 0}, []int{7, 7}),
		gmom2("cubic-2d-gradient-linear-consistency-x", fam, 1, 0, []float64{-1, 0}, []int{6, 8}),
		gmom2("cubic-2d-gradient-linear-consistency-y", fam, 0, 1, []float64{0, -1}, []int{8, 6}),
		gmom2("cubic-2d-gradient-mixed-moment", fam, 1, 1, []float64{0, 0}, []int{8, 8}),
		// 3D smoke
		point("cubic-3d-peak-value", fam, 3, KernelPoint, 0, 1./math.Pi, 7),
		point("cubic-3d-beyond-support-value", fam, 3, KernelPoint, 3, 0, 7),
		point("cubic-3d-center-gradient", fam, 3, GradientPoint, 0, 0, 7),
		point("cubic-3d-beyond-support-gradient", fam, 3, GradientPoint, 3, 0, 7),
		// 3D moments
		kmom3("cubic-3d-normalization", fam, 0, 0, 0, 1.0, 6),
		kmom3("cubic-3d-first-moment-z", fam, 0, 0, 1, 0.0, 7),
		kmom3("cubic-3d-first-moment-y", fam, 0, 1, 0, 0.0, 7),
		kmom3("cubic-3d-mixed-moment-xz", fam, 1, 0, 1, 0.0, 7),
		gmom3("cubic-3d-gradient-zeroth-moment", fam, 0, 0, 0, []float64{0, 0, 0}, []int{7, 7, 7}),
		gmom3("cubic-3d-gradient-linear-consistency-x", fam, 1, 0, 0, []float64{-1, 0, 0}, []int{4, 8, 8}),
		gmom3("cubic-3d-gradient-linear-consistency-y", fam, 0, 1, 0, []float64{0, -1, 0}, []int{8, 4, 6}),
		gmom3("cubic-3d-gradient-linear-consistency-z", fam, 0, 0, 1, []float64{0, 0, -1}, []int{8, 8, 4}),
	}
	return
}

func quinticScenarios() (s []Scenario) {
	const fam = "quintic-spline"
	s = []Scenario{
		// 1D smoke: W(0) = 66 sigma
		point("quintic-1d-peak-value", fam, 1, KernelPoint, 0, 66./120., 7),
		point("quintic-1d-beyond-support-value", fam, 1, KernelPoint, 4, 0, 7),
		point("quintic-1d-center-gradient", fam, 1, GradientPoint, 0, 0, 7),
		// 1D moments, support 3h
		kmom1("quintic-1d-normalization", fam, 1.0, -3, 3, 0, 0, 1.0, 8),
		kmom1("quintic-1d-normalization-h05", fam, 0.5, -3, 3, 0, 0, 1.0, 8),
		kmom1("quintic-1d-normalization-translated", fam, 1.0, -1, 5, 2, 0, 1.0, 8),
		kmom1("quintic-1d-first-moment", fam, 1.0, -3, 3, 0, 1, 0.0, 8),
		gmom1("quintic-1d-gradient-zeroth-moment", fam, 1.0, -3, 3, 0, 0, 0.0, 8),
		gmom1("quintic-1d-gradient-linear-consistency", fam, 1.0, -1, 5, 2, 1, -1.0, 8),
		// 2D
		point("quintic-2d-peak-value", fam, 2, KernelPoint, 0, 231./(239.*math.Pi), 7),
		point("quintic-2d-beyond-support-value", fam, 2, KernelPoint, 4, 0, 7),
		kmom2("quintic-2d-normalization", fam, 0, 0, 1.0, 6),
		kmom2("quintic-2d-first-moment-x", fam, 1, 0, 0.0, 7),
		kmom2("quintic-2d-mixed-moment", fam, 1, 1, 0.0, 7),
		gmom2("quintic-2d-gradient-zeroth-moment", fam, 0, 0, []float64{0, 0}, []int{7, 7}),
		gmom2("quintic-2d-gradient-linear-consistency-x", fam, 1, 0, []float64{-1, 0}, []int{5, 7}),
		// 3D
		point("quintic-3d-peak-value", fam, 3, KernelPoint, 0, 11./(20.*math.Pi), 7),
		point("quintic-3d-beyond-support-gradient", fam, 3, GradientPoint, 4, 0, 7),
		kmom3("quintic-3d-normalization", fam, 0, 0, 0, 1.0, 5),
		kmom3("quintic-3d-first-moment-z", fam, 0, 0, 1, 0.0, 7),
		gmom3("quintic-3d-gradient-linear-consistency-x", fam, 1, 0, 0, []float64{-1, 0, 0}, []int{3, 7, 7}),
	}
	return
}

func gaussianScenarios() (s []Scenario) {
	const (
		fam = "gaussian"
	)
	var (
		sqrtPi = math.Sqrt(math.Pi)
	)
	s = []Scenario{
		// smoke: W(0) = sigma
		point("gaussian-1d-peak-value", fam, 1, KernelPoint, 0, 1./sqrtPi, 7),
		point("gaussian-1d-beyond-cutoff-value", fam, 1, KernelPoint, 4, 0, 7),
		point("gaussian-2d-peak-value", fam, 2, KernelPoint, 0, 1./math.Pi, 7),
		point("gaussian-3d-peak-value", fam, 3, KernelPoint, 0, 1./(math.Pi*sqrtPi), 7),
		point("gaussian-3d-beyond-cutoff-gradient", fam, 3, GradientPoint, 4, 0, 7),
		// 1D moments; budgets reflect the mass beyond the 3h cutoff
		kmom1("gaussian-1d-normalization", fam, 1.0, -3, 3, 0, 0, 1.0, 4),
		kmom1("gaussian-1d-normalization-h05", fam, 0.5, -3, 3, 0, 0, 1.0, 4),
		kmom1("gaussian-1d-first-moment", fam, 1.0, -3, 3, 0, 1, 0.0, 8),
		gmom1("gaussian-1d-gradient-zeroth-moment", fam, 1.0, -3, 3, 0, 0, 0.0, 8),
		gmom1("gaussian-1d-gradient-linear-consistency", fam, 1.0, -1, 5, 2, 1, -1.0, 3),
		// 2D; the cutoff costs ~1.3e-3 on the gradient x component
		kmom2("gaussian-2d-normalization", fam, 0, 0, 1.0, 3),
		kmom2("gaussian-2d-first-moment-x", fam, 1, 0, 0.0, 7),
		gmom2("gaussian-2d-gradient-zeroth-moment", fam, 0, 0, []float64{0, 0}, []int{7, 7}),
		gmom2("gaussian-2d-gradient-linear-consistency-x", fam, 1, 0, []float64{-1, 0}, []int{2, 7}),
		// 3D; the 3h tail mass alone costs ~4.4e-4 here, so 2 places
		kmom3("gaussian-3d-normalization", fam, 0, 0, 0, 1.0, 2),
		kmom3("gaussian-3d-first-moment-z", fam, 0, 0, 1, 0.0, 7),
		gmom3("gaussian-3d-gradient-linear-consistency-x", fam, 1, 0, 0, []float64{-1, 0, 0}, []int{2, 7, 7}),
	}
	return
}

// point builds a smoke check at separation (sep,0,0) from the kernel
// center, h=1. Gradient points compare the x component.
func point(name, family string, dim int, target Target, sep, expected float64, places int) Scenario {
	return Scenario{
		Name:     name,
		Family:   family,
		Dim:      dim,
		H:        1.0,
		Target:   target,
		Sep:      [3]float64{sep, 0, 0},
		Expected: []float64{expected},
		Places:   []int{places},
	}
}

func kmom1(name, family string, h, a, b, xj float64, order int, expected float64, places int) Scenario {
	return Scenario{
		Name:     name,
		Family:   family,
		Dim:      1,
		H:        h,
		Target:   KernelMoment,
		Orders:   [3]int{order, 0, 0},
		Ref:      [3]float64{xj, 0, 0},
		Bounds:   [2]float64{a, b},
		Expected: []float64{expected},
		Places:   []int{places},
	}
}

func gmom1(name, family string, h, a, b, xj float64, order int, expected float64, places int) Scenario {
	s := kmom1(name, family, h, a, b, xj, order, expected, places)
	s.Target = GradientMoment
	return s
}

func kmom2(name, family string, m, n int, expected float64, places int) Scenario {
	return Scenario{
		Name:       name,
		Family:     family,
		Dim:        2,
		H:          gridH,
		Target:     KernelMoment,
		Orders:     [3]int{m, n, 0},
		Ref:        [3]float64{gridCenter, gridCenter, 0},
		Resolution: Res2D,
		Expected:   []float64{expected},
		Places:     []int{places},
	}
}

func gmom2(name, family string, m, n int, expected []float64, places []int) Scenario {
	s := kmom2(name, family, m, n, 0, 0)
	s.Target = GradientMoment
	s.Expected = expected
	s.Places = places
	return s
}

func kmom3(name, family string, l, m, n int, expected float64, places int) Scenario {
	return Scenario{
		Name:       name,
		Family:     family,
		Dim:        3,
		H:          gridH,
		Target:     KernelMoment,
		Orders:     [3]int{l, m, n},
		Ref:        [3]float64{gridCenter, gridCenter, gridCenter},
		Resolution: Res3D,
		Expected:   []float64{expected},
		Places:     []int{places},
	}
}

func gmom3(name, family string, l, m, n int, expected []float64, places []int) Scenario {
	s := kmom3(name, family, l, m, n, 0, 0)
	s.Target = GradientMoment
	s.Expected = expected
	s.Places = places
	return s
}
