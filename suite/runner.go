package suite

import (
	"fmt"

	"github.com/notargets/sphkern/kernels"
	"github.com/notargets/sphkern/moment"
)

type ScenarioResult struct {
	Scenario Scenario
	Checks   []moment.Result
	Err      error // build / non-finite / config failure, fatal to this scenario only
}

func (sr ScenarioResult) Passed() (ok bool) {
	if sr.Err != nil {
		return
	}
	for _, c := range sr.Checks {
		if !c.Passed {
			return
		}
	}
	ok = true
	return
}

type Report struct {
	Results []ScenarioResult
}

func (rp *Report) Failures() (n int) {
	for _, sr := range rp.Results {
		if !sr.Passed() {
			n++
		}
	}
	return
}

func (rp *Report) Print() {
	for _, sr := range rp.Results {
		status := "PASS"
		if !sr.Passed() {
			status = "FAIL"
		}
		fmt.Printf("%-4s %s\n", status, sr.Scenario)
		if sr.Err != nil {
			fmt.Printf("     error: %s\n", sr.Err)
		}
		for _, c := range sr.Checks {
			if !c.Passed {
				fmt.Printf("     got %.12g, expected %.12g, diff %.3g > tol %.3g\n",
					c.Value, c.Expected, c.Diff, c.Tolerance)
			}
		}
	}
	fmt.Printf("%d scenarios, %d passed, %d failed\n",
		len(rp.Results), len(rp.Results)-rp.Failures(), rp.Failures())
}

// Filter keeps only scenarios of one kernel family; empty family keeps all
func Filter(scenarios []Scenario, family string) (out []Scenario) {
	if family == "" {
		return scenarios
	}
	for _, s := range scenarios {
		if s.Family == family {
			out = append(out, s)
		}
	}
	return
}

type groupKey struct {
	Family string
	Dim    int
	H      float64
}

// Run executes scenarios in order. One kernel Handle is built per
// (family, dimension, h) group and shared read-only by its scenarios;
// a failed build marks every scenario of that group failed without
// stopping the rest of the run. Moment mismatches are collected in the
// per-scenario checks, never aborting the suite.
func Run(scenarios []Scenario) (rp *Report) {
	var (
		handles   = make(map[groupKey]*kernels.Handle)
		buildErrs = make(map[groupKey]error)
	)
	rp = &Report{}
	for _, s := range scenarios {
		key := groupKey{Family: s.Family, Dim: s.Dim, H: s.H}
		hd, ok := handles[key]
		if !ok {
			if err, failed := buildErrs[key]; failed {
				rp.Results = append(rp.Results, ScenarioResult{Scenario: s, Err: err})
				continue
			}
			var err error
			if hd, err = kernels.Build(s.Family, s.Dim, s.H); err != nil {
				buildErrs[key] = err
				rp.Results = append(rp.Results, ScenarioResult{Scenario: s, Err: err})
				continue
			}
			handles[key] = hd
		}
		rp.Results = append(rp.Results, runOne(kernels.NewAdapter(hd), s))
	}
	return
}

func runOne(ad *kernels.Adapter, s Scenario) (sr ScenarioResult) {
	sr = ScenarioResult{Scenario: s}
	spec := moment.Spec{
		Dim:        s.Dim,
		H:          s.H,
		Orders:     s.Orders,
		Ref:        s.Ref,
		Bounds:     s.Bounds,
		Resolution: s.Resolution,
	}
	switch s.Target {
	case KernelPoint:
		w := ad.Value(s.Ref[0]+s.Sep[0], s.Ref[1]+s.Sep[1], s.Ref[2]+s.Sep[2],
			s.Ref[0], s.Ref[1], s.Ref[2], s.H)
		if sr.Err = ad.Fault(); sr.Err != nil {
			return
		}
		sr.Checks = []moment.Result{moment.Classify(w, s.Expected[0], s.Places[0])}
	case GradientPoint:
		gx, gy, gz := ad.Gradient(s.Ref[0]+s.Sep[0], s.Ref[1]+s.Sep[1], s.Ref[2]+s.Sep[2],
			s.Ref[0], s.Ref[1], s.Ref[2], s.H)
		if sr.Err = ad.Fault(); sr.Err != nil {
			return
		}
		g := []float64{gx, gy, gz}
		for i := range s.Expected {
			sr.Checks = append(sr.Checks, moment.Classify(g[i], s.Expected[i], s.Places[i]))
		}
	case KernelMoment:
		v, err := moment.CheckKernelMoment(ad, spec)
		if err != nil {
			sr.Err = err
			return
		}
		sr.Checks = []moment.Result{moment.Classify(v, s.Expected[0], s.Places[0])}
	case GradientMoment:
		v, err := moment.CheckGradientMoment(ad, spec)
		if err != nil {
			sr.Err = err
			return
		}
		for i := range s.Expected {
			sr.Checks = append(sr.Checks, moment.Classify(v[i], s.Expected[i], s.Places[i]))
		}
	default:
		sr.Err = fmt.Errorf("unknown scenario target %q", s.Target)
	}
	return
}
