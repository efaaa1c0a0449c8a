package suite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/sphkern/kernels"
)

// TestCatalogPasses is the end-to-end certification run: every family,
// dimension and moment check in the built-in catalog must land inside
// its precision budget.
func TestCatalogPasses(t *testing.T) {
	rp := Run(Catalog())
	if rp.Failures() != 0 {
		rp.Print()
	}
	assert.Equal(t, 0, rp.Failures())
	assert.Equal(t, len(Catalog()), len(rp.Results))
}

func TestFilter(t *testing.T) {
	scenarios := Catalog()
	cubic := Filter(scenarios, "cubic-spline")
	assert.NotEmpty(t, cubic)
	assert.True(t, len(cubic) < len(scenarios))
	for _, s := range cubic {
		assert.Equal(t, "cubic-spline", s.Family)
	}
	assert.Equal(t, len(scenarios), len(Filter(scenarios, "")))
	assert.Empty(t, Filter(scenarios, "no-such-family"))
}

func TestScenarioFileParse(t *testing.T) {
	data := []byte(`
Title: Custom cubic checks
Scenarios:
  - Name: custom-normalization
    Family: cubic-spline
    Dim: 1
    H: 1.0
    Target: kernel-moment
    Bounds: [-2, 2]
    Expected: [1.0]
    Places: [8]
  - Name: custom-peak
    Family: cubic-spline
    Dim: 1
    H: 1.0
    Target: kernel-point
    Sep: [0, 0, 0]
    Expected: [0.6666666666666666]
    Places: [7]
`)
	var sf ScenarioFile
	require.NoError(t, sf.Parse(data))
	assert.Equal(t, "Custom cubic checks", sf.Title)
	require.Equal(t, 2, len(sf.Scenarios))
	s := sf.Scenarios[0]
	assert.Equal(t, KernelMoment, s.Target)
	assert.Equal(t, [2]float64{-2, 2}, s.Bounds)
	assert.Equal(t, []int{8}, s.Places)

	rp := Run(sf.Scenarios)
	if rp.Failures() != 0 {
		rp.Print()
	}
	assert.Equal(t, 0, rp.Failures())
}

func TestUnknownFamilyFailsGroup(t *testing.T) {
	scenarios := []Scenario{
		{Name: "a", Family: "no-such-family", Dim: 1, H: 1.0, Target: KernelMoment,
			Bounds: [2]float64{-2, 2}, Expected: []float64{1}, Places: []int{8}},
		{Name: "b", Family: "no-such-family", Dim: 1, H: 1.0, Target: GradientMoment,
			Bounds: [2]float64{-2, 2}, Expected: []float64{0}, Places: []int{8}},
		{Name: "c", Family: "cubic-spline", Dim: 1, H: 1.0, Target: KernelMoment,
			Bounds: [2]float64{-2, 2}, Expected: []float64{1}, Places: []int{8}},
	}
	rp := Run(scenarios)
	require.Equal(t, 3, len(rp.Results))
	var buildErr *kernels.KernelBuildError
	assert.True(t, errors.As(rp.Results[0].Err, &buildErr))
	assert.True(t, errors.As(rp.Results[1].Err, &buildErr))
	// the healthy group still runs to completion
	assert.True(t, rp.Results[2].Passed())
	assert.Equal(t, 2, rp.Failures())
}

func TestMismatchIsCollectedNotFatal(t *testing.T) {
	scenarios := []Scenario{
		{Name: "wrong-expectation", Family: "cubic-spline", Dim: 1, H: 1.0, Target: KernelMoment,
			Bounds: [2]float64{-2, 2}, Expected: []float64{2}, Places: []int{8}},
		{Name: "good", Family: "cubic-spline", Dim: 1, H: 1.0, Target: KernelMoment,
			Bounds: [2]float64{-2, 2}, Expected: []float64{1}, Places: []int{8}},
	}
	rp := Run(scenarios)
	require.Equal(t, 2, len(rp.Results))
	sr := rp.Results[0]
	assert.False(t, sr.Passed())
	require.NoError(t, sr.Err) // a mismatch is a recorded check, not an abort
	require.Equal(t, 1, len(sr.Checks))
	assert.Error(t, sr.Checks[0].Err())
	assert.True(t, rp.Results[1].Passed())
	assert.Equal(t, 1, rp.Failures())
}

func TestUnknownTarget(t *testing.T) {
	rp := Run([]Scenario{{Name: "x", Family: "cubic-spline", Dim: 1, H: 1.0, Target: "bogus"}})
	require.Equal(t, 1, len(rp.Results))
	assert.Error(t, rp.Results[0].Err)
}
