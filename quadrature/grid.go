package quadrature

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/sphkern/utils"
)

/*
Grid-sum quadrature: a uniform lattice over the unit square or cube
with res points per axis, both endpoints included, approximating

	integral ~= sum(f at lattice points) * cellVol
	cellVol   = (1/(res-1))^dims

Deliberately non-adaptive - the scenario tolerances are calibrated
against exactly this lattice, so upgrading it would invalidate them.
The outermost axis is split across workers; the reduction is a plain
sum, so partial order does not matter beyond floating point rounding,
and partials are combined in bucket order for reproducibility.
*/

// GridSum integrates a scalar integrand over [0,1]^dims, dims in {2,3}.
// The integrand receives z=0 in 2D.
func GridSum(f func(x, y, z float64) float64, dims, res int, workersO ...int) (v float64, err error) {
	if err = checkGrid(dims, res); err != nil {
		return
	}
	var (
		pts      = utils.LinSpace(0, 1, res)
		pm       = utils.NewPartitionMap(workers(workersO), res)
		partials = make([]float64, pm.ParallelDegree)
		wg       sync.WaitGroup
	)
	for n := 0; n < pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var (
				sum        float64
				iMin, iMax = pm.GetBucketRange(n)
			)
			for i := iMin; i < iMax; i++ {
				x := pts[i]
				for j := 0; j < res; j++ {
					y := pts[j]
					if dims == 2 {
						sum += f(x, y, 0)
						continue
					}
					for k := 0; k < res; k++ {
						sum += f(x, y, pts[k])
					}
				}
			}
			partials[n] = sum
		}(n)
	}
	wg.Wait()
	v = floats.Sum(partials) * cellVol(dims, res)
	return
}

// GridSumVec integrates a vector integrand of fixed arity component by
// component over the same lattice
func GridSumVec(f func(x, y, z float64) []float64, dims, res, arity int, workersO ...int) (v []float64, err error) {
	if err = checkGrid(dims, res); err != nil {
		return
	}
	if arity < 1 {
		err = &ConfigError{Reason: fmt.Sprintf("invalid integrand arity %d", arity)}
		return
	}
	var (
		pts      = utils.LinSpace(0, 1, res)
		pm       = utils.NewPartitionMap(workers(workersO), res)
		partials = make([][]float64, pm.ParallelDegree)
		wg       sync.WaitGroup
	)
	for n := 0; n < pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var (
				sum        = make([]float64, arity)
				iMin, iMax = pm.GetBucketRange(n)
			)
			for i := iMin; i < iMax; i++ {
				x := pts[i]
				for j := 0; j < res; j++ {
					y := pts[j]
					if dims == 2 {
						floats.Add(sum, f(x, y, 0))
						continue
					}
					for k := 0; k < res; k++ {
						floats.Add(sum, f(x, y, pts[k]))
					}
				}
			}
			partials[n] = sum
		}(n)
	}
	wg.Wait()
	v = make([]float64, arity)
	for n := range partials {
		floats.Add(v, partials[n])
	}
	floats.Scale(cellVol(dims, res), v)
	return
}

func cellVol(dims, res int) float64 {
	return utils.POW(1./float64(res-1), dims)
}

func checkGrid(dims, res int) (err error) {
	if dims != 2 && dims != 3 {
		return &ConfigError{Reason: fmt.Sprintf("grid quadrature supports 2D and 3D, got %dD", dims)}
	}
	if res < 2 {
		return &ConfigError{Reason: fmt.Sprintf("lattice needs at least 2 points per axis, got %d", res)}
	}
	return
}

func workers(workersO []int) (np int) {
	np = runtime.GOMAXPROCS(0)
	if len(workersO) > 0 && workersO[0] > 0 {
		np = workersO[0]
	}
	return
}
