package kernels

import "fmt"

// KernelBuildError reports a kernel family that cannot be instantiated
// for the requested dimension or smoothing length
type KernelBuildError struct {
	Family string
	Dim    int
	Reason string
}

func (e *KernelBuildError) Error() string {
	return fmt.Sprintf("cannot build kernel %q in %dD: %s", e.Family, e.Dim, e.Reason)
}

// NonFiniteKernelValue reports a NaN or Inf produced inside the kernel
// support. It is fatal to the scenario that triggered it.
type NonFiniteKernelValue struct {
	Family string
	R, H   float64
	What   string
}

func (e *NonFiniteKernelValue) Error() string {
	return fmt.Sprintf("kernel %q returned non-finite %s at r=%g, h=%g", e.Family, e.What, e.R, e.H)
}
