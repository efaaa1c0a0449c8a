package moment

import "fmt"

// MomentMismatch reports a computed moment outside its tolerance. It is
// recorded per scenario and never aborts the rest of a suite run.
type MomentMismatch struct {
	Value     float64
	Expected  float64
	Diff      float64
	Tolerance float64
}

func (e *MomentMismatch) Error() string {
	return fmt.Sprintf("moment mismatch: got %.12g, expected %.12g (diff %.3g > tol %.3g)",
		e.Value, e.Expected, e.Diff, e.Tolerance)
}
