package scrollview

import "fmt"

// Problem is one finding from a setup check.
type Problem struct {
	Code    string
	Message string
}

func (p Problem) String() string {
	return p.Code + ": " + p.Message
}

// CheckSetup inspects a view's configuration and environment for mistakes
// that produce a silently broken scroll view rather than an error: a missing
// host, degenerate geometry, a zero viewport. It is a debugging aid for
// application startup and is never called from the tick path.
func CheckSetup[T any](v *ScrollView[T]) []Problem {
	var problems []Problem

	if v.host == nil {
		problems = append(problems, Problem{
			Code:    "no-host",
			Message: "cell host is nil; the pool cannot create cells",
		})
	}
	if err := v.cfg.Validate(); err != nil {
		problems = append(problems, Problem{
			Code:    "invalid-config",
			Message: err.Error(),
		})
	}
	if v.cfg.CellInterval <= 0 {
		problems = append(problems, Problem{
			Code:    "zero-interval",
			Message: "cell interval is zero; all cells will stack at one offset",
		})
	}
	if v.cfg.CellInterval > 1 {
		problems = append(problems, Problem{
			Code:    "oversized-interval",
			Message: fmt.Sprintf("cell interval %v exceeds the viewport; at most one cell is ever visible", v.cfg.CellInterval),
		})
	}
	if v.cfg.Loop && v.cfg.MovementMode != Unrestricted {
		problems = append(problems, Problem{
			Code:    "loop-bounded",
			Message: "loop mode requires Unrestricted movement; boundary correction will fight the wraparound",
		})
	}
	if v.cfg.Snap.Enable && !v.cfg.Inertia {
		problems = append(problems, Problem{
			Code:    "snap-without-inertia",
			Message: "snapping triggers from coasting velocity; without inertia it never fires",
		})
	}

	if v.sized {
		if v.axisExtent(v.viewport) <= 1 {
			problems = append(problems, Problem{
				Code:    "zero-viewport",
				Message: "viewport extent along the scroll axis is zero",
			})
		}
		if v.scroller.TotalCount() == 0 && len(v.Items()) == 0 {
			problems = append(problems, Problem{
				Code:    "no-items",
				Message: "no items set; the view will render nothing",
			})
		}
	}

	return problems
}
