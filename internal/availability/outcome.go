package availability

// OutcomeKind tags the result of one fan-out sub-task.
type OutcomeKind int

const (
	Skipped OutcomeKind = iota
	Succeeded
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Succeeded:
		return "success"
	case Failed:
		return "failed"
	default:
		return "skipped"
	}
}

// Outcome is Success(value), Failed(err) or Skipped. Only successful
// values take part in a merge.
type Outcome[T any] struct {
	Kind  OutcomeKind
	Value T
	Err   error
}

func Success[T any](v T) Outcome[T] { return Outcome[T]{Kind: Succeeded, Value: v} }

func Failure[T any](err error) Outcome[T] { return Outcome[T]{Kind: Failed, Err: err} }

func Skip[T any]() Outcome[T] { return Outcome[T]{Kind: Skipped} }

// Successes returns the values of successful outcomes in order.
func Successes[T any](outcomes []Outcome[T]) []T {
	var out []T
	for _, o := range outcomes {
		if o.Kind == Succeeded {
			out = append(out, o.Value)
		}
	}
	return out
}
