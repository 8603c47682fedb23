package randsource

// Kind denotes which distribution served a draw.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindShuffle
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindShuffle:
		return "shuffle"
	}
	return "unknown"
}

// A DrawCallback is invoked for every draw a source makes. Callbacks run on
// the calling goroutine and must be fast; see integration/dd for wiring them
// to statsd.
type DrawCallback func(kind Kind)
