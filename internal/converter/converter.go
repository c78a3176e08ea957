// Package converter maps domain objects to their wire representations.
// Converters are pure and hold no mutable state, so one instance can serve
// every request.
package converter

// Converter maps a single input to an output.
type Converter[I, O any] interface {
	Convert(in I) O
}

// BiConverter maps a pair of inputs to an output.
type BiConverter[I1, I2, O any] interface {
	Convert(first I1, second I2) O
}

// Func adapts a plain function to the Converter interface.
type Func[I, O any] func(I) O

// Convert calls f.
func (f Func[I, O]) Convert(in I) O {
	return f(in)
}
