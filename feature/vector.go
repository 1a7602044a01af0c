package feature

import "github.com/cwbudde/algo-feature/dsp/signal"

// Vector holds the features of one analysis frame.
//
// TimePosition is the frame start in seconds. Vectors are treated as
// immutable once returned by an extractor.
type Vector struct {
	Features     []float64
	TimePosition float64
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	return Vector{
		Features:     append([]float64(nil), v.Features...),
		TimePosition: v.TimePosition,
	}
}

// Extractor turns a signal into a sequence of feature vectors.
type Extractor interface {
	// FeatureCount is the length of Features in every produced vector.
	FeatureCount() int
	// FeatureDescriptions names each feature position.
	FeatureDescriptions() []string
	ComputeFrom(sig signal.Signal) ([]Vector, error)
}

// Column collects feature i of every vector, skipping vectors that are too
// short to hold it.
func Column(vectors []Vector, i int) []float64 {
	out := make([]float64, 0, len(vectors))
	for _, v := range vectors {
		if i >= 0 && i < len(v.Features) {
			out = append(out, v.Features[i])
		}
	}
	return out
}
