package match

import "math"

// cosineSimilarity computes the cosine similarity of two vectors.
// Returns 0 for mismatched dimensions or zero-magnitude vectors, which
// excludes degenerate embeddings from matching rather than erroring.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// zeroMagnitude reports whether a vector has no magnitude, which makes
// cosine similarity undefined.
func zeroMagnitude(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// clipScore clamps a similarity score into [0, 1] for display.
// Raw cosine values can be slightly negative or exceed 1 through
// floating point error.
func clipScore(score float32) float32 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
