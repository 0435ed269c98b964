package jarowinkler

import "jarowinkler/internal/matchset"

const (
	// prefixLimit caps the common prefix rewarded by the Winkler boost.
	prefixLimit = 4
	// prefixScale is the boost applied per common prefix byte.
	prefixScale = 0.1
)

type text interface {
	~string | ~[]byte
}

// Similarity returns the Jaro-Winkler similarity of a and b.
// Two empty strings score 1, an empty and a non-empty string score 0.
// The result does not depend on argument order.
func Similarity(a, b string) float64 {
	return score(a, b, true)
}

// SimilarityBytes is Similarity for byte slices. Neither slice is copied.
func SimilarityBytes(a, b []byte) float64 {
	return score(a, b, true)
}

// Jaro returns the Jaro similarity of a and b, i.e. Similarity without the
// common-prefix boost.
func Jaro(a, b string) float64 {
	return score(a, b, false)
}

func score[T text](a, b T, boost bool) float64 {
	left, right := order(a, b)
	s1Len, s2Len := len(left), len(right)

	// s1Len >= s2Len
	switch {
	case s1Len == 0:
		return 1.0
	case s2Len == 0:
		return 0.0
	case string(left) == string(right):
		return 1.0
	}

	s1m := matchset.New(s1Len)
	s2m := matchset.New(s2Len)

	matching := scan(left, right, &s1m, &s2m)
	if matching == 0 {
		return 0.0
	}

	m := float64(matching)
	t := float64(transpositions(left, right, &s1m, &s2m))

	jaro := (m/float64(s1Len) + m/float64(s2Len) + (m-t)/m) / 3
	if !boost {
		return jaro
	}

	prefix := 0
	limit := min(prefixLimit, s2Len)

	for prefix < limit && left[prefix] == right[prefix] {
		prefix++
	}

	// explicit conversion prevents a fused multiply-add
	return jaro + float64(float64(prefix)*prefixScale*(1-jaro))
}

// order returns the longer input first. Equal lengths are put in byte
// order so the transposition walk sees the same pair whichever way the
// caller passed them.
func order[T text](a, b T) (T, T) {
	switch {
	case len(a) < len(b):
		return b, a
	case len(a) == len(b) && string(a) > string(b):
		return b, a
	}

	return a, b
}

// scan greedily pairs every byte of right with the leftmost unmatched equal
// byte of left inside the matching window, marking both sides. It returns the
// number of pairs.
func scan[T text](left, right T, s1m, s2m *matchset.Set) int {
	s1Len := len(left)
	window := max(s1Len/2-1, 0)
	matching := 0

	for i := 0; i < len(right); i++ {
		c := right[i]

		for j, hi := max(i-window, 0), min(i+window+1, s1Len); j < hi; j++ {
			if left[j] != c || s1m.Get(j) {
				continue
			}

			s1m.Mark(j)
			s2m.Mark(i)
			matching++

			break
		}
	}

	return matching
}

// transpositions walks matched bytes of right in order against matched bytes
// of left and returns half the number of mismatching pairs, rounded up.
// The last byte of right is never visited.
func transpositions[T text](left, right T, s1m, s2m *matchset.Set) int {
	s1Len := len(left)
	cursor := 0
	mismatched := 0

	for i := 0; i < len(right)-1; i++ {
		if !s2m.Get(i) {
			continue
		}

		j := cursor
		for j < s1Len && !s1m.Get(j) {
			j++
		}

		cursor = j + 1

		if right[i] != left[j] {
			mismatched++
		}
	}

	return (mismatched + 1) / 2
}
