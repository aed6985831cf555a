package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/util"
	"golang.org/x/exp/slices"
)

// CreateChordKey is order independent: every voicing of the same notes gets
// the same key. The chord itself is left alone.
func CreateChordKey[K any](c model.Collection[K]) string {
	notes := slices.Clone([]int(c))
	slices.Sort(notes)
	parts := make([]string, len(notes))
	for i, note := range notes {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

// InversionNumber reports how many notes sit below the chord's first note
// once sorted: 0 is root position, 1 first inversion and so on.
func InversionNumber[K any](c model.Collection[K]) int {
	if len(c) == 0 {
		return 0
	}
	sorted := slices.Clone([]int(c))
	slices.Sort(sorted)
	return slices.Index(sorted, c[0])
}

// InvertInPlace sorts c and rotates it left by n, reusing c's storage.
func InvertInPlace[K any](c model.Collection[K], n int) {
	if len(c) == 0 {
		return
	}
	slices.Sort([]int(c))
	rotateLeft(c, util.Mod(n, len(c)))
}

// InvertAsNew is InvertInPlace on a copy.
func InvertAsNew[K any](c model.Collection[K], n int) model.Collection[K] {
	res := make(model.Collection[K], len(c))
	copy(res, c)
	InvertInPlace(res, n)
	return res
}

func rotateLeft(s []int, n int) {
	reverse(s[:n])
	reverse(s[n:])
	reverse(s)
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
