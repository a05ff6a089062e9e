package language

// Edit operation costs for Distance. Deletion is penalized heavily because
// subtitle tokens tend to be truncated or suffixed forms of a language name,
// not names with extra characters to strip.
const (
	substitutionCost = 1
	insertionCost    = 20
	deletionCost     = 100
)

// MaxAcceptedDistance is the acceptance threshold for a fuzzy language match.
const MaxAcceptedDistance = 10

// Distance computes the weighted edit distance transforming token into name.
func Distance(token, name string) int {
	a := []rune(token)
	b := []rune(name)

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j * insertionCost
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i * deletionCost
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub += substitutionCost
			}
			del := prev[j] + deletionCost
			ins := curr[j-1] + insertionCost
			curr[j] = min(sub, del, ins)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// Closest returns the canonical name with the minimum weighted distance to
// token, provided the distance is within MaxAcceptedDistance.
func Closest(token string) (string, bool) {
	best := ""
	bestDist := MaxAcceptedDistance + 1
	for _, l := range Table {
		if d := Distance(token, l.Name); d < bestDist {
			bestDist = d
			best = l.Name
		}
	}
	return best, best != ""
}
