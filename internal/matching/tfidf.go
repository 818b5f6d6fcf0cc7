// internal/matching/tfidf.go
package matching

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern keeps runs of two or more word characters. Single letters and
// punctuation never enter the vocabulary.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

func tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

// tfidfCosine returns the cosine similarity of two token lists' TF-IDF
// vectors, fitted on the two-document corpus. Callers must ensure the
// combined vocabulary is non-empty.
func tfidfCosine(tokensA, tokensB []string) float64 {
	countsA := termCounts(tokensA)
	countsB := termCounts(tokensB)

	const corpusSize = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		// smoothed idf: ln((1+n)/(1+df)) + 1
		return math.Log((1+corpusSize)/(1+df)) + 1
	}

	weightsA := weigh(countsA, idf)
	weightsB := weigh(countsB, idf)

	normA, normB := norm(weightsA), norm(weightsB)
	if normA == 0 || normB == 0 {
		return 0
	}

	dot := 0.0
	for term, wa := range weightsA {
		dot += wa * weightsB[term]
	}

	return clamp01(dot / (normA * normB))
}

func termCounts(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

func weigh(counts map[string]float64, idf func(string) float64) map[string]float64 {
	out := make(map[string]float64, len(counts))
	for term, tf := range counts {
		out[term] = tf * idf(term)
	}
	return out
}

func norm(v map[string]float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// clamp01 absorbs floating error so identical documents score exactly 1.
func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// jaccard is |A∩B| / |A∪B| over lower-cased whole skills.
func jaccard(a, b []string) float64 {
	setA := lowerSet(a)
	setB := lowerSet(b)

	union := make(map[string]struct{}, len(setA)+len(setB))
	intersection := 0
	for s := range setA {
		union[s] = struct{}{}
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	for s := range setB {
		union[s] = struct{}{}
	}

	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

func lowerSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[strings.ToLower(item)] = struct{}{}
	}
	return out
}
