package freq

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"freqtab/ports"
)

// Summary describes the shape of one distribution: size, mode, and the
// spread of its counts. Entropy is the Shannon entropy (nats) of the
// normalized distribution.
type Summary struct {
	Total       int
	Distinct    int
	MaxSample   string
	MaxCount    int
	MeanCount   float64
	MedianCount float64
	StdDevCount float64
	Entropy     float64
}

// Summarize computes summary statistics over any distribution backend.
// Lazy backends are materialized first. A table holding non-integer values
// is rejected.
func Summarize(t ports.Table) (Summary, error) {
	var s Summary
	if l, ok := t.(ports.Loader); ok {
		if err := l.Load(); err != nil {
			return s, err
		}
	}

	var counts []float64
	var badKey string
	badValue := false
	t.Each(func(key string, value any) bool {
		n, ok := value.(int)
		if !ok {
			badKey, badValue = key, true
			return false
		}
		counts = append(counts, float64(n))
		s.Total += n
		if n > s.MaxCount {
			s.MaxSample, s.MaxCount = key, n
		}
		return true
	})
	if badValue {
		return Summary{}, fmt.Errorf("summarize: value under %q is not a count", badKey)
	}
	s.Distinct = len(counts)
	if s.Distinct == 0 {
		return s, nil
	}

	var err error
	if s.MeanCount, err = stats.Mean(counts); err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	if s.MedianCount, err = stats.Median(counts); err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	if s.StdDevCount, err = stats.StandardDeviation(counts); err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}

	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = c / float64(s.Total)
	}
	s.Entropy = stat.Entropy(p)

	return s, nil
}
