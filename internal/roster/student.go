package roster

import (
	"fmt"
	"math/big"
	"strings"
)

// Student is a single roster entry. Grade is kept as the raw
// whitespace-separated score text and parsed only when needed.
type Student struct {
	Name  string
	Group string
	Grade string
}

// Scores parses the grade text into integer scores of any size.
func (s Student) Scores() ([]*big.Int, error) {
	fields := strings.Fields(s.Grade)
	scores := make([]*big.Int, 0, len(fields))
	for _, f := range fields {
		n, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, fmt.Errorf("invalid grade %q: not an integer", f)
		}
		scores = append(scores, n)
	}
	return scores, nil
}

// mean returns the exact arithmetic mean of the scores. An empty grade
// averages to 0.
func (s Student) mean() (*big.Rat, error) {
	scores, err := s.Scores()
	if err != nil {
		return nil, err
	}
	sum := new(big.Int)
	for _, n := range scores {
		sum.Add(sum, n)
	}
	return new(big.Rat).SetFrac(sum, big.NewInt(int64(max(len(scores), 1)))), nil
}

// Average returns the arithmetic mean of the scores. An empty grade
// averages to 0.
func (s Student) Average() (float64, error) {
	m, err := s.mean()
	if err != nil {
		return 0, err
	}
	avg, _ := m.Float64()
	return avg, nil
}

// passing reports whether the exact mean is at least PassingAverage.
func (s Student) passing() (bool, error) {
	m, err := s.mean()
	if err != nil {
		return false, err
	}
	threshold := new(big.Rat).SetFloat64(PassingAverage)
	return m.Cmp(threshold) >= 0, nil
}
