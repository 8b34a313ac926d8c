package reports

import "paydesk/internal/domain/salary"

type Summary struct {
	Count   int
	Total   float64
	Average float64
	Min     float64
	Max     float64
}

// BuildSummary aggregates final salaries over the given works. A nil or
// empty slice yields a zero summary.
func BuildSummary(works []*salary.Work) Summary {
	if len(works) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(works),
		Min:   works[0].Salary(),
		Max:   works[0].Salary(),
	}
	for _, w := range works {
		pay := w.Salary()
		s.Total += pay
		if pay < s.Min {
			s.Min = pay
		}
		if pay > s.Max {
			s.Max = pay
		}
	}
	s.Average = s.Total / float64(s.Count)
	return s
}
