package salary

// Registry holds all registered work types in insertion order. Entries are
// append-only for the lifetime of the process; duplicates are allowed and
// names are not deduplicated.
type Registry struct {
	works []*Work
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Add(w *Work) {
	r.works = append(r.works, w)
}

func (r *Registry) Count() int {
	return len(r.works)
}

// Works returns a snapshot of the registered entries in insertion order.
func (r *Registry) Works() []*Work {
	out := make([]*Work, len(r.works))
	copy(out, r.works)
	return out
}

func (r *Registry) TotalSalary() float64 {
	var total float64
	for _, w := range r.works {
		total += w.Salary()
	}
	return total
}

// AverageSalary returns the arithmetic mean of all final salaries. Querying
// an empty registry is an error, never zero or NaN.
func (r *Registry) AverageSalary() (float64, error) {
	if len(r.works) == 0 {
		return 0, ErrNoWorks
	}
	return r.TotalSalary() / float64(len(r.works)), nil
}
