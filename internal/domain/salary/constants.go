package salary

const (
	// MaxSalary is the hard ceiling on any computed final salary.
	MaxSalary = 1_000_000.0

	BonusPercentMin = 0.0
	BonusPercentMax = 200.0
)
