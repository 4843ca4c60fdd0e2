package action

const OvertimePeriod = 5

var periodByLabel = map[string]int{
	"First_Period":  1,
	"Second_Period": 2,
	"Third_Period":  3,
	"Fourth_Period": 4,
	"Overtime":      OvertimePeriod,
}

// ParsePeriod maps a provider period label to 1..4, or 5 for overtime.
func ParsePeriod(label string) (int, bool) {
	p, ok := periodByLabel[label]
	return p, ok
}

// RemainingSeconds converts the provider's minute/second clock.
func RemainingSeconds(minute, second int) int {
	return 60*minute + second
}
