package levels

import "github.com/abhisek/bondten/internal/strategy"

const (
	MinLevel = 1
	MaxLevel = 4
)

// Range is an inclusive operand sampling range.
type Range struct {
	Min int
	Max int
}

// Width returns the number of values in the range.
func (r Range) Width() int {
	return r.Max - r.Min + 1
}

// Contains reports whether n falls inside the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Profile describes one way a level generates problems: an operation,
// the strategy the operands must classify to, and the sampling ranges.
type Profile struct {
	Operation strategy.Operation
	Target    strategy.Strategy
	Operand1  Range
	Operand2  Range

	// MaxAnswer caps operand1 + operand2 for addition profiles.
	// Zero means uncapped.
	MaxAnswer int
}

// Level is one difficulty tier of the tutor.
type Level struct {
	Number   int
	Name     string
	Tagline  string
	Profiles []Profile
}

// Strategies returns the distinct target strategies of the level, in
// teaching order.
func (l Level) Strategies() []strategy.Strategy {
	seen := make(map[strategy.Strategy]bool)
	var out []strategy.Strategy
	for _, s := range strategy.AllStrategies() {
		for _, p := range l.Profiles {
			if p.Target == s && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// ProfilesFor returns the level's profiles for one operation.
func (l Level) ProfilesFor(op strategy.Operation) []Profile {
	var out []Profile
	for _, p := range l.Profiles {
		if p.Operation == op {
			out = append(out, p)
		}
	}
	return out
}

// catalog is built once at package load.
var catalog = buildCatalog()

// Catalog returns all levels in order.
func Catalog() []Level {
	return catalog
}

// Get returns the level with the given number.
func Get(n int) (Level, bool) {
	if n < MinLevel || n > MaxLevel {
		return Level{}, false
	}
	return catalog[n-MinLevel], true
}

// Clamp forces n into the valid level range.
func Clamp(n int) int {
	if n < MinLevel {
		return MinLevel
	}
	if n > MaxLevel {
		return MaxLevel
	}
	return n
}

func buildCatalog() []Level {
	one := Level{
		Number:  1,
		Name:    "Counting Corner",
		Tagline: "Little facts up to 10",
		Profiles: []Profile{
			{
				Operation: strategy.OpAddition,
				Target:    strategy.StrategyBasic,
				Operand1:  Range{Min: 0, Max: 9},
				Operand2:  Range{Min: 0, Max: 9},
				MaxAnswer: 9,
			},
			{
				Operation: strategy.OpSubtraction,
				Target:    strategy.StrategyBasic,
				Operand1:  Range{Min: 0, Max: 9},
				Operand2:  Range{Min: 0, Max: 9},
			},
		},
	}

	two := Level{
		Number:  2,
		Name:    "Ten Town",
		Tagline: "Make ten and cross it, up to 20",
		Profiles: []Profile{
			{
				Operation: strategy.OpAddition,
				Target:    strategy.StrategyMakeTen,
				Operand1:  Range{Min: 1, Max: 9},
				Operand2:  Range{Min: 2, Max: 19},
				MaxAnswer: 20,
			},
			{
				Operation: strategy.OpAddition,
				Target:    strategy.StrategyCrossing,
				Operand1:  Range{Min: 2, Max: 9},
				Operand2:  Range{Min: 2, Max: 9},
				MaxAnswer: 20,
			},
			{
				// Every operand1 here has a borrowing operand2; 19 is
				// excluded because no single-digit subtrahend borrows
				// from it.
				Operation: strategy.OpSubtraction,
				Target:    strategy.StrategyCrossing,
				Operand1:  Range{Min: 11, Max: 18},
				Operand2:  Range{Min: 2, Max: 9},
			},
		},
	}

	three := Level{
		Number:  3,
		Name:    "Bridge Builder",
		Tagline: "Big jumps over the tens",
		Profiles: []Profile{
			{
				Operation: strategy.OpAddition,
				Target:    strategy.StrategyCrossing,
				Operand1:  Range{Min: 10, Max: 99},
				Operand2:  Range{Min: 1, Max: 9},
			},
			{
				Operation: strategy.OpSubtraction,
				Target:    strategy.StrategyCrossing,
				Operand1:  Range{Min: 10, Max: 99},
				Operand2:  Range{Min: 1, Max: 9},
			},
		},
	}

	four := Level{
		Number:  4,
		Name:    "Mix Master",
		Tagline: "Every strategy, every direction",
	}
	four.Profiles = append(four.Profiles, one.Profiles...)
	four.Profiles = append(four.Profiles, two.Profiles...)
	four.Profiles = append(four.Profiles, three.Profiles...)

	return []Level{one, two, three, four}
}
