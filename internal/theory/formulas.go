package theory

import "fmt"

// Formula is a named scale formula. Nil Intervals means chromatic.
type Formula struct {
	Name      string `json:"name" yaml:"name"`
	Intervals []int  `json:"intervals" yaml:"intervals"`
}

// Scale formula names
const (
	ChromaticScaleName       = "Chromatic Scale"
	MajorScaleName           = "Major Scale"
	MinorScaleName           = "Minor Scale"
	PentatonicMajorScaleName = "Pentatonic Major Scale"
	PentatonicMinorScaleName = "Pentatonic Minor Scale"
)

// The first entry is the default scale for new fretboards
var formulas = []Formula{
	{Name: ChromaticScaleName, Intervals: nil},
	{Name: MajorScaleName, Intervals: []int{2, 2, 1, 2, 2, 2, 1}},
	{Name: MinorScaleName, Intervals: []int{2, 1, 2, 2, 1, 2, 2}},
	{Name: PentatonicMajorScaleName, Intervals: []int{2, 2, 3, 2, 3}},
	{Name: PentatonicMinorScaleName, Intervals: []int{3, 2, 2, 3, 2}},
}

// Formulas returns the built-in formulas in display order
func Formulas() []Formula {
	out := make([]Formula, len(formulas))
	for i, f := range formulas {
		out[i] = Formula{Name: f.Name}
		if f.Intervals != nil {
			out[i].Intervals = append([]int(nil), f.Intervals...)
		}
	}
	return out
}

// DefaultFormulaName is the scale selected when none is given
func DefaultFormulaName() string {
	return formulas[0].Name
}

// LookupFormula finds a built-in formula by name
func LookupFormula(name string) (Formula, bool) {
	for _, f := range formulas {
		if f.Name == name {
			return f, true
		}
	}
	return Formula{}, false
}

// ScaleFromFormula resolves a formula name and builds the scale rooted at root
func ScaleFromFormula(root, formulaName string) (*Scale, error) {
	f, ok := LookupFormula(formulaName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScale, formulaName)
	}
	return NewScale(root, f.Intervals)
}
