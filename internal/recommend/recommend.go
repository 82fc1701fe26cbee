// Package recommend serves popular-loan lists for a reader's age group.
package recommend

import (
	"errors"

	"libfinder/internal/book"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoBirthYear is returned for a family member without a birth year.
	ErrNoBirthYear = errors.New("family member has no birth year")
)

const (
	defaultSize = 10
	maxSize     = 50
	// snapshotSize is how many titles one stored snapshot holds.
	snapshotSize = maxSize
	lookbackDays = 90
)

// AgeGroup maps an age onto the upstream loan-statistics age code.
type AgeGroup struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var ageGroups = []struct {
	minAge int
	group  AgeGroup
}{
	{20, AgeGroup{Code: "20", Label: "성인"}},
	{14, AgeGroup{Code: "14", Label: "청소년"}},
	{8, AgeGroup{Code: "8", Label: "초등"}},
	{6, AgeGroup{Code: "6", Label: "유아"}},
	{0, AgeGroup{Code: "0", Label: "영유아"}},
}

// GroupFor returns the group for age. Negative ages are invalid.
func GroupFor(age int) (AgeGroup, bool) {
	for _, g := range ageGroups {
		if age >= g.minAge {
			return g.group, true
		}
	}
	return AgeGroup{}, false
}

type Result struct {
	AgeGroup AgeGroup    `json:"age_group"`
	Period   Period      `json:"period"`
	Books    []book.Book `json:"books"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
