package entity

// Profile holds the raw employee form values.
type Profile struct {
	Name   string
	Email  string
	Phone  string
	Bio    string
	Skills string
}

// Summary is the composite of the five field results, out of 100.
type Summary struct {
	Valid       bool
	Score       int
	MaxScore    int
	Percentage  int
	Strength    Strength
	ValidFields int
	TotalFields int
}

type ProfileReport struct {
	Results map[Field]Result
	Summary Summary
}
