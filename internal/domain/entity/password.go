package entity

type PasswordRequirements struct {
	Length     bool
	Uppercase  bool
	Lowercase  bool
	Numbers    bool
	Special    bool
	NoSequence bool
	NoRepeat   bool
	NoCommon   bool
}

type PasswordAnalysis struct {
	Length     int
	CharTypes  int
	Complexity string
}

// PasswordStrength is the 0-10 tier report for a password.
type PasswordStrength struct {
	Strength     int
	Text         string
	Color        string
	Requirements PasswordRequirements
	Analysis     PasswordAnalysis
}
