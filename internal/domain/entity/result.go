package entity

// Field names a profile field scored on the 20-point scale.
type Field string

const (
	FieldName   Field = "name"
	FieldEmail  Field = "email"
	FieldPhone  Field = "phone"
	FieldBio    Field = "bio"
	FieldSkills Field = "skills"
)

func (f Field) String() string {
	return string(f)
}

// Result is the outcome of scoring one profile field.
type Result struct {
	Valid    bool
	Score    int
	MaxScore int
	Errors   []string       // hard failures, score is 0 when non-empty
	Warnings []string       // soft deductions and advice
	Details  map[string]any // field-specific attributes
}

// Strength is a presentation label attached to a score.
type Strength struct {
	Text  string
	Color string
}

// InvalidSkill is a rejected skill token and the reason it was rejected.
type InvalidSkill struct {
	Skill  string `json:"skill"`
	Reason string `json:"reason"`
}
