package rest

type PasswordRequest struct {
	Password string `json:"password" validate:"max=256"`
}

type NameRequest struct {
	Name string `json:"name" validate:"max=256"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"max=320"`
}

type PhoneRequest struct {
	Phone string `json:"phone" validate:"max=64"`
}

type BioRequest struct {
	Bio string `json:"bio" validate:"max=5000"`
}

type SkillsRequest struct {
	Skills string `json:"skills" validate:"max=2000"`
}

type ProfileRequest struct {
	Name   string `json:"name" validate:"max=256"`
	Email  string `json:"email" validate:"max=320"`
	Phone  string `json:"phone" validate:"max=64"`
	Bio    string `json:"bio" validate:"max=5000"`
	Skills string `json:"skills" validate:"max=2000"`
}

type PasswordRequirements struct {
	Length     bool `json:"length"`
	Uppercase  bool `json:"uppercase"`
	Lowercase  bool `json:"lowercase"`
	Numbers    bool `json:"numbers"`
	Special    bool `json:"special"`
	NoSequence bool `json:"noSequence"`
	NoRepeat   bool `json:"noRepeat"`
	NoCommon   bool `json:"noCommon"`
}

type PasswordAnalysis struct {
	Length     int    `json:"length"`
	CharTypes  int    `json:"charTypes"`
	Complexity string `json:"complexity"`
}

type PasswordStrength struct {
	Strength      int                  `json:"strength"`
	StrengthText  string               `json:"strengthText"`
	StrengthColor string               `json:"strengthColor"`
	Requirements  PasswordRequirements `json:"requirements"`
	Analysis      PasswordAnalysis     `json:"analysis"`
}

// FieldResult is the answer of every /validate-* endpoint.
type FieldResult struct {
	Field         string         `json:"field"`
	Valid         bool           `json:"valid"`
	Score         int            `json:"score"`
	MaxScore      int            `json:"maxScore"`
	Errors        []string       `json:"errors"`
	Warnings      []string       `json:"warnings"`
	Details       map[string]any `json:"details"`
	StrengthText  string         `json:"strengthText"`
	StrengthColor string         `json:"strengthColor"`
}

// BioAIResult carries aiAnalysis as null when the oracle was not consulted.
type BioAIResult struct {
	FieldResult
	AIAnalysis *AIAnalysis `json:"aiAnalysis"`
}

type AIAnalysis struct {
	Provider string     `json:"provider,omitempty"`
	Issues   []AIIssue  `json:"issues,omitempty"`
	Summary  *AISummary `json:"summary,omitempty"`
	AIScore  *int       `json:"aiScore,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type AIIssue struct {
	Message      string   `json:"message"`
	ShortMessage string   `json:"shortMessage,omitempty"`
	Context      string   `json:"context,omitempty"`
	Suggestions  []string `json:"suggestions"`
	Category     string   `json:"category,omitempty"`
	Type         string   `json:"type,omitempty"`
	Severity     string   `json:"severity,omitempty"`
}

type AISummary struct {
	TotalIssues           int            `json:"totalIssues"`
	Categories            map[string]int `json:"categories"`
	OverallQuality        string         `json:"overallQuality"`
	ProfessionalismIssues []AIIssue      `json:"professionalismIssues"`
	Suggestions           []string       `json:"suggestions"`
	Tone                  string         `json:"tone,omitempty"`
	IsProfessional        *bool          `json:"isProfessional,omitempty"`
}

type ProfileResults struct {
	Name   FieldResult `json:"name"`
	Email  FieldResult `json:"email"`
	Phone  FieldResult `json:"phone"`
	Bio    FieldResult `json:"bio"`
	Skills FieldResult `json:"skills"`
}

type Summary struct {
	Valid         bool   `json:"valid"`
	Score         int    `json:"score"`
	MaxScore      int    `json:"maxScore"`
	Percentage    int    `json:"percentage"`
	StrengthText  string `json:"strengthText"`
	StrengthColor string `json:"strengthColor"`
	ValidFields   int    `json:"validFields"`
	TotalFields   int    `json:"totalFields"`
}

type ProfileReport struct {
	Results ProfileResults `json:"results"`
	Summary Summary        `json:"summary"`
}

type AIAvailability struct {
	LanguageTool bool `json:"languagetool"`
	OpenAI       bool `json:"openai"`
	Gemini       bool `json:"gemini"`
}

type AIStatus struct {
	CurrentProvider string         `json:"currentProvider"`
	Available       AIAvailability `json:"available"`
}

type APIIndex struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
