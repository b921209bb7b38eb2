package entity

// Provider identifies the text-quality backend that produced an Analysis.
type Provider string

const (
	ProviderLanguageTool Provider = "LanguageTool"
	ProviderOpenAI       Provider = "OpenAI"
	ProviderGemini       Provider = "Gemini"
)

func (p Provider) String() string {
	return string(p)
}

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

type Issue struct {
	Message      string
	ShortMessage string
	Context      string
	Suggestions  []string
	Category     string
	Type         string
	Severity     string
}

type AnalysisSummary struct {
	TotalIssues           int
	Categories            map[string]int
	OverallQuality        string
	ProfessionalismIssues []Issue
	Suggestions           []string
	Tone                  string
	IsProfessional        *bool
}

// Analysis is the normalized answer of a text-quality oracle. Score is 0-10
// and only meaningful when Success is true.
type Analysis struct {
	Success  bool
	Provider Provider
	Issues   []Issue
	Summary  AnalysisSummary
	Score    int
	Error    string
}

// BioReport is a bio Result optionally enriched by an oracle Analysis.
// Analysis is nil when the oracle was not consulted.
type BioReport struct {
	Result   Result
	Analysis *Analysis
}

type OracleStatus struct {
	CurrentProvider string
	LanguageTool    bool
	OpenAI          bool
	Gemini          bool
}
