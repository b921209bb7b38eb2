package config

import (
	"strings"
	"time"
)

const (
	OracleLanguageTool = "languagetool"
	OracleOpenAI       = "openai"
	OracleGemini       = "gemini"
)

type Oracle struct {
	Provider string        `env:"AI_PROVIDER" envDefault:"languagetool"`
	Timeout  time.Duration `env:"ORACLE_TIMEOUT" envDefault:"8s"`

	LanguageToolURL string `env:"LANGUAGETOOL_URL" envDefault:"https://api.languagetool.org"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY" json:"-"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	OpenAIURL    string `env:"OPENAI_URL" envDefault:"https://api.openai.com"`

	GeminiAPIKey string `env:"GEMINI_API_KEY" json:"-"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiURL    string `env:"GEMINI_URL" envDefault:"https://generativelanguage.googleapis.com"`

	LogFieldMaxLen int `env:"ORACLE_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

// ProviderName normalizes AI_PROVIDER, anything unrecognized selects LanguageTool.
func (o Oracle) ProviderName() string {
	switch p := strings.ToLower(strings.TrimSpace(o.Provider)); p {
	case OracleOpenAI, OracleGemini:
		return p
	default:
		return OracleLanguageTool
	}
}
