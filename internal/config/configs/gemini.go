package configs

import "time"

// Gemini configures the narrative collaborator. An empty APIKey disables
// it and every report uses the narrative built from the numbers.
type Gemini struct {
	APIKey          string        `env:"API_KEY"`
	Model           string        `env:"MODEL" envDefault:"gemini-2.5-flash-lite"`
	Temperature     float32       `env:"TEMPERATURE" envDefault:"0.7"`
	MaxOutputTokens int32         `env:"MAX_OUTPUT_TOKENS" envDefault:"2048"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"20s"`
	// RequestsPerMinute caps calls to the API across all runs; zero
	// disables the cap.
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE" envDefault:"60"`
}

// Enabled reports whether an API key is configured.
func (g Gemini) Enabled() bool { return g.APIKey != "" }
