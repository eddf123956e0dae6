package completion

// Default generation parameters.
const (
	DefaultTemperature      = 1.0
	DefaultTopP             = 0.95
	DefaultTopK             = 40
	DefaultMaxOutputTokens  = 8192
	DefaultResponseMIMEType = "text/plain"
)

// GenerationConfig holds sampling parameters sent with every request.
type GenerationConfig struct {
	Temperature      float64
	TopP             float64
	TopK             int
	MaxOutputTokens  int
	ResponseMIMEType string
}

// DefaultGenerationConfig returns the parameters used when nothing is configured.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:      DefaultTemperature,
		TopP:             DefaultTopP,
		TopK:             DefaultTopK,
		MaxOutputTokens:  DefaultMaxOutputTokens,
		ResponseMIMEType: DefaultResponseMIMEType,
	}
}
