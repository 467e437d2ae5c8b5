package config

const (
	defaultAPIBaseURL            = "http://127.0.0.1:8000/api"
	defaultAPITimeoutSeconds     = 10
	defaultAdvisorBaseURL        = "https://generativelanguage.googleapis.com/v1beta"
	defaultAdvisorModel          = "gemini-2.5-flash-preview-09-2025"
	defaultAdvisorTimeoutSeconds = 30
	defaultVoiceLanguage         = "es-ES"
	defaultDataDir               = "~/.local/share/boutique"
	defaultPaymentMethod         = "PAYPAL"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultAPIBaseURL,
			TimeoutSeconds: defaultAPITimeoutSeconds,
		},
		Advisor: Advisor{
			BaseURL:        defaultAdvisorBaseURL,
			Model:          defaultAdvisorModel,
			TimeoutSeconds: defaultAdvisorTimeoutSeconds,
		},
		Voice: Voice{
			Language: defaultVoiceLanguage,
		},
		Storefront: Storefront{
			DataDir:       defaultDataDir,
			PaymentMethod: defaultPaymentMethod,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
