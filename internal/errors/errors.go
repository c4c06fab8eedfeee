package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeInput         ErrorType = "INPUT"
	TypeYouTube       ErrorType = "YOUTUBE"
	TypeAnalysis      ErrorType = "ANALYSIS"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Input errors
var (
	ErrEmptyChannelURL = NewAppError(TypeInput, "Channel URL is empty", nil).
				WithSuggestion("Pass a channel URL like https://www.youtube.com/@channelname")

	ErrInvalidChannelURL = NewAppError(TypeInput, "Could not extract a channel ID from the URL", nil).
				WithSuggestion("Use https://www.youtube.com/@channelname or https://www.youtube.com/channel/UCXXXXXX")

	ErrNoCommitsToAnalyze = NewAppError(TypeInput, "No commits to analyze", nil).
				WithSuggestion("Pick a video whose description contains changelog-style lines")
)

// YouTube errors
var (
	ErrYouTubeKeyMissing = NewAppError(TypeConfiguration, "YouTube API key is missing", nil).
				WithSuggestion("Get a key at https://console.cloud.google.com/ (enable YouTube Data API v3)\nThen run: vidcommit config set-youtube-key <key>")

	ErrChannelNotFound = NewAppError(TypeYouTube, "Channel not found", nil).
				WithSuggestion("Check the URL and that your API key has access to the YouTube Data API")

	ErrNoVideosFound = NewAppError(TypeYouTube, "No videos found for this channel", nil).
				WithSuggestion("The channel has no public uploads, try another one")
)

// Analysis errors
var (
	ErrClassifierNotConfigured = NewAppError(TypeConfiguration, "No commit classifier is configured", nil).
					WithSuggestion("Run: vidcommit config set-classifier local")

	ErrAnalyzerUnavailable = NewAppError(TypeAnalysis, "Commit analysis service unavailable", nil).
				WithSuggestion("Check the analyzer base URL in your config and that the service is up")

	ErrGeminiAPIKeyInvalid = NewAppError(TypeConfiguration, "Gemini API key is invalid or missing", nil).
				WithSuggestion("Get a valid API key at: https://makersuite.google.com/app/apikey")

	ErrQuotaExceeded = NewAppError(TypeAnalysis, "Classifier quota exceeded or rate limited", nil).
				WithSuggestion("Wait a few minutes and try again, or check your API quota")

	ErrInvalidClassifierOutput = NewAppError(TypeAnalysis, "Invalid classifier output format", nil).
					WithSuggestion("This is likely a temporary issue, please try again")

	ErrEmptyBatch = NewAppError(TypeAnalysis, "Cannot summarize an empty result set", nil)
)
