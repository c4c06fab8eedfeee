package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrNoVideosFound.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeYouTube {
		t.Errorf("Expected type %s, got %s", TypeYouTube, appErr.Type)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrAnalyzerUnavailable.WithContext("status", 502).WithContext("url", "http://localhost:8000")

	if appErr.Context["status"] != 502 {
		t.Errorf("Expected status context 502, got %v", appErr.Context["status"])
	}

	if appErr.Context["url"] != "http://localhost:8000" {
		t.Errorf("Expected url context 'http://localhost:8000', got %v", appErr.Context["url"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name: "Simple error without underlying error",
			err:  ErrNoVideosFound,
			contains: []string{
				"YOUTUBE",
				"No videos found for this channel",
			},
		},
		{
			name: "Error with underlying error",
			err:  ErrAnalyzerUnavailable.WithError(errors.New("connection refused")),
			contains: []string{
				"ANALYSIS",
				"Commit analysis service unavailable",
				"connection refused",
			},
		},
		{
			name: "Input error keeps its type",
			err:  ErrNoCommitsToAnalyze,
			contains: []string{
				"INPUT",
				"No commits to analyze",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Expected error message to contain %q, got %q", want, msg)
				}
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	baseErr := errors.New("quota exhausted")
	appErr := ErrQuotaExceeded.WithError(baseErr)

	if !errors.Is(appErr, baseErr) {
		t.Errorf("Expected errors.Is to match the wrapped error")
	}
}

func TestAppError_SuggestionPreserved(t *testing.T) {
	appErr := ErrYouTubeKeyMissing.WithError(errors.New("boom"))

	if appErr.Suggestion == "" {
		t.Errorf("Expected suggestion to survive WithError")
	}
}
