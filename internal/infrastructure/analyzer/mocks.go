package analyzer

import (
	"context"
	"net/http"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

type MockSentimentScorer struct {
	mock.Mock
}

func (m *MockSentimentScorer) ScoreSentiment(ctx context.Context, text string) (models.Sentiment, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(models.Sentiment), args.Error(1)
}
