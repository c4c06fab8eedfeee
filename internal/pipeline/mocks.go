package pipeline

import (
	"context"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

// MockVideoLister is a testify mock for ports.VideoLister.
type MockVideoLister struct {
	mock.Mock
}

func (m *MockVideoLister) ListVideos(ctx context.Context, channelURL string) ([]models.Video, error) {
	args := m.Called(ctx, channelURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Video), args.Error(1)
}

// MockCommitClassifier is a testify mock for ports.CommitClassifier.
type MockCommitClassifier struct {
	mock.Mock
}

func (m *MockCommitClassifier) ClassifyBatch(ctx context.Context, messages []string) ([]models.ClassifiedCommit, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClassifiedCommit), args.Error(1)
}
