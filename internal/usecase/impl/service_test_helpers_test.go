package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"atelier/config"
	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       12,
			RecoveryTokenTTL: 24 * time.Hour,
			ResetBaseURL:     "https://atelier.example.com/reset-password",
		},
	}
}

// stubExecute arms a mocked transaction manager: setup arms the repository
// factory handed to the transactional callback, and result is what Execute
// reports after running it.
func stubExecute(t *testing.T, ctx context.Context, txManager *mockRepo.MockTransactionManager, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)
			_ = fn(mockFactory)
		}).
		Return(result)
}
