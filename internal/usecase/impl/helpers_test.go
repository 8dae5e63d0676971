package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"guildbook/internal/domain/repository"
	mockRepo "guildbook/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runInTx makes the transaction manager invoke its callback with factory.
func runInTx(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(context.Background(), mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
