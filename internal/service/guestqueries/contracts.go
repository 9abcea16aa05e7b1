package guestqueries

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/infra/storage/guestquery"
	"github.com/m04kA/SMC-StayService/internal/integrations/assistant"
)

// GuestQueryRepository интерфейс репозитория гостевых вопросов
type GuestQueryRepository interface {
	Insert(ctx context.Context, hotelID int64, queryText, intent, response string) error
	IntentSummary(ctx context.Context, hotelID int64) ([]guestquery.IntentCount, error)
}

// AssistantClient интерфейс клиента ассистента
type AssistantClient interface {
	ClassifyWithGracefulDegradation(ctx context.Context, hotelID int64, query string) (*assistant.Classification, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
