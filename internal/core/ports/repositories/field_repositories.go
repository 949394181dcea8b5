package repositories

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

type DailyLogReader interface {
	FindDailyLogByID(ctx context.Context, logID int64) (*domain.DailyLog, error)
	ListDailyLogsByProject(ctx context.Context, projectID int64) ([]domain.DailyLog, error)
}

type DailyLogWriter interface {
	CreateDailyLog(ctx context.Context, log domain.DailyLog) (*domain.DailyLog, error)
	UpdateDailyLog(ctx context.Context, logID int64, patch domain.DailyLogPatch) (*domain.DailyLog, error)
	DeleteDailyLog(ctx context.Context, logID int64) (bool, error)
}

type DailyLogRepositoryFacade interface {
	DailyLogReader
	DailyLogWriter
}

type DocumentReader interface {
	FindDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error)
	ListDocumentsByProject(ctx context.Context, projectID int64) ([]domain.Document, error)
}

type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc domain.Document) (*domain.Document, error)
	UpdateDocument(ctx context.Context, documentID int64, patch domain.DocumentPatch) (*domain.Document, error)
	DeleteDocument(ctx context.Context, documentID int64) (bool, error)
}

type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
