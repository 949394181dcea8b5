package services

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
)

type DailyLogSvcFacade interface {
	ListDailyLogs(ctx context.Context, actor *domain.User, projectID int64) ([]domain.DailyLog, error)
	CreateDailyLog(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateDailyLogRequest) (*domain.DailyLog, error)
	UpdateDailyLog(ctx context.Context, actor *domain.User, logID int64, req dto.UpdateDailyLogRequest) (*domain.DailyLog, error)
	DeleteDailyLog(ctx context.Context, actor *domain.User, logID int64) error
}

type DocumentSvcFacade interface {
	ListDocuments(ctx context.Context, actor *domain.User, projectID int64) ([]domain.Document, error)
	CreateDocument(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateDocumentRequest) (*domain.Document, error)
	DeleteDocument(ctx context.Context, actor *domain.User, documentID int64) error
}

type ContactSvcFacade interface {
	// ListContacts returns the company's contacts, optionally filtered by type.
	ListContacts(ctx context.Context, actor *domain.User, contactType domain.ContactType) ([]domain.Contact, error)
	CreateContact(ctx context.Context, actor *domain.User, req dto.CreateContactRequest) (*domain.Contact, error)
	UpdateContact(ctx context.Context, actor *domain.User, contactID int64, req dto.UpdateContactRequest) (*domain.Contact, error)
	DeleteContact(ctx context.Context, actor *domain.User, contactID int64) error
}

// NotificationSvcFacade delivers and reads per-user notifications.
type NotificationSvcFacade interface {
	ListNotifications(ctx context.Context, actor *domain.User) ([]domain.Notification, error)
	ListUnreadNotifications(ctx context.Context, actor *domain.User) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor *domain.User, notificationID int64) error
	MarkAllRead(ctx context.Context, actor *domain.User) (int, error)

	// Notify stores a notification for its recipient. Used by other services.
	Notify(ctx context.Context, n domain.Notification) error
}
