package repositories

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

// ContactReader defines read operations for the company address book.
type ContactReader interface {
	FindContactByID(ctx context.Context, contactID int64) (*domain.Contact, error)
	ListContactsByCompany(ctx context.Context, companyID int64) ([]domain.Contact, error)

	// ListContactsByType filters a company's contacts by type.
	ListContactsByType(ctx context.Context, companyID int64, contactType domain.ContactType) ([]domain.Contact, error)
}

type ContactWriter interface {
	CreateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
	UpdateContact(ctx context.Context, contactID int64, patch domain.ContactPatch) (*domain.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) (bool, error)
}

type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}

// NotificationReader defines read operations for user notifications.
type NotificationReader interface {
	FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error)
	ListNotificationsByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	ListUnreadNotificationsByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for user notifications.
type NotificationWriter interface {
	CreateNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error)

	// MarkNotificationRead reports whether the notification existed.
	MarkNotificationRead(ctx context.Context, notificationID int64) (bool, error)

	// MarkAllNotificationsRead returns how many notifications changed state.
	MarkAllNotificationsRead(ctx context.Context, userID int64) (int, error)

	DeleteNotification(ctx context.Context, notificationID int64) (bool, error)
}

type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
