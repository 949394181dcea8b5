package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, company_id, contact_type, first_name, last_name, company, email, phone, address, notes, created_at`

func scanContact(row pgx.Row) (domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Type, &c.FirstName, &c.LastName, &c.Company,
		&c.Email, &c.Phone, &c.Address, &c.Notes, &c.CreatedAt)
	return c, err
}

func (s *Store) FindContactByID(ctx context.Context, contactID int64) (*domain.Contact, error) {
	return queryOne(ctx, s.db, scanContact, "find contact",
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, contactID)
}

func (s *Store) ListContactsByCompany(ctx context.Context, companyID int64) ([]domain.Contact, error) {
	return queryList(ctx, s.db, scanContact, "list contacts",
		`SELECT `+contactColumns+` FROM contacts WHERE company_id = $1 ORDER BY id`, companyID)
}

func (s *Store) ListContactsByType(ctx context.Context, companyID int64, contactType domain.ContactType) ([]domain.Contact, error) {
	return queryList(ctx, s.db, scanContact, "list contacts by type",
		`SELECT `+contactColumns+` FROM contacts WHERE company_id = $1 AND contact_type = $2 ORDER BY id`,
		companyID, string(contactType))
}

func (s *Store) CreateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	return queryOne(ctx, s.db, scanContact, "create contact", `
        INSERT INTO contacts (company_id, contact_type, first_name, last_name, company, email, phone, address, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING `+contactColumns,
		contact.CompanyID, string(contact.Type), contact.FirstName, contact.LastName, contact.Company,
		contact.Email, contact.Phone, contact.Address, contact.Notes)
}

func (s *Store) UpdateContact(ctx context.Context, contactID int64, patch domain.ContactPatch) (*domain.Contact, error) {
	return queryOne(ctx, s.db, scanContact, "update contact", `
        UPDATE contacts SET
            contact_type = COALESCE($2, contact_type),
            first_name = COALESCE($3, first_name),
            last_name = COALESCE($4, last_name),
            company = COALESCE($5, company),
            email = COALESCE($6, email),
            phone = COALESCE($7, phone),
            address = COALESCE($8, address),
            notes = COALESCE($9, notes)
        WHERE id = $1
        RETURNING `+contactColumns,
		contactID, patch.Type, patch.FirstName, patch.LastName, patch.Company,
		patch.Email, patch.Phone, patch.Address, patch.Notes)
}

func (s *Store) DeleteContact(ctx context.Context, contactID int64) (bool, error) {
	return deleteByID(ctx, s.db, "contacts", contactID)
}

const notificationColumns = `id, user_id, title, message, notification_type, is_read, related_id, related_type, created_at`

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.RelatedID, &n.RelatedType, &n.CreatedAt)
	return n, err
}

func (s *Store) FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	return queryOne(ctx, s.db, scanNotification, "find notification",
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, notificationID)
}

func (s *Store) ListNotificationsByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return queryList(ctx, s.db, scanNotification, "list notifications",
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *Store) ListUnreadNotificationsByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return queryList(ctx, s.db, scanNotification, "list unread notifications",
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = $1 AND NOT is_read ORDER BY id`, userID)
}

func (s *Store) CreateNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	return queryOne(ctx, s.db, scanNotification, "create notification", `
        INSERT INTO notifications (user_id, title, message, notification_type, is_read, related_id, related_type)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+notificationColumns,
		n.UserID, n.Title, n.Message, string(n.Type), n.Read, n.RelatedID, n.RelatedType)
}

// MarkNotificationRead reports false when the id does not exist. Marking an already read
// notification still counts as found.
func (s *Store) MarkNotificationRead(ctx context.Context, notificationID int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, notificationID)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID int64) (int, error) {
	tag, err := s.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *Store) DeleteNotification(ctx context.Context, notificationID int64) (bool, error) {
	return deleteByID(ctx, s.db, "notifications", notificationID)
}
