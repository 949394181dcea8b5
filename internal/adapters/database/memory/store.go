// Package memory is the in-process entity store. State lives for the lifetime of
// the process and every operation is serialized by a single RWMutex.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
)

// Store implements portsrepo.Storage with maps.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	now    func() time.Time

	users         *table[domain.User]
	companies     *table[domain.Company]
	projects      *table[domain.Project]
	tasks         *table[domain.ProjectTask]
	costs         *table[domain.CostCategory]
	changeOrders  *table[domain.ChangeOrder]
	dailyLogs     *table[domain.DailyLog]
	documents     *table[domain.Document]
	contacts      *table[domain.Contact]
	notifications *table[domain.Notification]
}

var _ portsrepo.Storage = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for createdAt/updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store. Handles start at 1.
func NewStore(opts ...Option) *Store {
	s := &Store{
		nextID:        1,
		now:           time.Now,
		users:         newTable(domain.User.Clone),
		companies:     newTable[domain.Company](nil),
		projects:      newTable(domain.Project.Clone),
		tasks:         newTable(domain.ProjectTask.Clone),
		costs:         newTable(domain.CostCategory.Clone),
		changeOrders:  newTable(domain.ChangeOrder.Clone),
		dailyLogs:     newTable(domain.DailyLog.Clone),
		documents:     newTable[domain.Document](nil),
		contacts:      newTable[domain.Contact](nil),
		notifications: newTable(domain.Notification.Clone),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// allocID must be called with the write lock held.
func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) Ping(_ context.Context) error { return nil }

// --- Users ---

func (s *Store) FindUserByID(_ context.Context, userID int64) (*domain.User, error) {
	return findIn(s, s.users, userID)
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	return s.findUserBy(func(u domain.User) bool { return u.Username == username })
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	return s.findUserBy(func(u domain.User) bool { return u.Email == email })
}

func (s *Store) findUserBy(match func(domain.User) bool) (*domain.User, error) {
	matches := listIn(s, s.users, match)
	if len(matches) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &matches[0], nil
}

func (s *Store) ListUsersByCompany(_ context.Context, companyID int64) ([]domain.User, error) {
	return listIn(s, s.users, func(u domain.User) bool { return u.InCompany(companyID) }), nil
}

// userClash must be called with a lock held.
func (s *Store) userClash(selfID int64, username, email string) bool {
	return s.users.exists(func(u domain.User) bool {
		return u.ID != selfID && (u.Username == username || u.Email == email)
	})
}

func (s *Store) CreateUser(_ context.Context, user domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userClash(0, user.Username, user.Email) {
		return nil, apperrors.ErrDuplicate
	}
	user.ID = s.allocID()
	user.CreatedAt = s.now()
	s.users.insert(user.ID, user)
	out := user.Clone()
	return &out, nil
}

func (s *Store) UpdateUser(_ context.Context, userID int64, patch domain.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users.get(userID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	patch.Apply(&u)
	if s.userClash(userID, u.Username, u.Email) {
		return nil, apperrors.ErrDuplicate
	}
	s.users.replace(userID, u)
	out := u.Clone()
	return &out, nil
}

func (s *Store) DeleteUser(_ context.Context, userID int64) (bool, error) {
	return deleteIn(s, s.users, userID), nil
}

// --- Companies ---

func (s *Store) FindCompanyByID(_ context.Context, companyID int64) (*domain.Company, error) {
	return findIn(s, s.companies, companyID)
}

func (s *Store) CreateCompany(_ context.Context, company domain.Company) (*domain.Company, error) {
	return createIn(s, s.companies, company, func(c *domain.Company, id int64, now time.Time) {
		c.ID, c.CreatedAt = id, now
	}), nil
}

func (s *Store) UpdateCompany(_ context.Context, companyID int64, patch domain.CompanyPatch) (*domain.Company, error) {
	return updateIn(s, s.companies, companyID, func(c *domain.Company, _ time.Time) { patch.Apply(c) })
}

func (s *Store) DeleteCompany(_ context.Context, companyID int64) (bool, error) {
	return deleteIn(s, s.companies, companyID), nil
}

// --- Projects ---

func (s *Store) FindProjectByID(_ context.Context, projectID int64) (*domain.Project, error) {
	return findIn(s, s.projects, projectID)
}

func (s *Store) ListProjectsByCompany(_ context.Context, companyID int64) ([]domain.Project, error) {
	return listIn(s, s.projects, func(p domain.Project) bool { return p.CompanyID == companyID }), nil
}

func (s *Store) ListProjectsByClient(_ context.Context, clientID int64) ([]domain.Project, error) {
	return listIn(s, s.projects, func(p domain.Project) bool { return p.ClientID == clientID }), nil
}

func (s *Store) CreateProject(_ context.Context, project domain.Project) (*domain.Project, error) {
	return createIn(s, s.projects, project, func(p *domain.Project, id int64, now time.Time) {
		p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
	}), nil
}

func (s *Store) UpdateProject(_ context.Context, projectID int64, patch domain.ProjectPatch) (*domain.Project, error) {
	return updateIn(s, s.projects, projectID, func(p *domain.Project, now time.Time) {
		patch.Apply(p)
		p.UpdatedAt = now
	})
}

func (s *Store) DeleteProject(_ context.Context, projectID int64) (bool, error) {
	return deleteIn(s, s.projects, projectID), nil
}

// --- Tasks ---

func (s *Store) FindTaskByID(_ context.Context, taskID int64) (*domain.ProjectTask, error) {
	return findIn(s, s.tasks, taskID)
}

func (s *Store) ListTasksByProject(_ context.Context, projectID int64) ([]domain.ProjectTask, error) {
	return listIn(s, s.tasks, func(t domain.ProjectTask) bool { return t.ProjectID == projectID }), nil
}

func (s *Store) CreateTask(_ context.Context, task domain.ProjectTask) (*domain.ProjectTask, error) {
	return createIn(s, s.tasks, task, func(t *domain.ProjectTask, id int64, now time.Time) {
		t.ID, t.CreatedAt = id, now
	}), nil
}

func (s *Store) UpdateTask(_ context.Context, taskID int64, patch domain.TaskPatch) (*domain.ProjectTask, error) {
	return updateIn(s, s.tasks, taskID, func(t *domain.ProjectTask, _ time.Time) { patch.Apply(t) })
}

func (s *Store) DeleteTask(_ context.Context, taskID int64) (bool, error) {
	return deleteIn(s, s.tasks, taskID), nil
}

// --- Cost categories ---

func (s *Store) FindCostCategoryByID(_ context.Context, costID int64) (*domain.CostCategory, error) {
	return findIn(s, s.costs, costID)
}

func (s *Store) ListCostCategoriesByProject(_ context.Context, projectID int64) ([]domain.CostCategory, error) {
	return listIn(s, s.costs, func(c domain.CostCategory) bool { return c.ProjectID == projectID }), nil
}

func (s *Store) CreateCostCategory(_ context.Context, cost domain.CostCategory) (*domain.CostCategory, error) {
	return createIn(s, s.costs, cost, func(c *domain.CostCategory, id int64, now time.Time) {
		c.ID, c.CreatedAt = id, now
	}), nil
}

func (s *Store) UpdateCostCategory(_ context.Context, costID int64, patch domain.CostCategoryPatch) (*domain.CostCategory, error) {
	return updateIn(s, s.costs, costID, func(c *domain.CostCategory, _ time.Time) { patch.Apply(c) })
}

func (s *Store) DeleteCostCategory(_ context.Context, costID int64) (bool, error) {
	return deleteIn(s, s.costs, costID), nil
}

// --- Change orders ---

func (s *Store) FindChangeOrderByID(_ context.Context, changeOrderID int64) (*domain.ChangeOrder, error) {
	return findIn(s, s.changeOrders, changeOrderID)
}

func (s *Store) ListChangeOrdersByProject(_ context.Context, projectID int64) ([]domain.ChangeOrder, error) {
	return listIn(s, s.changeOrders, func(o domain.ChangeOrder) bool { return o.ProjectID == projectID }), nil
}

func (s *Store) CreateChangeOrder(_ context.Context, order domain.ChangeOrder) (*domain.ChangeOrder, error) {
	return createIn(s, s.changeOrders, order, func(o *domain.ChangeOrder, id int64, now time.Time) {
		o.ID, o.CreatedAt = id, now
	}), nil
}

func (s *Store) UpdateChangeOrder(_ context.Context, changeOrderID int64, patch domain.ChangeOrderPatch) (*domain.ChangeOrder, error) {
	return updateIn(s, s.changeOrders, changeOrderID, func(o *domain.ChangeOrder, _ time.Time) { patch.Apply(o) })
}

func (s *Store) DecideChangeOrder(_ context.Context, changeOrderID int64, patch domain.ChangeOrderPatch) (*domain.ChangeOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.changeOrders.get(changeOrderID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if o.Status != domain.ChangeOrderPending {
		return nil, apperrors.ErrConflict
	}
	patch.Apply(&o)
	s.changeOrders.replace(changeOrderID, o)
	return &o, nil
}

func (s *Store) DeleteChangeOrder(_ context.Context, changeOrderID int64) (bool, error) {
	return deleteIn(s, s.changeOrders, changeOrderID), nil
}

// --- Daily logs ---

func (s *Store) FindDailyLogByID(_ context.Context, logID int64) (*domain.DailyLog, error) {
	return findIn(s, s.dailyLogs, logID)
}

func (s *Store) ListDailyLogsByProject(_ context.Context, projectID int64) ([]domain.DailyLog, error) {
	return listIn(s, s.dailyLogs, func(l domain.DailyLog) bool { return l.ProjectID == projectID }), nil
}

func (s *Store) CreateDailyLog(_ context.Context, log domain.DailyLog) (*domain.DailyLog, error) {
	return createIn(s, s.dailyLogs, log, func(l *domain.DailyLog, id int64, now time.Time) {
		l.ID, l.CreatedAt = id, now
	}), nil
}

func (s *Store) UpdateDailyLog(_ context.Context, logID int64, patch domain.DailyLogPatch) (*domain.DailyLog, error) {
	return updateIn(s, s.dailyLogs, logID, func(l *domain.DailyLog, _ time.Time) { patch.Apply(l) })
}

func (s *Store) DeleteDailyLog(_ context.Context, logID int64) (bool, error) {
	return deleteIn(s, s.dailyLogs, logID), nil
}

// --- Documents ---

func (s *Store) FindDocumentByID(_ context.Context, documentID int64) (*domain.Document, error) {
	return findIn(s, s.documents, documentID)
}

func (s *Store) ListDocumentsByProject(_ context.Context, projectID int64) ([]domain.Document, error) {
	return listIn(s, s.documents, func(d domain.Document) bool { return d.ProjectID == projectID }), nil
}

func (s *Store) CreateDocument(_ context.Context, doc domain.Document) (*domain.Document, error) {
	return createIn(s, s.documents, doc, func(d *domain.Document, id int64, now time.Time) {
		d.ID, d.CreatedAt = id, now
	}), nil
}

func (s *Store) UpdateDocument(_ context.Context, documentID int64, patch domain.DocumentPatch) (*domain.Document, error) {
	return updateIn(s, s.documents, documentID, func(d *domain.Document, _ time.Time) { patch.Apply(d) })
}

func (s *Store) DeleteDocument(_ context.Context, documentID int64) (bool, error) {
	return deleteIn(s, s.documents, documentID), nil
}

// --- Contacts ---

func (s *Store) FindContactByID(_ context.Context, contactID int64) (*domain.Contact, error) {
	return findIn(s, s.contacts, contactID)
}

func (s *Store) ListContactsByCompany(_ context.Context, companyID int64) ([]domain.Contact, error) {
	return listIn(s, s.contacts, func(c domain.Contact) bool { return c.CompanyID == companyID }), nil
}

func (s *Store) ListContactsByType(_ context.Context, companyID int64, contactType domain.ContactType) ([]domain.Contact, error) {
	return listIn(s, s.contacts, func(c domain.Contact) bool {
		return c.CompanyID == companyID && c.Type == contactType
	}), nil
}

func (s *Store) CreateContact(_ context.Context, contact domain.Contact) (*domain.Contact, error) {
	return createIn(s, s.contacts, contact, func(c *domain.Contact, id int64, now time.Time) {
		c.ID, c.CreatedAt = id, now
	}), nil
}

func (s *Store) UpdateContact(_ context.Context, contactID int64, patch domain.ContactPatch) (*domain.Contact, error) {
	return updateIn(s, s.contacts, contactID, func(c *domain.Contact, _ time.Time) { patch.Apply(c) })
}

func (s *Store) DeleteContact(_ context.Context, contactID int64) (bool, error) {
	return deleteIn(s, s.contacts, contactID), nil
}

// --- Notifications ---

func (s *Store) FindNotificationByID(_ context.Context, notificationID int64) (*domain.Notification, error) {
	return findIn(s, s.notifications, notificationID)
}

func (s *Store) ListNotificationsByUser(_ context.Context, userID int64) ([]domain.Notification, error) {
	return listIn(s, s.notifications, func(n domain.Notification) bool { return n.UserID == userID }), nil
}

func (s *Store) ListUnreadNotificationsByUser(_ context.Context, userID int64) ([]domain.Notification, error) {
	return listIn(s, s.notifications, func(n domain.Notification) bool { return n.UserID == userID && !n.Read }), nil
}

func (s *Store) CreateNotification(_ context.Context, n domain.Notification) (*domain.Notification, error) {
	return createIn(s, s.notifications, n, func(n *domain.Notification, id int64, now time.Time) {
		n.ID, n.CreatedAt = id, now
	}), nil
}

func (s *Store) MarkNotificationRead(_ context.Context, notificationID int64) (bool, error) {
	_, err := updateIn(s, s.notifications, notificationID, func(n *domain.Notification, _ time.Time) { n.Read = true })
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Store) MarkAllNotificationsRead(_ context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for _, id := range s.notifications.order {
		n := s.notifications.rows[id]
		if n.UserID == userID && !n.Read {
			n.Read = true
			s.notifications.rows[id] = n
			changed++
		}
	}
	return changed, nil
}

func (s *Store) DeleteNotification(_ context.Context, notificationID int64) (bool, error) {
	return deleteIn(s, s.notifications, notificationID), nil
}
