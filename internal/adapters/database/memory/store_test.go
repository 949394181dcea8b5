package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/adapters/database/memory"
	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock time.Time
	store *memory.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s.store = memory.NewStore(memory.WithClock(func() time.Time { return s.clock }))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) newProject(companyID, clientID int64, name string) *domain.Project {
	p, err := s.store.CreateProject(s.ctx, domain.Project{
		Name:        name,
		Address:     "1 Main St",
		CompanyID:   companyID,
		ClientID:    clientID,
		Status:      domain.ProjectPlanning,
		BudgetTotal: domain.MoneyPtr(domain.MustParseMoney("25000.00")),
	})
	s.Require().NoError(err)
	return p
}

func (s *StoreTestSuite) TestCreateThenFind_RoundTrip() {
	created := s.newProject(1, 2, "Kitchen Remodel")

	found, err := s.store.FindProjectByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(*created, *found)
	s.Equal(s.clock, found.CreatedAt)
	s.Equal(s.clock, found.UpdatedAt)
}

func (s *StoreTestSuite) TestHandlesAreSharedAcrossTypes() {
	c, err := s.store.CreateCompany(s.ctx, domain.Company{Name: "ABC Construction"})
	s.Require().NoError(err)
	p := s.newProject(c.ID, 99, "Bathroom")
	o, err := s.store.CreateChangeOrder(s.ctx, domain.ChangeOrder{ProjectID: p.ID, Title: "CO-001"})
	s.Require().NoError(err)

	s.Equal(int64(1), c.ID)
	s.Equal(int64(2), p.ID)
	s.Equal(int64(3), o.ID)
}

func (s *StoreTestSuite) TestFindMissing_ReturnsNotFound() {
	_, err := s.store.FindTaskByID(s.ctx, 404)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.store.FindUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestDeleteTwice() {
	p := s.newProject(1, 2, "Deck")

	removed, err := s.store.DeleteProject(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.store.DeleteProject(s.ctx, p.ID)
	s.Require().NoError(err)
	s.False(removed)

	_, err = s.store.FindProjectByID(s.ctx, p.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestDecideChangeOrder_FirstDecisionWins() {
	p := s.newProject(1, 2, "Kitchen")
	o, err := s.store.CreateChangeOrder(s.ctx, domain.ChangeOrder{ProjectID: p.ID, Title: "CO-001", Status: domain.ChangeOrderPending})
	s.Require().NoError(err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for _, status := range []domain.ChangeOrderStatus{domain.ChangeOrderApproved, domain.ChangeOrderRejected, domain.ChangeOrderApproved} {
		wg.Add(1)
		go func(status domain.ChangeOrderStatus) {
			defer wg.Done()
			_, err := s.store.DecideChangeOrder(s.ctx, o.ID, domain.ChangeOrderPatch{Status: &status})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
				return
			}
			s.ErrorIs(err, apperrors.ErrConflict)
		}(status)
	}
	wg.Wait()
	s.Equal(1, wins)

	_, err = s.store.DecideChangeOrder(s.ctx, 404, domain.ChangeOrderPatch{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestListProjectsByClient_ExactMatchesInInsertionOrder() {
	a := s.newProject(1, 10, "A")
	s.newProject(1, 11, "B")
	c := s.newProject(2, 10, "C")

	got, err := s.store.ListProjectsByClient(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(a.ID, got[0].ID)
	s.Equal(c.ID, got[1].ID)
	for _, p := range got {
		s.Equal(int64(10), p.ClientID)
	}
}

func (s *StoreTestSuite) TestScopedListUnknownParent_IsEmptyNotNil() {
	tasks, err := s.store.ListTasksByProject(s.ctx, 12345)
	s.Require().NoError(err)
	s.NotNil(tasks)
	s.Empty(tasks)
}

func (s *StoreTestSuite) TestListOrderSurvivesDeletes() {
	p := s.newProject(1, 2, "P")
	var ids []int64
	for _, name := range []string{"demo", "frame", "roof", "paint"} {
		t, err := s.store.CreateTask(s.ctx, domain.ProjectTask{ProjectID: p.ID, Name: name, Status: domain.TaskPending})
		s.Require().NoError(err)
		ids = append(ids, t.ID)
	}
	_, err := s.store.DeleteTask(s.ctx, ids[1])
	s.Require().NoError(err)

	got, err := s.store.ListTasksByProject(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal([]int64{ids[0], ids[2], ids[3]}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func (s *StoreTestSuite) TestUpdateRefreshesUpdatedAtAndNeverCreates() {
	p := s.newProject(1, 2, "Garage")
	s.clock = s.clock.Add(time.Hour)

	status := domain.ProjectActive
	updated, err := s.store.UpdateProject(s.ctx, p.ID, domain.ProjectPatch{Status: &status})
	s.Require().NoError(err)
	s.Equal(domain.ProjectActive, updated.Status)
	s.Equal("Garage", updated.Name)
	s.Equal(p.CreatedAt, updated.CreatedAt)
	s.True(updated.UpdatedAt.After(p.UpdatedAt))

	_, err = s.store.UpdateProject(s.ctx, 9999, domain.ProjectPatch{Status: &status})
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.store.FindProjectByID(s.ctx, 9999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestReturnedRecordsAreCopies() {
	p := s.newProject(1, 2, "Porch")
	log, err := s.store.CreateDailyLog(s.ctx, domain.DailyLog{ProjectID: p.ID, Crew: []string{"Mike", "Steve"}, Notes: "framing"})
	s.Require().NoError(err)

	log.Crew[0] = "Mallory"
	p.Name = "mutated"

	again, err := s.store.FindDailyLogByID(s.ctx, log.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Mike", "Steve"}, again.Crew)

	proj, err := s.store.FindProjectByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Porch", proj.Name)
}

func (s *StoreTestSuite) TestUserUniqueness() {
	_, err := s.store.CreateUser(s.ctx, domain.User{Username: "admin", Email: "admin@abc.com", Role: domain.RoleAdmin})
	s.Require().NoError(err)

	_, err = s.store.CreateUser(s.ctx, domain.User{Username: "admin", Email: "other@abc.com"})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.store.CreateUser(s.ctx, domain.User{Username: "other", Email: "admin@abc.com"})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	second, err := s.store.CreateUser(s.ctx, domain.User{Username: "second", Email: "second@abc.com"})
	s.Require().NoError(err)
	taken := "admin"
	_, err = s.store.UpdateUser(s.ctx, second.ID, domain.UserPatch{Username: &taken})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	unchanged, err := s.store.FindUserByID(s.ctx, second.ID)
	s.Require().NoError(err)
	s.Equal("second", unchanged.Username)
}

func (s *StoreTestSuite) TestListUsersByCompany() {
	companyID := int64(7)
	_, err := s.store.CreateUser(s.ctx, domain.User{Username: "a", Email: "a@x", CompanyID: &companyID})
	s.Require().NoError(err)
	_, err = s.store.CreateUser(s.ctx, domain.User{Username: "b", Email: "b@x"})
	s.Require().NoError(err)

	users, err := s.store.ListUsersByCompany(s.ctx, companyID)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("a", users[0].Username)
}

func (s *StoreTestSuite) TestContactsByType() {
	for _, c := range []domain.Contact{
		{CompanyID: 1, Type: domain.ContactVendor, FirstName: "V"},
		{CompanyID: 1, Type: domain.ContactLead, FirstName: "L"},
		{CompanyID: 2, Type: domain.ContactVendor, FirstName: "Other"},
	} {
		_, err := s.store.CreateContact(s.ctx, c)
		s.Require().NoError(err)
	}

	vendors, err := s.store.ListContactsByType(s.ctx, 1, domain.ContactVendor)
	s.Require().NoError(err)
	s.Require().Len(vendors, 1)
	s.Equal("V", vendors[0].FirstName)
}

func (s *StoreTestSuite) TestNotificationsReadState() {
	for i := 0; i < 3; i++ {
		_, err := s.store.CreateNotification(s.ctx, domain.Notification{UserID: 5, Title: "t", Message: "m", Type: domain.NotificationGeneral})
		s.Require().NoError(err)
	}
	all, err := s.store.ListNotificationsByUser(s.ctx, 5)
	s.Require().NoError(err)
	s.Require().Len(all, 3)

	ok, err := s.store.MarkNotificationRead(s.ctx, all[0].ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.MarkNotificationRead(s.ctx, 4242)
	s.Require().NoError(err)
	s.False(ok)

	unread, err := s.store.ListUnreadNotificationsByUser(s.ctx, 5)
	s.Require().NoError(err)
	s.Len(unread, 2)

	changed, err := s.store.MarkAllNotificationsRead(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(2, changed)

	unread, err = s.store.ListUnreadNotificationsByUser(s.ctx, 5)
	s.Require().NoError(err)
	s.Empty(unread)
}

func (s *StoreTestSuite) TestConcurrentCreatesGetDistinctHandles() {
	const workers = 50
	var wg sync.WaitGroup
	ids := make(chan int64, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := s.store.CreateContact(s.ctx, domain.Contact{CompanyID: 1, Type: domain.ContactLead})
			if err == nil {
				ids <- c.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		s.False(seen[id], "duplicate handle %d", id)
		seen[id] = true
	}
	s.Len(seen, workers)
}
