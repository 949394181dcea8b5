package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fieldflow_pm/internal/apperrors"
	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldflow_pm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldflow_pm/internal/core/ports/services"
	"github.com/SscSPs/fieldflow_pm/internal/dto"
)

type dailyLogService struct {
	BaseService
	logs portsrepo.DailyLogRepositoryFacade
}

// NewDailyLogService creates the site diary service.
func NewDailyLogService(logs portsrepo.DailyLogRepositoryFacade, projects portsrepo.ProjectReader, authorizer portssvc.AuthorizerSvc) portssvc.DailyLogSvcFacade {
	return &dailyLogService{
		BaseService: BaseService{Authorizer: authorizer, Projects: projects},
		logs:        logs,
	}
}

var _ portssvc.DailyLogSvcFacade = (*dailyLogService)(nil)

func (s *dailyLogService) loadLog(ctx context.Context, actor *domain.User, logID int64, action domain.Action) (*domain.DailyLog, error) {
	log, err := s.logs.FindDailyLogByID(ctx, logID)
	if err != nil {
		return nil, notFoundOr(err, "Daily log", "failed to load daily log")
	}
	if _, err := s.AuthorizeProjectAction(ctx, actor, log.ProjectID, domain.ResourceDailyLog, action); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *dailyLogService) ListDailyLogs(ctx context.Context, actor *domain.User, projectID int64) ([]domain.DailyLog, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceDailyLog, domain.ActionRead); err != nil {
		return nil, err
	}
	logs, err := s.logs.ListDailyLogsByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list daily logs", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	return logs, nil
}

func (s *dailyLogService) CreateDailyLog(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateDailyLogRequest) (*domain.DailyLog, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceDailyLog, domain.ActionCreate); err != nil {
		return nil, err
	}
	created, err := s.logs.CreateDailyLog(ctx, req.ToDailyLog(projectID, actor.ID))
	if err != nil {
		s.LogError(ctx, err, "Failed to create daily log", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to create daily log: %w", err)
	}
	s.GetLogger(ctx).Info("Daily log created", slog.Int64("daily_log_id", created.ID), slog.Int64("project_id", projectID))
	return created, nil
}

func (s *dailyLogService) UpdateDailyLog(ctx context.Context, actor *domain.User, logID int64, req dto.UpdateDailyLogRequest) (*domain.DailyLog, error) {
	if _, err := s.loadLog(ctx, actor, logID, domain.ActionUpdate); err != nil {
		return nil, err
	}
	updated, err := s.logs.UpdateDailyLog(ctx, logID, req.ToPatch())
	if err != nil {
		return nil, notFoundOr(err, "Daily log", "failed to update daily log")
	}
	return updated, nil
}

func (s *dailyLogService) DeleteDailyLog(ctx context.Context, actor *domain.User, logID int64) error {
	if _, err := s.loadLog(ctx, actor, logID, domain.ActionDelete); err != nil {
		return err
	}
	removed, err := s.logs.DeleteDailyLog(ctx, logID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete daily log", slog.Int64("daily_log_id", logID))
		return fmt.Errorf("failed to delete daily log: %w", err)
	}
	if !removed {
		return apperrors.NotFound("Daily log")
	}
	return nil
}

type documentService struct {
	BaseService
	documents portsrepo.DocumentRepositoryFacade
}

// NewDocumentService creates the service for project document metadata.
func NewDocumentService(documents portsrepo.DocumentRepositoryFacade, projects portsrepo.ProjectReader, authorizer portssvc.AuthorizerSvc) portssvc.DocumentSvcFacade {
	return &documentService{
		BaseService: BaseService{Authorizer: authorizer, Projects: projects},
		documents:   documents,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) ListDocuments(ctx context.Context, actor *domain.User, projectID int64) ([]domain.Document, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceDocument, domain.ActionRead); err != nil {
		return nil, err
	}
	docs, err := s.documents.ListDocumentsByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) CreateDocument(ctx context.Context, actor *domain.User, projectID int64, req dto.CreateDocumentRequest) (*domain.Document, error) {
	if _, err := s.AuthorizeProjectAction(ctx, actor, projectID, domain.ResourceDocument, domain.ActionCreate); err != nil {
		return nil, err
	}
	created, err := s.documents.CreateDocument(ctx, req.ToDocument(projectID, actor.ID))
	if err != nil {
		s.LogError(ctx, err, "Failed to create document", slog.Int64("project_id", projectID))
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	s.GetLogger(ctx).Info("Document registered", slog.Int64("document_id", created.ID), slog.Int64("project_id", projectID))
	return created, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, actor *domain.User, documentID int64) error {
	doc, err := s.documents.FindDocumentByID(ctx, documentID)
	if err != nil {
		return notFoundOr(err, "Document", "failed to load document")
	}
	if _, err := s.AuthorizeProjectAction(ctx, actor, doc.ProjectID, domain.ResourceDocument, domain.ActionDelete); err != nil {
		return err
	}
	removed, err := s.documents.DeleteDocument(ctx, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete document", slog.Int64("document_id", documentID))
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if !removed {
		return apperrors.NotFound("Document")
	}
	return nil
}

type contactService struct {
	BaseService
	contacts portsrepo.ContactRepositoryFacade
}

// NewContactService creates the company address book service.
func NewContactService(contacts portsrepo.ContactRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.ContactSvcFacade {
	return &contactService{
		BaseService: BaseService{Authorizer: authorizer},
		contacts:    contacts,
	}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func contactResource(c *domain.Contact) domain.Resource {
	return domain.Resource{Kind: domain.ResourceContact, ID: c.ID, CompanyID: c.CompanyID}
}

func (s *contactService) loadContact(ctx context.Context, actor *domain.User, contactID int64, action domain.Action) (*domain.Contact, error) {
	contact, err := s.contacts.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, notFoundOr(err, "Contact", "failed to load contact")
	}
	if err := s.Authorize(ctx, actor, action, contactResource(contact)); err != nil {
		return nil, err
	}
	return contact, nil
}

// ListContacts returns the caller's company contacts, filtered by type when one is given.
func (s *contactService) ListContacts(ctx context.Context, actor *domain.User, contactType domain.ContactType) ([]domain.Contact, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, domain.ActionRead, domain.Resource{Kind: domain.ResourceContact, CompanyID: companyID}); err != nil {
		return nil, err
	}

	var contacts []domain.Contact
	if contactType == "" {
		contacts, err = s.contacts.ListContactsByCompany(ctx, companyID)
	} else {
		contacts, err = s.contacts.ListContactsByType(ctx, companyID, contactType)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts", slog.Int64("company_id", companyID))
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) CreateContact(ctx context.Context, actor *domain.User, req dto.CreateContactRequest) (*domain.Contact, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, domain.ActionCreate, domain.Resource{Kind: domain.ResourceContact, CompanyID: companyID}); err != nil {
		return nil, err
	}
	created, err := s.contacts.CreateContact(ctx, req.ToContact(companyID))
	if err != nil {
		s.LogError(ctx, err, "Failed to create contact")
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return created, nil
}

func (s *contactService) UpdateContact(ctx context.Context, actor *domain.User, contactID int64, req dto.UpdateContactRequest) (*domain.Contact, error) {
	if _, err := s.loadContact(ctx, actor, contactID, domain.ActionUpdate); err != nil {
		return nil, err
	}
	updated, err := s.contacts.UpdateContact(ctx, contactID, req.ToPatch())
	if err != nil {
		return nil, notFoundOr(err, "Contact", "failed to update contact")
	}
	return updated, nil
}

func (s *contactService) DeleteContact(ctx context.Context, actor *domain.User, contactID int64) error {
	if _, err := s.loadContact(ctx, actor, contactID, domain.ActionDelete); err != nil {
		return err
	}
	removed, err := s.contacts.DeleteContact(ctx, contactID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete contact", slog.Int64("contact_id", contactID))
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if !removed {
		return apperrors.NotFound("Contact")
	}
	return nil
}
