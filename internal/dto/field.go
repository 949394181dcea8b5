package dto

import (
	"time"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
)

type CreateDailyLogRequest struct {
	Date        *time.Time `json:"date" binding:"required"`
	Weather     string     `json:"weather"`
	Temperature string     `json:"temperature"`
	Crew        []string   `json:"crew" binding:"omitempty,dive,required"`
	Notes       string     `json:"notes" binding:"required"`
}

func (r CreateDailyLogRequest) ToDailyLog(projectID, authorID int64) domain.DailyLog {
	crew := r.Crew
	if crew == nil {
		crew = []string{}
	}
	return domain.DailyLog{
		ProjectID:   projectID,
		Date:        *r.Date,
		Weather:     r.Weather,
		Temperature: r.Temperature,
		Crew:        crew,
		Notes:       r.Notes,
		CreatedBy:   authorID,
	}
}

type UpdateDailyLogRequest struct {
	Date        *time.Time `json:"date"`
	Weather     *string    `json:"weather"`
	Temperature *string    `json:"temperature"`
	Crew        []string   `json:"crew" binding:"omitempty,dive,required"`
	Notes       *string    `json:"notes" binding:"omitempty,min=1"`
}

func (r UpdateDailyLogRequest) ToPatch() domain.DailyLogPatch {
	return domain.DailyLogPatch{
		Date:        r.Date,
		Weather:     r.Weather,
		Temperature: r.Temperature,
		Crew:        r.Crew,
		Notes:       r.Notes,
	}
}

// CreateDocumentRequest registers the metadata of an already stored file.
type CreateDocumentRequest struct {
	Name         string                  `json:"name" binding:"required"`
	OriginalName string                  `json:"originalName" binding:"required"`
	FilePath     string                  `json:"filePath" binding:"required"`
	FileSize     int64                   `json:"fileSize" binding:"gte=0"`
	MimeType     string                  `json:"mimeType"`
	Category     domain.DocumentCategory `json:"category" binding:"omitempty,oneof=permit contract photo plan other"`
}

func (r CreateDocumentRequest) ToDocument(projectID, uploaderID int64) domain.Document {
	return domain.Document{
		ProjectID:    projectID,
		Name:         r.Name,
		OriginalName: r.OriginalName,
		FilePath:     r.FilePath,
		FileSize:     r.FileSize,
		MimeType:     r.MimeType,
		Category:     r.Category,
		UploadedBy:   uploaderID,
	}
}

type CreateContactRequest struct {
	Type      domain.ContactType `json:"type" binding:"required,oneof=client subcontractor vendor lead"`
	FirstName string             `json:"firstName" binding:"required"`
	LastName  string             `json:"lastName" binding:"required"`
	Company   string             `json:"company"`
	Email     string             `json:"email" binding:"omitempty,email"`
	Phone     string             `json:"phone"`
	Address   string             `json:"address"`
	Notes     string             `json:"notes"`
}

func (r CreateContactRequest) ToContact(companyID int64) domain.Contact {
	return domain.Contact{
		CompanyID: companyID,
		Type:      r.Type,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Company:   r.Company,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Notes:     r.Notes,
	}
}

type UpdateContactRequest struct {
	Type      *domain.ContactType `json:"type" binding:"omitempty,oneof=client subcontractor vendor lead"`
	FirstName *string             `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string             `json:"lastName" binding:"omitempty,min=1"`
	Company   *string             `json:"company"`
	Email     *string             `json:"email" binding:"omitempty,email"`
	Phone     *string             `json:"phone"`
	Address   *string             `json:"address"`
	Notes     *string             `json:"notes"`
}

func (r UpdateContactRequest) ToPatch() domain.ContactPatch {
	return domain.ContactPatch{
		Type:      r.Type,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Company:   r.Company,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Notes:     r.Notes,
	}
}

// ListContactsParams filters the address book.
type ListContactsParams struct {
	Type domain.ContactType `form:"type" binding:"omitempty,oneof=client subcontractor vendor lead"`
}

// MarkAllReadResponse reports how many notifications were marked read.
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}
