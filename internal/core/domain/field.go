package domain

import "time"

// DailyLog is the site diary entry for one day on a project.
type DailyLog struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"projectId"`
	Date        time.Time `json:"date"`
	Weather     string    `json:"weather,omitempty"`
	Temperature string    `json:"temperature,omitempty"`
	Crew        []string  `json:"crew"`
	Notes       string    `json:"notes"`
	CreatedBy   int64     `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (l DailyLog) Clone() DailyLog {
	l.Crew = cloneSlice(l.Crew)
	return l
}

type DailyLogPatch struct {
	Date        *time.Time
	Weather     *string
	Temperature *string
	Crew        []string
	Notes       *string
}

func (p DailyLogPatch) Apply(l *DailyLog) {
	setIf(&l.Date, p.Date)
	setIf(&l.Weather, p.Weather)
	setIf(&l.Temperature, p.Temperature)
	setIf(&l.Notes, p.Notes)
	if p.Crew != nil {
		l.Crew = cloneSlice(p.Crew)
	}
}

type DocumentCategory string

const (
	DocumentPermit   DocumentCategory = "permit"
	DocumentContract DocumentCategory = "contract"
	DocumentPhoto    DocumentCategory = "photo"
	DocumentPlan     DocumentCategory = "plan"
	DocumentOther    DocumentCategory = "other"
)

// Document is the metadata of a file attached to a project. File bytes live elsewhere.
type Document struct {
	ID           int64            `json:"id"`
	ProjectID    int64            `json:"projectId"`
	Name         string           `json:"name"`
	OriginalName string           `json:"originalName"`
	FilePath     string           `json:"filePath"`
	FileSize     int64            `json:"fileSize"`
	MimeType     string           `json:"mimeType,omitempty"`
	Category     DocumentCategory `json:"category,omitempty"`
	UploadedBy   int64            `json:"uploadedBy"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type DocumentPatch struct {
	Name     *string
	Category *DocumentCategory
}

func (p DocumentPatch) Apply(d *Document) {
	setIf(&d.Name, p.Name)
	setIf(&d.Category, p.Category)
}

type ContactType string

const (
	ContactClient        ContactType = "client"
	ContactSubcontractor ContactType = "subcontractor"
	ContactVendor        ContactType = "vendor"
	ContactLead          ContactType = "lead"
)

// Contact is an address-book entry of a company.
type Contact struct {
	ID        int64       `json:"id"`
	CompanyID int64       `json:"companyId"`
	Type      ContactType `json:"type"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Company   string      `json:"company,omitempty"`
	Email     string      `json:"email,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Address   string      `json:"address,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type ContactPatch struct {
	Type      *ContactType
	FirstName *string
	LastName  *string
	Company   *string
	Email     *string
	Phone     *string
	Address   *string
	Notes     *string
}

func (p ContactPatch) Apply(c *Contact) {
	setIf(&c.Type, p.Type)
	setIf(&c.FirstName, p.FirstName)
	setIf(&c.LastName, p.LastName)
	setIf(&c.Company, p.Company)
	setIf(&c.Email, p.Email)
	setIf(&c.Phone, p.Phone)
	setIf(&c.Address, p.Address)
	setIf(&c.Notes, p.Notes)
}

type NotificationType string

const (
	NotificationScheduleChange NotificationType = "schedule_change"
	NotificationApprovalNeeded NotificationType = "approval_needed"
	NotificationBudgetAlert    NotificationType = "budget_alert"
	NotificationGeneral        NotificationType = "general"
)

// Notification is a message addressed to exactly one user.
type Notification struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	Read        bool             `json:"read"`
	RelatedID   *int64           `json:"relatedId"`
	RelatedType string           `json:"relatedType,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (n Notification) Clone() Notification {
	n.RelatedID = cloneInt64(n.RelatedID)
	return n
}
