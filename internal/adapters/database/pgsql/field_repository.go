package pgsql

import (
	"context"

	"github.com/SscSPs/fieldflow_pm/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const dailyLogColumns = `id, project_id, log_date, weather, temperature, crew, notes, created_by, created_at`

func scanDailyLog(row pgx.Row) (domain.DailyLog, error) {
	var l domain.DailyLog
	err := row.Scan(&l.ID, &l.ProjectID, &l.Date, &l.Weather, &l.Temperature, &l.Crew, &l.Notes, &l.CreatedBy, &l.CreatedAt)
	l.Crew = stringsOrEmpty(l.Crew)
	return l, err
}

func (s *Store) FindDailyLogByID(ctx context.Context, logID int64) (*domain.DailyLog, error) {
	return queryOne(ctx, s.db, scanDailyLog, "find daily log",
		`SELECT `+dailyLogColumns+` FROM daily_logs WHERE id = $1`, logID)
}

func (s *Store) ListDailyLogsByProject(ctx context.Context, projectID int64) ([]domain.DailyLog, error) {
	return queryList(ctx, s.db, scanDailyLog, "list daily logs",
		`SELECT `+dailyLogColumns+` FROM daily_logs WHERE project_id = $1 ORDER BY id`, projectID)
}

func (s *Store) CreateDailyLog(ctx context.Context, log domain.DailyLog) (*domain.DailyLog, error) {
	return queryOne(ctx, s.db, scanDailyLog, "create daily log", `
        INSERT INTO daily_logs (project_id, log_date, weather, temperature, crew, notes, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+dailyLogColumns,
		log.ProjectID, log.Date, log.Weather, log.Temperature, stringsOrEmpty(log.Crew), log.Notes, log.CreatedBy)
}

func (s *Store) UpdateDailyLog(ctx context.Context, logID int64, patch domain.DailyLogPatch) (*domain.DailyLog, error) {
	return queryOne(ctx, s.db, scanDailyLog, "update daily log", `
        UPDATE daily_logs SET
            log_date = COALESCE($2, log_date),
            weather = COALESCE($3, weather),
            temperature = COALESCE($4, temperature),
            crew = COALESCE($5, crew),
            notes = COALESCE($6, notes)
        WHERE id = $1
        RETURNING `+dailyLogColumns,
		logID, patch.Date, patch.Weather, patch.Temperature, patch.Crew, patch.Notes)
}

func (s *Store) DeleteDailyLog(ctx context.Context, logID int64) (bool, error) {
	return deleteByID(ctx, s.db, "daily_logs", logID)
}

const documentColumns = `id, project_id, name, original_name, file_path, file_size, mime_type, category, uploaded_by, created_at`

func scanDocument(row pgx.Row) (domain.Document, error) {
	var d domain.Document
	err := row.Scan(&d.ID, &d.ProjectID, &d.Name, &d.OriginalName, &d.FilePath, &d.FileSize,
		&d.MimeType, &d.Category, &d.UploadedBy, &d.CreatedAt)
	return d, err
}

func (s *Store) FindDocumentByID(ctx context.Context, documentID int64) (*domain.Document, error) {
	return queryOne(ctx, s.db, scanDocument, "find document",
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`, documentID)
}

func (s *Store) ListDocumentsByProject(ctx context.Context, projectID int64) ([]domain.Document, error) {
	return queryList(ctx, s.db, scanDocument, "list documents",
		`SELECT `+documentColumns+` FROM documents WHERE project_id = $1 ORDER BY id`, projectID)
}

func (s *Store) CreateDocument(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	return queryOne(ctx, s.db, scanDocument, "create document", `
        INSERT INTO documents (project_id, name, original_name, file_path, file_size, mime_type, category, uploaded_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+documentColumns,
		doc.ProjectID, doc.Name, doc.OriginalName, doc.FilePath, doc.FileSize, doc.MimeType,
		string(doc.Category), doc.UploadedBy)
}

func (s *Store) UpdateDocument(ctx context.Context, documentID int64, patch domain.DocumentPatch) (*domain.Document, error) {
	return queryOne(ctx, s.db, scanDocument, "update document", `
        UPDATE documents SET
            name = COALESCE($2, name),
            category = COALESCE($3, category)
        WHERE id = $1
        RETURNING `+documentColumns,
		documentID, patch.Name, patch.Category)
}

func (s *Store) DeleteDocument(ctx context.Context, documentID int64) (bool, error) {
	return deleteByID(ctx, s.db, "documents", documentID)
}
