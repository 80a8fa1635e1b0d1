package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"clinic-portal/config"
	"clinic-portal/libs"
	"clinic-portal/models"
)

type RecordAPI interface {
	CreateRecord(ctx context.Context, token string, req models.CreateRecordRequest) (models.MedicalRecord, error)
	ListRecords(ctx context.Context, token string) ([]models.MedicalRecord, error)
	GetRecord(ctx context.Context, token string, id int) (models.MedicalRecord, error)
	DeleteRecord(ctx context.Context, token string, id int) error
}

// FileUploader pushes a local file to document storage and returns its URL.
type FileUploader func(localPath string) (string, error)

// FileRemover deletes a stored document by its storage ID.
type FileRemover func(publicID string) error

type RecordService struct {
	api    RecordAPI
	upload FileUploader
	remove FileRemover
}

func NewRecordService(api RecordAPI) *RecordService {
	return &RecordService{
		api:    api,
		upload: libs.UploadToCloudinary,
		remove: libs.DeleteFromCloudinary,
	}
}

func NewRecordServiceWithUploader(api RecordAPI, upload FileUploader) *RecordService {
	return &RecordService{api: api, upload: upload}
}

// Upload stores the already-saved local file in document storage, then
// registers the record with the backend. The local file is consumed by the
// upload either way.
func (s *RecordService) Upload(ctx context.Context, session *models.Session, localPath, fileType, title, description string) (models.MedicalRecord, error) {
	if strings.TrimSpace(title) == "" {
		return models.MedicalRecord{}, errors.New("title is required")
	}

	fileURL, err := s.upload(localPath)
	if err != nil {
		return models.MedicalRecord{}, err
	}

	return s.api.CreateRecord(ctx, session.AccessToken, models.CreateRecordRequest{
		Title:       title,
		Description: description,
		FileURL:     fileURL,
		FileType:    fileType,
	})
}

func (s *RecordService) List(ctx context.Context, session *models.Session) ([]models.MedicalRecord, error) {
	return s.api.ListRecords(ctx, session.AccessToken)
}

func (s *RecordService) GetByID(ctx context.Context, session *models.Session, id int) (models.MedicalRecord, error) {
	return s.api.GetRecord(ctx, session.AccessToken, id)
}

// Delete removes the backend record; the stored document is cleaned up
// best-effort afterwards, an orphaned file is not worth failing the delete.
func (s *RecordService) Delete(ctx context.Context, session *models.Session, id int) error {
	record, err := s.api.GetRecord(ctx, session.AccessToken, id)
	if err != nil {
		return err
	}

	if err := s.api.DeleteRecord(ctx, session.AccessToken, id); err != nil {
		return err
	}

	if s.remove != nil {
		if publicID := storagePublicID(record.FileURL); publicID != "" {
			if err := s.remove(publicID); err != nil {
				config.Log.Warn("Stored document cleanup failed",
					config.Field("record_id", id),
					config.Field("error", err.Error()))
			}
		}
	}
	return nil
}

// storagePublicID recovers the cloudinary public ID (folder/name without the
// extension) from a delivery URL. Empty when the URL is not in delivery form.
func storagePublicID(fileURL string) string {
	marker := "/upload/"
	idx := strings.Index(fileURL, marker)
	if idx < 0 {
		return ""
	}
	rest := fileURL[idx+len(marker):]

	// Drop the version segment (v123456789/) when present.
	if strings.HasPrefix(rest, "v") {
		if slash := strings.Index(rest, "/"); slash > 0 {
			if _, err := strconv.Atoi(rest[1:slash]); err == nil {
				rest = rest[slash+1:]
			}
		}
	}
	if rest == "" {
		return ""
	}
	if dot := strings.LastIndex(rest, "."); dot > strings.LastIndex(rest, "/") {
		rest = rest[:dot]
	}
	return rest
}
