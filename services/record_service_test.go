package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRecord(t *testing.T) {
	api := &fakeRecordAPI{}
	var uploadedPath string
	svc := NewRecordServiceWithUploader(api, func(localPath string) (string, error) {
		uploadedPath = localPath
		return "https://cdn.example.com/records/report.pdf", nil
	})

	record, err := svc.Upload(context.Background(), patientSession(),
		"uploads/records/report.pdf", "pdf", "Blood report", "CBC from last visit")

	require.NoError(t, err)
	assert.Equal(t, "uploads/records/report.pdf", uploadedPath)
	assert.Equal(t, "Blood report", record.Title)
	assert.Equal(t, "https://cdn.example.com/records/report.pdf", record.FileURL)
	assert.Equal(t, "pdf", record.FileType)
}

func TestUploadRecordRequiresTitle(t *testing.T) {
	api := &fakeRecordAPI{}
	called := false
	svc := NewRecordServiceWithUploader(api, func(string) (string, error) {
		called = true
		return "", nil
	})

	_, err := svc.Upload(context.Background(), patientSession(), "file.pdf", "pdf", "   ", "")

	assert.Error(t, err)
	assert.False(t, called)
	assert.Empty(t, api.records)
}

func TestStoragePublicID(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1712345678/medical-records/record_1.pdf": "medical-records/record_1",
		"https://res.cloudinary.com/demo/image/upload/medical-records/record_1.jpg":             "medical-records/record_1",
		"https://res.cloudinary.com/demo/image/upload/record_1":                                 "record_1",
		"https://example.com/files/report.pdf":                                                  "",
		"": "",
	}
	for url, want := range cases {
		assert.Equal(t, want, storagePublicID(url), "url %q", url)
	}
}

func TestUploadRecordStorageFailure(t *testing.T) {
	api := &fakeRecordAPI{}
	svc := NewRecordServiceWithUploader(api, func(string) (string, error) {
		return "", errors.New("storage down")
	})

	_, err := svc.Upload(context.Background(), patientSession(), "file.pdf", "pdf", "Report", "")

	assert.Error(t, err)
	assert.Empty(t, api.records)
}
