// Package gcsuploader stores batch run artifacts (reports, payload lists) in
// Google Cloud Storage.
package gcsuploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
)

// UploadBytes writes data to gs://bucket/object. It assumes Application
// Default Credentials are configured.
func UploadBytes(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("UploadBytes: create storage client: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("UploadBytes: write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("UploadBytes: finalize upload: %w", err)
	}

	return nil
}

// UploadFile uploads a local file to a GCS bucket under the given object name.
func UploadFile(ctx context.Context, bucketName, objectName, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("UploadFile: open file %q: %w", filePath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, f); err != nil {
		return fmt.Errorf("UploadFile: read file %q: %w", filePath, err)
	}

	return UploadBytes(ctx, bucketName, objectName, buf.Bytes(), "")
}

// ReportObjectName builds the object path for a batch report:
// reports/2026/08/31/<run-id>.csv.
func ReportObjectName(runID string, at time.Time) string {
	return fmt.Sprintf("reports/%s/%s.csv", at.Format("2006/01/02"), runID)
}
