package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

// UploadReceipt pushes an uploaded receipt image to the storage bucket and
// returns its public URL.
func UploadReceipt(fh *multipart.FileHeader, fileID string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	ext := filepath.Ext(fh.Filename)
	objectPath := fmt.Sprintf("receipts/%s%s", fileID, ext)

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := storageClient.UploadFile("vacation_receipts", objectPath, f, options); err != nil {
		return "", err
	}

	publicURL := storageClient.GetPublicUrl("vacation_receipts", objectPath)
	return publicURL.SignedURL, nil
}
