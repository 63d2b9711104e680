package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const photoMaxDimension = 512

// UploadProfilePhoto normalises an uploaded profile photo (bounded
// dimensions, webp) and pushes it to object storage. Returns the public
// URL of the stored object.
func UploadProfilePhoto(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded photo: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("uploaded file is not a decodable image: %w", err)
	}

	// Fit keeps aspect ratio; small images pass through unscaled.
	img = imaging.Fit(img, photoMaxDimension, photoMaxDimension, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("webp encode failed: %w", err)
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename) + ".webp"
	if err := uploadToStorage("photos", filename, "image/webp", buf); err != nil {
		return "", fmt.Errorf("photo upload failed: %w", err)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/photos/%s",
		os.Getenv("STORAGE_PROJECT_URL"),
		url.PathEscape(filename),
	), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	safe := unsafeFilenameChars.ReplaceAllString(originalFilename, "_")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), safe)
}

func uploadToStorage(bucket, filename, contentType string, data *bytes.Buffer) error {
	storageURL := os.Getenv("STORAGE_PROJECT_URL")
	storageKey := os.Getenv("STORAGE_SERVICE_ROLE_KEY")
	if storageURL == "" || storageKey == "" {
		return fmt.Errorf("storage env not configured")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", storageURL, bucket, url.PathEscape(filename))
	req, err := http.NewRequest(http.MethodPost, endpoint, data)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+storageKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("storage responded %d", resp.StatusCode)
	}
	return nil
}
