package file

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"assetdesk-backend/shared/config"
)

// GenerateStorageKey builds the object key for an uploaded file. The unix
// millisecond prefix keeps keys unique while the original name stays readable
// in the bucket.
func GenerateStorageKey(originalName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFileName(originalName))
}

// SanitizeFileName strips path separators and characters that break object
// keys or URLs
func SanitizeFileName(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(
		" ", "_",
		"#", "",
		"?", "",
		"%", "",
		"&", "",
	)
	return replacer.Replace(name)
}

// OriginalNameFromKey recovers the display name from a storage key
func OriginalNameFromKey(objectKey string) string {
	parts := strings.SplitN(objectKey, "-", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return objectKey
}

// ValidateUploadedFile checks size and content type against the configured
// upload limits
func ValidateUploadedFile(header *multipart.FileHeader) error {
	cfg := config.GetConfig()

	maxSize := cfg.GetUploadMaxFileSizeBytes()
	if header.Size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size of %d bytes", header.Size, maxSize)
	}
	if header.Size == 0 {
		return fmt.Errorf("file is empty")
	}

	contentType := header.Header.Get("Content-Type")
	if !isAllowedType(contentType, cfg.GetUploadAllowedTypes()) {
		return fmt.Errorf("file type %s is not allowed", contentType)
	}

	return nil
}

// isAllowedType matches a content type against the allow list. Entries ending
// with "/*" match the whole primary type.
func isAllowedType(contentType string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	for _, entry := range allowed {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.HasSuffix(entry, "/*") {
			prefix := strings.TrimSuffix(entry, "*")
			if strings.HasPrefix(contentType, prefix) {
				return true
			}
		} else if strings.EqualFold(entry, contentType) {
			return true
		}
	}
	return false
}

// FormatFileSize returns a human readable file size for emails and logs
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
