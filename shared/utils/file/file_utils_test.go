package file

import (
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStorageKey(t *testing.T) {
	before := time.Now().UnixMilli()
	key := GenerateStorageKey("logo.png")
	after := time.Now().UnixMilli()

	parts := strings.SplitN(key, "-", 2)
	require.Len(t, parts, 2)

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
	assert.LessOrEqual(t, millis, after)
	assert.Equal(t, "logo.png", parts[1])
}

func TestGenerateStorageKeySanitizesName(t *testing.T) {
	key := GenerateStorageKey("my file #1.png")
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "#")
	assert.True(t, strings.HasSuffix(key, "my_file_1.png"))
}

func TestSanitizeFileNameStripsPath(t *testing.T) {
	assert.Equal(t, "passwd", SanitizeFileName("../../etc/passwd"))
	assert.Equal(t, "report.pdf", SanitizeFileName("/tmp/report.pdf"))
}

func TestOriginalNameFromKey(t *testing.T) {
	assert.Equal(t, "banner.pdf", OriginalNameFromKey("1756400000000-banner.pdf"))
	// names containing dashes keep everything after the first one
	assert.Equal(t, "a-b-c.png", OriginalNameFromKey("1756400000000-a-b-c.png"))
	// keys without a prefix come back unchanged
	assert.Equal(t, "plain.png", OriginalNameFromKey("plain.png"))
}

func newFileHeader(name string, size int64, contentType string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   header,
	}
}

func TestValidateUploadedFile(t *testing.T) {
	assert.NoError(t, ValidateUploadedFile(newFileHeader("photo.jpg", 1024, "image/jpeg")))
}

func TestValidateUploadedFileRejectsEmpty(t *testing.T) {
	err := ValidateUploadedFile(newFileHeader("empty.jpg", 0, "image/jpeg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestValidateUploadedFileRejectsOversized(t *testing.T) {
	err := ValidateUploadedFile(newFileHeader("huge.bin", 500*1024*1024, "application/octet-stream"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestIsAllowedType(t *testing.T) {
	allowed := []string{"image/*", "application/pdf"}

	assert.True(t, isAllowedType("image/png", allowed))
	assert.True(t, isAllowedType("image/jpeg", allowed))
	assert.True(t, isAllowedType("application/pdf", allowed))
	assert.False(t, isAllowedType("video/mp4", allowed))

	// empty allow list admits everything
	assert.True(t, isAllowedType("video/mp4", nil))
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{int64(2.5 * 1024 * 1024 * 1024), "2.5 GB"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.size))
		})
	}
}
