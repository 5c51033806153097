package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetdesk-backend/shared/config"
)

func testTemplateService(t *testing.T) *TemplateService {
	t.Helper()

	dir := t.TempDir()
	ts := NewTemplateService(&config.Config{})
	ts.templateDir = dir

	content := `<html><body><p>Hi {{.FirstName}}, welcome aboard.</p></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.html"), []byte(content), 0644))

	return ts
}

func TestRenderTemplate(t *testing.T) {
	ts := testTemplateService(t)

	rendered, err := ts.RenderTemplate("welcome", map[string]interface{}{
		"FirstName": "Ada",
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "Hi Ada, welcome aboard.")
}

func TestRenderTemplateEscapesHTML(t *testing.T) {
	ts := testTemplateService(t)

	rendered, err := ts.RenderTemplate("welcome", map[string]interface{}{
		"FirstName": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, rendered, "<script>")
}

func TestRenderTemplateCaches(t *testing.T) {
	ts := testTemplateService(t)

	_, err := ts.RenderTemplate("welcome", map[string]interface{}{"FirstName": "Ada"})
	require.NoError(t, err)

	// Removing the file does not break rendering once cached
	require.NoError(t, os.Remove(filepath.Join(ts.templateDir, "welcome.html")))

	rendered, err := ts.RenderTemplate("welcome", map[string]interface{}{"FirstName": "Grace"})
	require.NoError(t, err)
	assert.Contains(t, rendered, "Grace")
}

func TestRenderTemplateMissingFile(t *testing.T) {
	ts := testTemplateService(t)

	_, err := ts.RenderTemplate("organization_invitation", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestGetTemplateFilename(t *testing.T) {
	ts := NewTemplateService(&config.Config{})

	assert.Equal(t, "welcome.html", ts.getTemplateFilename("welcome"))
	assert.Equal(t, "file_upload.html", ts.getTemplateFilename("file_upload"))
	assert.Equal(t, "organization_invitation.html", ts.getTemplateFilename("organization_invitation"))
	assert.Equal(t, "custom.html", ts.getTemplateFilename("custom"))
}

func TestClearCache(t *testing.T) {
	ts := testTemplateService(t)

	_, err := ts.RenderTemplate("welcome", map[string]interface{}{"FirstName": "Ada"})
	require.NoError(t, err)

	ts.ClearCache()
	require.NoError(t, os.Remove(filepath.Join(ts.templateDir, "welcome.html")))

	_, err = ts.RenderTemplate("welcome", map[string]interface{}{"FirstName": "Ada"})
	assert.Error(t, err)
}
