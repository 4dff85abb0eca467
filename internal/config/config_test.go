package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 2*time.Second, cfg.Forms.ContactDelay)
	assert.Equal(t, 1*time.Second, cfg.Forms.NewsletterDelay)
	assert.Equal(t, 3*time.Second, cfg.Forms.ResumeDelay)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().DataPath, cfg.DataPath)
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "portfolio.yml")

	original := DefaultConfig()
	original.ServerAddr = ":9090"
	original.Forms.ContactDelay = 500 * time.Millisecond
	original.Log.Format = "json"
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", loaded.ServerAddr)
	assert.Equal(t, 500*time.Millisecond, loaded.Forms.ContactDelay)
	assert.Equal(t, "json", loaded.Log.Format)
}

func TestLoadYAMLDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	yml := "forms:\n  contact_delay: 250ms\nanalytics:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Forms.ContactDelay)
	assert.Equal(t, time.Second, cfg.Forms.NewsletterDelay)
	assert.False(t, cfg.Analytics.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_ADDR", ":7070")
	t.Setenv("PORTFOLIO_FORMS__RESUME_DELAY", "10ms")
	t.Setenv("PORTFOLIO_LOG__LEVEL", "debug")
	t.Setenv("PORTFOLIO_ANALYTICS__SALT", "pepper")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)
	assert.Equal(t, 10*time.Millisecond, cfg.Forms.ResumeDelay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "pepper", cfg.Analytics.Salt)
}

func TestLoadPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.ServerAddr)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Forms.ContactDelay = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.DatabasePath = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadContentFallsBackToBuiltIn(t *testing.T) {
	c, err := LoadContent(t.TempDir())
	require.NoError(t, err)
	assert.Len(t, c.Projects, 3)
	assert.NotEmpty(t, c.Profile.Name)
}

func TestLoadContentFromFile(t *testing.T) {
	dir := t.TempDir()
	data := `{"profile":{"name":"Sam"},"projects":[{"id":7,"title":"Only One","status":"Live"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ContentFile), []byte(data), 0644))

	c, err := LoadContent(dir)
	require.NoError(t, err)
	assert.Equal(t, "Sam", c.Profile.Name)
	require.Len(t, c.Projects, 1)
	assert.Equal(t, 7, c.Projects[0].ID)
}

func TestLoadContentRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ContentFile), []byte("{"), 0644))

	_, err := LoadContent(dir)
	assert.Error(t, err)
}
