package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`
database:
  driver: sqlite
  path: %s
  log_level: silent
  connect_retries: 1
log:
  level: error
jwt:
  secret_key: test-secret
auth:
  bcrypt_cost: 4
`, filepath.Join(dir, "conduit.db"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	return dir
}

func TestApp_Commands(t *testing.T) {
	app := newApp()

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "user", "stats", "version"}, names)
	require.NoError(t, app.Run([]string{"conduit-api", "version"}))
}

func TestApp_MigrateCreateUserAndStats(t *testing.T) {
	dir := writeConfig(t)

	require.NoError(t, newApp().Run([]string{"conduit-api", "-c", dir, "migrate"}))
	require.NoError(t, newApp().Run([]string{"conduit-api", "-c", dir, "user", "create",
		"-n", "ann", "-e", "ann@x.com", "-p", "pw123"}))
	require.NoError(t, newApp().Run([]string{"conduit-api", "-c", dir, "user", "list"}))
	require.NoError(t, newApp().Run([]string{"conduit-api", "-c", dir, "stats"}))

	err := newApp().Run([]string{"conduit-api", "-c", dir, "user", "create",
		"-n", "ann", "-e", "ann@x.com", "-p", "pw123"})
	assert.Error(t, err)
}

func TestApp_MissingSecret(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("database:\n  driver: sqlite\n"), 0o600))

	err := newApp().Run([]string{"conduit-api", "-c", dir, "migrate"})
	assert.Error(t, err)
}
