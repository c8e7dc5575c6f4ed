package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 5, c.Clients())

	domains, ok := c.AllowedDomains("CLIENTE_1")
	require.True(t, ok)
	assert.Contains(t, domains, "empresa1.com")
	assert.NotContains(t, domains, "empresa9.com")

	prefix, ok := c.ExpectedPrefix("corporacion2.com")
	require.True(t, ok)
	assert.Equal(t, "SMTP-CP2", prefix)

	_, ok = c.AllowedDomains("cliente_1")
	assert.False(t, ok, "client lookup is case sensitive")

	_, ok = c.ExpectedPrefix("unknown.com")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte(`
clients:
  ACME:
    - Acme.COM
    - acme.org
smtp_prefixes:
  acme.com: SMTP-A
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)

	domains, ok := c.AllowedDomains("ACME")
	require.True(t, ok)
	assert.Contains(t, domains, "acme.com")
	assert.Contains(t, domains, "acme.org")

	prefix, ok := c.ExpectedPrefix("acme.com")
	assert.True(t, ok)
	assert.Equal(t, "SMTP-A", prefix)

	_, ok = c.ExpectedPrefix("acme.org")
	assert.False(t, ok)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("clients: ["))
	assert.Error(t, err)

	_, err = Parse([]byte("smtp_prefixes:\n  a.com: X\n"))
	assert.EqualError(t, err, "catalog has no clients")
}
