package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nas5gs/pkg/nas"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
decode:
  decipher_as_plain: true
  user_data: ipv4
  max_depth: 4
output:
  format: json-indent
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	policy := cfg.Decode.Policy()
	assert.True(t, policy.DecipherAsPlain)
	assert.Equal(t, nas.UserDataIPv4, policy.UserData)
	assert.Equal(t, 4, policy.MaxDepth)
	assert.Equal(t, "json-indent", cfg.Output.Format)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `{}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	policy := cfg.Decode.Policy()
	assert.False(t, policy.DecipherAsPlain)
	assert.Equal(t, nas.UserDataNone, policy.UserData)
	assert.Equal(t, 0, policy.MaxDepth)
}

func TestValidateRejectsBadValues(t *testing.T) {
	_, err := Load(writeConfig(t, "decode:\n  user_data: bogus\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_data")

	_, err = Load(writeConfig(t, "output:\n  format: xml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")

	_, err = Load(writeConfig(t, "decode:\n  max_depth: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
