// Package testutil provides shared test helpers for config and corpus fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// DefaultCorpusCSV is the dictionary used by SetupTestConfig fixtures.
const DefaultCorpusCSV = `English,Igala
hello,sannu
world,aiye
water,omi
house,únyí
`

// SetupTestConfig creates a config file plus a small corpus CSV under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	corpusPath := WriteCorpusCSV(t, tmpDir, DefaultCorpusCSV)
	reportsDir := filepath.Join(tmpDir, "reports")
	require.NoError(t, os.MkdirAll(reportsDir, 0755))

	configContent := fmt.Sprintf(`corpus:
  file: %s
reports:
  directory: %s
server:
  port: 8080
`, corpusPath, reportsDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteCorpusCSV writes CSV content as a dictionary file and returns its path.
func WriteCorpusCSV(t *testing.T, tmpDir, content string) string {
	t.Helper()

	path := filepath.Join(tmpDir, "dictionary.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
