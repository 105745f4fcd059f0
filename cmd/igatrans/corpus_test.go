package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojonugwa/igatrans/internal/testutil"
)

func TestNewCorpusCommand(t *testing.T) {
	cmd := newCorpusCommand()

	assert.Equal(t, "corpus", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewCorpusTagCommand(t *testing.T) {
	cmd := newCorpusTagCommand()

	assert.Equal(t, "tag [input.csv] [output.csv]", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestCorpusTagCommand_RequiresBaseURL(t *testing.T) {
	tmpDir := t.TempDir()
	configFile = testutil.SetupTestConfig(t, tmpDir)
	defer func() { configFile = "" }()

	input := filepath.Join(tmpDir, "dictionary.csv")
	cmd := newCorpusTagCommand()
	cmd.SetArgs([]string{input, filepath.Join(tmpDir, "tagged.csv")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAGGER_BASE_URL")
}

func TestCorpusSyntheticCommand_Run(t *testing.T) {
	tmpDir := t.TempDir()
	corpusPath := testutil.WriteCorpusCSV(t, tmpDir, `English,Igala,POS
black,édúdú,JJ
stone,òkwúta,NN
eat,jẹ,VB
`)
	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath,
		[]byte("corpus:\n  file: "+corpusPath+"\n"), 0644))
	configFile = configPath
	defer func() { configFile = "" }()

	outputPath := filepath.Join(tmpDir, "phrases.yml")
	cmd := newCorpusSyntheticCommand()
	cmd.SetArgs([]string{"--count", "3", "--seed", "42", "--output", outputPath})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "jẹ")
}

func TestCorpusSyntheticCommand_MissingTags(t *testing.T) {
	tmpDir := t.TempDir()
	configFile = testutil.SetupTestConfig(t, tmpDir)
	defer func() { configFile = "" }()

	// the default fixture has no part-of-speech tags
	cmd := newCorpusSyntheticCommand()
	cmd.SetArgs([]string{"--count", "3", "--seed", "42"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no phrases generated")
}
