package corpus

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Entry
		wantErr bool
	}{
		{
			name:  "header with english and igala columns",
			input: "English,Igala\nhello,sannu\nworld,aiye\n",
			want: []Entry{
				{English: "hello", Igala: "sannu"},
				{English: "world", Igala: "aiye"},
			},
		},
		{
			name:  "pos column is carried through",
			input: "English,Igala,POS\nstone,òkwúta,NN\neat,jẹ,VB\n",
			want: []Entry{
				{English: "stone", Igala: "òkwúta", PartOfSpeech: "NN"},
				{English: "eat", Igala: "jẹ", PartOfSpeech: "VB"},
			},
		},
		{
			name:  "column order and header casing do not matter",
			input: "igala,english\nsannu,hello\n",
			want: []Entry{
				{English: "hello", Igala: "sannu"},
			},
		},
		{
			name:  "short rows are skipped",
			input: "English,Igala\nhello\nworld,aiye\n",
			want: []Entry{
				{English: "world", Igala: "aiye"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:    "missing required column",
			input:   "English,French\nhello,bonjour\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Entry{
		{English: "hello", Igala: "sannu", PartOfSpeech: "UH"},
		{English: "world", Igala: "aiye"},
	})
	require.NoError(t, err)

	assert.Equal(t, "English,Igala,POS\nhello,sannu,UH\nworld,aiye,\n", buf.String())
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("csv file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "corpus.csv")
		require.NoError(t, os.WriteFile(path, []byte("English,Igala\nhello,sannu\n"), 0644))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []Entry{{English: "hello", Igala: "sannu"}}, got)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "corpus.yml")
		contents := "- english: hello\n  igala: sannu\n- english: eat\n  igala: jẹ\n  pos: VB\n"
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{English: "hello", Igala: "sannu"},
			{English: "eat", Igala: "jẹ", PartOfSpeech: "VB"},
		}, got)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(tmpDir, "corpus.txt"))
		assert.Error(t, err)
	})
}

func TestPairs(t *testing.T) {
	pairs := Pairs([]Entry{
		{English: "hello", Igala: "sannu", PartOfSpeech: "UH"},
	})
	require.Len(t, pairs, 1)
	assert.Equal(t, "hello", pairs[0].English)
	assert.Equal(t, "sannu", pairs[0].Igala)
}
