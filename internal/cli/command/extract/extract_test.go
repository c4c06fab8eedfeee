package extract

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func newTestCommand(t *testing.T) *cli.Command {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewExtractCommandFactory().CreateCommand(trans, nil)
}

func TestExtractCommand(t *testing.T) {
	t.Run("extracts from stdin", func(t *testing.T) {
		cmd := newTestCommand(t)
		var out bytes.Buffer
		root := &cli.Command{
			Commands: []*cli.Command{cmd},
			Reader:   strings.NewReader("feat: add dark mode\nrandom chatter\n- improve loading"),
			Writer:   &out,
		}

		err := root.Run(context.Background(), []string{"vidcommit", "extract"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "feat: add dark mode")
		assert.Contains(t, out.String(), "improve loading")
		assert.NotContains(t, out.String(), "random chatter")
	})

	t.Run("extracts from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "description.txt")
		require.NoError(t, os.WriteFile(path, []byte("fix: crash on startup\n1. refactor database"), 0644))

		cmd := newTestCommand(t)
		var out bytes.Buffer
		root := &cli.Command{
			Commands: []*cli.Command{cmd},
			Writer:   &out,
		}

		err := root.Run(context.Background(), []string{"vidcommit", "extract", "--file", path})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "fix: crash on startup")
		assert.Contains(t, out.String(), "refactor database")
	})

	t.Run("missing file fails", func(t *testing.T) {
		cmd := newTestCommand(t)
		root := &cli.Command{Commands: []*cli.Command{cmd}}

		err := root.Run(context.Background(), []string{"vidcommit", "extract", "--file", "/does/not/exist.txt"})

		assert.Error(t, err)
	})
}
