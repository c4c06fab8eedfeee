package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("english messages resolve", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("config.current", 0, nil)

		assert.Equal(t, "Current configuration", msg)
	})

	t.Run("spanish messages resolve", func(t *testing.T) {
		trans, err := NewTranslations("es", "")
		require.NoError(t, err)

		msg := trans.GetMessage("config.current", 0, nil)

		assert.Equal(t, "Configuración actual", msg)
	})

	t.Run("plural forms", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		one := trans.GetMessage("extract.found", 1, map[string]interface{}{"Count": 1})
		many := trans.GetMessage("extract.found", 4, map[string]interface{}{"Count": 4})

		assert.Equal(t, "1 commit extracted", one)
		assert.Equal(t, "4 commits extracted", many)
	})

	t.Run("missing message id falls back to marker", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		msg := trans.GetMessage("does.not.exist", 0, nil)

		assert.Contains(t, msg, "Translation missing")
	})
}

func TestSetLanguage(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	require.NoError(t, trans.SetLanguage("es"))
	assert.Equal(t, "Configuración actual", trans.GetMessage("config.current", 0, nil))

	assert.Error(t, trans.SetLanguage("fr"))
}
