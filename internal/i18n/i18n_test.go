package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations_DefaultMessages(t *testing.T) {
	trans, err := NewTranslations("en", "locales")
	require.NoError(t, err)

	msg := trans.GetMessage("summary.header", 0, nil)
	assert.Equal(t, "🤖 Code Review Summary:", msg)
}

func TestTranslations_Plurals(t *testing.T) {
	trans, err := NewTranslations("en", "locales")
	require.NoError(t, err)

	one := trans.GetMessage("summary.reviewed_files", 1, map[string]interface{}{"Count": 1})
	many := trans.GetMessage("summary.reviewed_files", 3, map[string]interface{}{"Count": 3})

	assert.Equal(t, "Reviewed 1 file:", one)
	assert.Equal(t, "Reviewed 3 files:", many)
}

func TestTranslations_SpanishLocale(t *testing.T) {
	trans, err := NewTranslations("es", "locales")
	require.NoError(t, err)

	msg := trans.GetMessage("summary.header", 0, nil)
	assert.Equal(t, "🤖 Resumen de la revisión:", msg)
}

func TestSetLanguage_Unsupported(t *testing.T) {
	trans, err := NewTranslations("en", "locales")
	require.NoError(t, err)

	assert.Error(t, trans.SetLanguage("fr"))
	assert.NoError(t, trans.SetLanguage("es"))
}

func TestGetMessage_Missing(t *testing.T) {
	trans, err := NewTranslations("en", "locales")
	require.NoError(t, err)

	msg := trans.GetMessage("no_such_key", 0, nil)
	assert.Contains(t, msg, "Translation missing")
}
