package github

import (
	"os"
	"path/filepath"
	"testing"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEvent(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPRNumberFromEvent(t *testing.T) {
	t.Run("pull_request event has top level number", func(t *testing.T) {
		path := writeEvent(t, `{"number": 42, "pull_request": {"number": 42}}`)
		number, err := PRNumberFromEvent(path)
		require.NoError(t, err)
		assert.Equal(t, 42, number)
	})

	t.Run("nested pull_request number as fallback", func(t *testing.T) {
		path := writeEvent(t, `{"pull_request": {"number": 13}}`)
		number, err := PRNumberFromEvent(path)
		require.NoError(t, err)
		assert.Equal(t, 13, number)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := PRNumberFromEvent("")
		var payloadErr *domainerrors.EventPayloadError
		assert.ErrorAs(t, err, &payloadErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := PRNumberFromEvent("/no/such/event.json")
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeEvent(t, `{"number": `)
		_, err := PRNumberFromEvent(path)
		assert.Error(t, err)
	})

	t.Run("payload without pr number", func(t *testing.T) {
		path := writeEvent(t, `{"action": "push"}`)
		_, err := PRNumberFromEvent(path)
		assert.ErrorContains(t, err, "número de PR")
	})
}
