package review

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeEvent(t *testing.T, path, payload string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
}
