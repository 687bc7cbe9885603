package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHookSimulate(t *testing.T, eventJSON string, extraArgs ...string) map[string]any {
	t.Helper()

	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(eventJSON), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"hook", "simulate", "--event", path}, extraArgs...))
	require.NoError(t, rootCmd.Execute())

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	return result
}

func TestHookSimulate(t *testing.T) {
	t.Run("approved member", func(t *testing.T) {
		result := runHookSimulate(t, `{
			"userPoolId": "pool",
			"request": {"userAttributes": {"sub": "abc", "custom:isMemberOf": "[\"SG_A\",\"SG_B\"]"}},
			"response": {}
		}`, "--security-group", "SG_A", "--group", "chatbot_user")

		assert.Equal(t, true, result["approved"])
		assert.Equal(t, map[string]any{"username": "abc", "groupName": "chatbot_user", "userPoolId": "pool"}, result["directoryCall"])

		event := result["event"].(map[string]any)
		assert.Equal(t, "CONFIRMED", event["response"].(map[string]any)["finalUserStatus"])
	})

	t.Run("non member", func(t *testing.T) {
		result := runHookSimulate(t, `{
			"userPoolId": "pool",
			"request": {"userAttributes": {"sub": "abc", "custom:isMemberOf": "SG_C"}}
		}`, "--security-group", "SG_A")

		assert.Equal(t, false, result["approved"])
		assert.Nil(t, result["directoryCall"])
	})
}
