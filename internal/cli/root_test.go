package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "moodbite", cmd.Use)
	assert.Contains(t, cmd.Long, "restaurant")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{
		"seed", "invoke", "login", "logout", "menu",
		"order", "orders", "stats", "recommend", "suggest", "chat", "logs",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestInvokeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	invokeCmd, _, err := cmd.Find([]string{"invoke"})
	require.NoError(t, err)

	payloadFlag := invokeCmd.Flags().Lookup("payload")
	require.NotNil(t, payloadFlag)
	assert.Equal(t, "{}", payloadFlag.DefValue)
}

func TestOrderCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	orderCmd, _, err := cmd.Find([]string{"order"})
	require.NoError(t, err)

	require.NotNil(t, orderCmd.Flags().Lookup("total"))
	require.NotNil(t, orderCmd.Flags().Lookup("gst"))

	paymentFlag := orderCmd.Flags().Lookup("payment")
	require.NotNil(t, paymentFlag)
	assert.Equal(t, "Cash", paymentFlag.DefValue)
}

func TestLogsCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	logsCmd, _, err := cmd.Find([]string{"logs"})
	require.NoError(t, err)

	tailFlag := logsCmd.Flags().Lookup("tail")
	require.NotNil(t, tailFlag)
	assert.Equal(t, "0", tailFlag.DefValue)
}

func TestSeedCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	seedCmd, _, err := cmd.Find([]string{"seed"})
	require.NoError(t, err)

	usersFlag := seedCmd.Flags().Lookup("users")
	require.NotNil(t, usersFlag)
	assert.Equal(t, "", usersFlag.DefValue)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "invalid", "menu"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

// executeCommand runs the CLI against a temp database and returns
// stdout, stderr, and the execution error.
func executeCommand(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--db", dbPath}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "moodbite.db")
}

func TestEndToEnd_SeedLoginOrder(t *testing.T) {
	db := testDBPath(t)

	stdout, _, err := executeCommand(t, db, "seed")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Database seeded with 2 users.")

	stdout, _, err = executeCommand(t, db, "login", "alex@example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as Alex")

	stdout, _, err = executeCommand(t, db, "order", "Dragon Fire wings",
		"--total", "18.88", "--gst", "2.88", "--payment", "Credit Card")
	require.NoError(t, err)
	assert.Contains(t, stdout, "confirmed. Total: $18.88")

	stdout, _, err = executeCommand(t, db, "orders")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dragon Fire wings")
}

func TestEndToEnd_LoginRejected(t *testing.T) {
	db := testDBPath(t)

	_, _, err := executeCommand(t, db, "seed")
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, db, "login", "nobody@example.com")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Invalid credentials")
}

func TestEndToEnd_InvokeUnknownRoute(t *testing.T) {
	db := testDBPath(t)

	stdout, _, err := executeCommand(t, db, "invoke", "GET", "/api/nope")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "UNKNOWN_ROUTE")
}

func TestEndToEnd_MenuJSON(t *testing.T) {
	db := testDBPath(t)

	stdout, _, err := executeCommand(t, db, "--format", "json", "menu")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status":"ok"`)
	assert.Contains(t, stdout, "Truffle Mushroom Risotto")
}

func TestEndToEnd_VerboseStreamsActivity(t *testing.T) {
	db := testDBPath(t)

	_, stderr, err := executeCommand(t, db, "--verbose", "menu")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Virtual server initialized. Ready for requests.")
	assert.Contains(t, stderr, "GET request to /api/menu...")
}

func TestEndToEnd_Logs(t *testing.T) {
	db := testDBPath(t)

	stdout, _, err := executeCommand(t, db, "logs")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Virtual server initialized. Ready for requests.")
}

func TestEndToEnd_LogsJSON(t *testing.T) {
	db := testDBPath(t)

	stdout, _, err := executeCommand(t, db, "--format", "json", "logs")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status":"ok"`)
	assert.Contains(t, stdout, "Virtual server initialized. Ready for requests.")
}

func TestEndToEnd_ChatCanned(t *testing.T) {
	db := testDBPath(t)

	stdout, _, err := executeCommand(t, db, "chat", "hello")
	require.NoError(t, err)
	assert.True(t, strings.TrimSpace(stdout) != "")
}
