package entry

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/maskfield/internal/cli"
	"github.com/thenoetrevino/maskfield/internal/models"
	testutilcli "github.com/thenoetrevino/maskfield/internal/testutil/cli"
)

func TestSaveCommand(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	tests := []struct {
		name      string
		args      []string
		wantCode  int
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "quiet prints ID",
			args: []string{"--preset", "phone", "555", "123", "4567", "--quiet"},
			checkFunc: func(t *testing.T, output string) {
				id, err := strconv.Atoi(strings.TrimSpace(output))
				require.NoError(t, err, "expected numeric entry ID, got %q", output)
				assert.Positive(t, id)
			},
		},
		{
			name: "json returns the stored entry",
			args: []string{"--preset", "plate", "abc1234", "--note", "rental", "--json"},
			checkFunc: func(t *testing.T, output string) {
				var envelope struct {
					Success bool         `json:"success"`
					Data    models.Entry `json:"data"`
				}
				require.NoError(t, json.Unmarshal([]byte(output), &envelope))
				assert.Equal(t, "ABC-1234", envelope.Data.DisplayText)
				assert.Equal(t, "rental", envelope.Data.Note)
				assert.True(t, envelope.Data.Complete)
			},
		},
		{
			name: "human",
			args: []string{"--preset", "time", "0915"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, ansi.Strip(output), "09:15")
			},
		},
		{
			name: "partial allowed",
			args: []string{"--preset", "date", "1231", "--allow-partial", "--json"},
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, `"display_text":"12/31/____"`)
				assert.Contains(t, output, `"complete":false`)
			},
		},
		{
			name:     "partial refused",
			args:     []string{"--preset", "date", "1231", "--json"},
			wantCode: cli.ExitValidation,
		},
		{
			name:     "unknown preset",
			args:     []string{"--preset", "nope", "1", "--json"},
			wantCode: cli.ExitNotFound,
		},
		{
			name:     "missing preset flag",
			args:     []string{"1"},
			wantCode: cli.ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutilcli.ExecuteCLICommand(t, app, SaveCmd(), tt.args)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, cli.ExitCode(err))
				return
			}
			require.NoError(t, err, "output: %s", output)
			tt.checkFunc(t, output)
		})
	}
}

func TestListCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)

	first := testutilcli.CreateTestEntry(t, db, "zip", "12345", "12345-____", false)
	second := testutilcli.CreateTestEntry(t, db, "time", "1200", "12:00", true)

	t.Run("quiet newest first", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{strconv.Itoa(second), strconv.Itoa(first)}, strings.Fields(output))
	})

	t.Run("filtered json", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--preset", "zip", "--json"})
		require.NoError(t, err)

		var envelope struct {
			Entries []models.Entry `json:"entries"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &envelope))
		require.Len(t, envelope.Entries, 1)
		assert.Equal(t, first, envelope.Entries[0].ID)
	})

	t.Run("human empty", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--preset", "mac"})
		require.NoError(t, err)
		assert.Contains(t, output, "No entries found")
	})
}

func TestShowCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	id := testutilcli.CreateTestEntry(t, db, "time", "1200", "12:00", true)

	output, err := testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{strconv.Itoa(id)})
	require.NoError(t, err)
	plain := ansi.Strip(output)
	assert.Contains(t, plain, "12:00")
	assert.Contains(t, plain, "complete")

	_, err = testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"999", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = testutilcli.ExecuteCLICommand(t, app, ShowCmd(), []string{"abc", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestDeleteCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)

	t.Run("cancelled without confirmation", func(t *testing.T) {
		id := testutilcli.CreateTestEntry(t, db, "zip", "1", "1____-____", false)

		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("n\n"))
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd, []string{strconv.Itoa(id)})
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")

		_, err = app.EntryService.GetEntry(t.Context(), id)
		assert.NoError(t, err)
	})

	t.Run("confirmed", func(t *testing.T) {
		id := testutilcli.CreateTestEntry(t, db, "zip", "2", "2____-____", false)

		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("yes\n"))
		output, err := testutilcli.ExecuteCLICommand(t, app, cmd, []string{strconv.Itoa(id)})
		require.NoError(t, err)
		assert.Contains(t, output, "deleted successfully")
	})

	t.Run("force json", func(t *testing.T) {
		id := testutilcli.CreateTestEntry(t, db, "zip", "3", "3____-____", false)

		output, err := testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{strconv.Itoa(id), "--force", "--json"})
		require.NoError(t, err)
		assert.Contains(t, output, `"success":true`)

		_, err = testutilcli.ExecuteCLICommand(t, app, DeleteCmd(), []string{strconv.Itoa(id), "--force", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}
