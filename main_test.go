package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LianHaeming/weekplan/render"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--env-file", "-"))
	err := cmd.Execute()
	return out.String(), err
}

func TestPlanCommandJSON(t *testing.T) {
	out, err := runCmd(t, "plan", "--study", "2", "--health", "1", "--social", "1", "--format", "json", "--priority", "Work,Sleep")
	require.NoError(t, err)

	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Plan.Days, 7)
	assert.Equal(t, "Mon", doc.Plan.Days[0].Day)
	assert.Equal(t, 2.0, doc.Plan.Days[0].Study)
	assert.Equal(t, 3.0, doc.Plan.Days[5].Study)
	assert.Equal(t, 2.0, doc.Plan.Days[6].Social)
	assert.Equal(t, 1.0, doc.Plan.Days[6].Health)
	assert.Len(t, doc.Routine.Priorities, 2)
	assert.Empty(t, doc.Advice)
}

func TestPlanCommandClampsFlags(t *testing.T) {
	out, err := runCmd(t, "plan", "--study", "40", "--sleep", "0", "-o", "json")
	require.NoError(t, err)

	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 12.0, doc.Routine.Study)
	assert.Equal(t, 4.0, doc.Routine.Sleep)
	assert.Equal(t, 13.0, doc.Plan.Days[6].Study)
}

func TestPlanCommandTable(t *testing.T) {
	out, err := runCmd(t, "plan", "--advice")
	require.NoError(t, err)
	assert.Contains(t, out, "Study Hours")
	assert.Contains(t, out, "Sun")
}

func TestPlanCommandYAML(t *testing.T) {
	out, err := runCmd(t, "plan", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "days:")
	assert.Contains(t, out, "- day: Sat")
}

func TestPlanCommandBadFormat(t *testing.T) {
	_, err := runCmd(t, "plan", "--format", "csv")
	assert.ErrorContains(t, err, "unknown format")
}

func TestPlanCommandRejectsArgs(t *testing.T) {
	_, err := runCmd(t, "plan", "extra")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	l, err = newLogger(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
}

func TestAssetVersion(t *testing.T) {
	old := BuildVersion
	t.Cleanup(func() { BuildVersion = old })

	BuildVersion = "abc123"
	assert.Equal(t, "abc123", assetVersion())

	BuildVersion = ""
	assert.NotEmpty(t, assetVersion())
}
