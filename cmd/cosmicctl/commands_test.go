package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return nil, err
	}
	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	return got, nil
}

func TestLifePathCommand(t *testing.T) {
	got, err := runCommand(t, "lifepath", "1990-03-25")
	require.NoError(t, err)
	require.Equal(t, float64(11), got["number"])
	require.Equal(t, true, got["isMaster"])
}

func TestPersonalYearCommand(t *testing.T) {
	got, err := runCommand(t, "personal-year", "03/25/1990", "--year", "2024")
	require.NoError(t, err)
	require.Equal(t, float64(9), got["number"])
	require.Equal(t, float64(2024), got["year"])
}

func TestNameCommandJoinsArgs(t *testing.T) {
	got, err := runCommand(t, "name", "John", "Smith")
	require.NoError(t, err)
	require.Equal(t, float64(8), got["expressionNumber"])
	require.Equal(t, "John Smith", got["fullName"])
	analysis, ok := got["analysis"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, analysis["overview"], "John, your name")
	require.Len(t, analysis["strengths"], 3)
}

func TestZodiacCommand(t *testing.T) {
	got, err := runCommand(t, "zodiac", "1990-12-22")
	require.NoError(t, err)
	require.Equal(t, "Capricorn", got["sign"])
}

func TestCompatCommand(t *testing.T) {
	got, err := runCommand(t, "compat", "Leo", "Aries")
	require.NoError(t, err)
	require.Equal(t, float64(95), got["score"])

	_, err = runCommand(t, "compat", "Leo")
	require.Error(t, err)
}

func TestDreamCommand(t *testing.T) {
	got, err := runCommand(t, "dream", "--demo")
	require.NoError(t, err)
	require.Len(t, got["symbols"], 3)

	_, err = runCommand(t, "dream")
	require.Error(t, err)
}
