package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDatasets(t *testing.T) {
	var buf bytes.Buffer
	listDatasets(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "* Maternal Health Risk Data Set.csv"))
	assert.True(t, strings.HasPrefix(lines[1], "  fetal_health.csv"))
	assert.Contains(t, lines[2], "smart_pregnancy_belt_dataset_100.csv")
}

func TestDatasetNames(t *testing.T) {
	assert.Equal(t, []string{
		"Maternal Health Risk Data Set.csv",
		"fetal_health.csv",
		"smart_pregnancy_belt_dataset_100.csv",
	}, datasetNames())
}

func TestOutputFile(t *testing.T) {
	w, closeOut, err := output("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	closeOut()

	path := filepath.Join(t.TempDir(), "report.txt")
	w, closeOut, err = output(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("ok"))
	require.NoError(t, err)
	closeOut()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))

	_, _, err = output(filepath.Join(t.TempDir(), "missing", "report.txt"))
	assert.Error(t, err)
}
