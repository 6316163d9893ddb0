/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer_test.go
Description: Tests for JSON run report writing.
*/

package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kleascm/shiftcipher/pkg/analysis"
	"github.com/kleascm/shiftcipher/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewReport tests the fields filled in from the input
func TestNewReport(t *testing.T) {
	r := report.New("encrypt", "Hello, World\nsecond line")

	_, err := uuid.Parse(r.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "encrypt", r.Operation)
	assert.Equal(t, 10, r.Letters)
	assert.Equal(t, 12, r.InputLength)
	assert.Nil(t, r.Key)
	assert.Empty(t, r.Outputs)

	other := report.New("encrypt", "x")
	assert.NotEqual(t, r.RunID, other.RunID)
}

// TestWriteReport tests the file location and contents
func TestWriteReport(t *testing.T) {
	dir := t.TempDir()

	r := report.New("decrypt", "wkh txlfn eurzq ira")
	r.SetKey(3, true)
	r.Method = analysis.MethodCorrelation
	r.Candidates = []analysis.KeyScore{{Key: 3, Statistic: 0.06, Score: 0.005}}
	r.AddOutput("the quick brown fox")

	path, err := report.Write(dir, r)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "decrypt"), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_decrypt_"+r.RunID[:8]+".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r.RunID, got["run_id"])
	assert.Equal(t, "decrypt", got["operation"])
	assert.Equal(t, float64(3), got["key"])
	assert.Equal(t, true, got["key_recovered"])
	assert.Equal(t, "correlation", got["method"])
	assert.Equal(t, []interface{}{"the quick brown fox"}, got["outputs"])
	assert.Len(t, got["candidates"], 1)
}

// TestWriteReportWithoutKey tests that bruteforce reports omit the key
func TestWriteReportWithoutKey(t *testing.T) {
	r := report.New("bruteforce", "abc")
	path, err := report.Write(t.TempDir(), r)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"key":`)
	assert.Contains(t, string(data), `"key_recovered": false`)
}
