/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: JSON run reports. Each run gets a uuid, and its report is written to
a per-operation subdirectory with a timestamped file name so runs never collide.
*/

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/shiftcipher/pkg/analysis"
	"github.com/kleascm/shiftcipher/pkg/cipher"
)

// Report describes one invocation of the tool
type Report struct {
	RunID        string              `json:"run_id"`
	Operation    string              `json:"operation"`
	Key          *int                `json:"key,omitempty"`
	KeyRecovered bool                `json:"key_recovered"`
	Method       analysis.Method     `json:"method,omitempty"`
	Letters      int                 `json:"letters"`
	InputLength  int                 `json:"input_length"`
	Outputs      []string            `json:"outputs"`
	Candidates   []analysis.KeyScore `json:"candidates,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// New starts a report for operation on input with a fresh run ID
func New(operation string, input string) *Report {
	return &Report{
		RunID:       uuid.New().String(),
		Operation:   operation,
		Letters:     analysis.Observe(input).Letters,
		InputLength: len(cipher.Line(input)),
		Outputs:     []string{},
		CreatedAt:   time.Now(),
	}
}

// SetKey records the key that was used or recovered
func (r *Report) SetKey(key int, recovered bool) {
	r.Key = &key
	r.KeyRecovered = recovered
}

// AddOutput records one output line
func (r *Report) AddOutput(line string) {
	r.Outputs = append(r.Outputs, line)
}

// Write stores the report under dir/<operation>/ and returns the file path
func Write(dir string, r *Report) (string, error) {
	reportDir := filepath.Join(dir, r.Operation)
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// 2024-06-11_01-30-00_decrypt_1b4e28ba.json
	timestamp := r.CreatedAt.Format("2006-01-02_15-04-05")
	short := r.RunID
	if len(short) > 8 {
		short = short[:8]
	}
	path := filepath.Join(reportDir, fmt.Sprintf("%s_%s_%s.json", timestamp, r.Operation, short))

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return path, nil
}
