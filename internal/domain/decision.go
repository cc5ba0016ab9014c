package domain

import (
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DecisionSource records how a classification was reached.
type DecisionSource string

const (
	// SourceComputed means a list file was found and searched.
	SourceComputed DecisionSource = "computed"
	// SourceAbsent means no list file existed in either candidate directory.
	SourceAbsent DecisionSource = "absent"
	// SourceOverride means the answer was forced by the caller.
	SourceOverride DecisionSource = "override"
)

// Decision is a single development-machine classification.
type Decision struct {
	ID          int64          `json:"id,omitempty" yaml:"id,omitempty"`
	MachineName string         `json:"machine_name" yaml:"machine_name"`
	ListFile    string         `json:"list_file" yaml:"list_file"`
	ListPath    string         `json:"list_path,omitempty" yaml:"list_path,omitempty"`
	Source      DecisionSource `json:"source" yaml:"source"`
	Development bool           `json:"development" yaml:"development"`
	Digest      string         `json:"digest,omitempty" yaml:"digest,omitempty"` // of the list contents
	DecidedAt   time.Time      `json:"decided_at" yaml:"decided_at"`
}

// Classification returns the human-readable answer.
func (d Decision) Classification() string {
	if d.Development {
		return "development"
	}
	return "non-development"
}

// DigestLines returns the hex blake2b-256 digest of lines joined by newlines.
func DigestLines(lines []string) string {
	sum := blake2b.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])
}
