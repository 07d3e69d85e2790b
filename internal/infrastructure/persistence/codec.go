// Package persistence moves store snapshots to and from a durable slot.
package persistence

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/supercash/backoffice/internal/core/domain"
)

const envelopeVersion = 1

// envelope is the slot payload layout. Version 0 without checksum is the
// layout written by the browser build of the backoffice and is still accepted.
type envelope struct {
	Version  int             `json:"version"`
	Checksum string          `json:"checksum,omitempty"`
	State    json.RawMessage `json:"state"`
}

// Encode serializes a snapshot into a checksummed envelope.
func Encode(s domain.Snapshot) ([]byte, error) {
	state, err := json.Marshal(s.Normalize())
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	payload, err := json.Marshal(envelope{
		Version:  envelopeVersion,
		Checksum: checksum(state),
		State:    state,
	})
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return payload, nil
}

// Decode parses a payload written by Encode. Any mismatch is ErrSnapshotCorrupt.
func Decode(payload []byte) (domain.Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	if len(bytes.TrimSpace(env.State)) == 0 {
		return domain.Snapshot{}, fmt.Errorf("%w: missing state", domain.ErrSnapshotCorrupt)
	}

	switch {
	case env.Version == envelopeVersion:
		if env.Checksum != checksum(env.State) {
			return domain.Snapshot{}, fmt.Errorf("%w: checksum mismatch", domain.ErrSnapshotCorrupt)
		}
	case env.Version == 0 && env.Checksum == "":
	default:
		return domain.Snapshot{}, fmt.Errorf("%w: unsupported version %d", domain.ErrSnapshotCorrupt, env.Version)
	}

	var s domain.Snapshot
	if err := json.Unmarshal(env.State, &s); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	return s.Normalize(), nil
}

func checksum(state []byte) string {
	sum := blake2b.Sum256(state)
	return hex.EncodeToString(sum[:])
}
