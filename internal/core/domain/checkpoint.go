package domain

import (
	"errors"
	"time"
)

// CheckpointStatus is the on-course state of a participant at a checkpoint.
type CheckpointStatus string

const (
	CheckpointActive   CheckpointStatus = "active"
	CheckpointFinished CheckpointStatus = "finished"
	CheckpointDelayed  CheckpointStatus = "delayed"
	CheckpointDNF      CheckpointStatus = "DNF"
)

var ErrCheckpointNotFound = errors.New("checkpoint not found")

// ParticipantCheckpoint records a registered participant passing a checkpoint.
type ParticipantCheckpoint struct {
	ID                 int              `json:"id"`
	RegistrationID     int              `json:"registrationId"`
	CheckpointName     string           `json:"checkpointName"`
	CheckpointDistance *float64         `json:"checkpointDistance,omitempty"`
	Timestamp          time.Time        `json:"timestamp"`
	Status             CheckpointStatus `json:"status"`
}
