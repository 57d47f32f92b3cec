package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants keep the queue producer and consumer in sync.
const (
	TypePreviewGenerate = "preview:generate"
)

// PreviewGeneratePayload is the minimal information needed to render a
// resume preview image.
type PreviewGeneratePayload struct {
	ResumeID      uint   `json:"resume_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewPreviewGenerateTask builds a preview generation task for the resume.
func NewPreviewGenerateTask(id uint, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PreviewGeneratePayload{
		ResumeID:      id,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePreviewGenerate, payload), nil
}
