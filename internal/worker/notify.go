package worker

// PreviewNotifyMessage is the websocket message pushed to the owner once a
// preview render settles. It travels through Redis Pub/Sub; field names
// match what the builder page parses.
type PreviewNotifyMessage struct {
	Status          string `json:"status"`
	ResumeID        uint   `json:"resume_id"`
	CorrelationID   string `json:"correlation_id"`
	PreviewImageURL string `json:"preview_image_url,omitempty"`
	ErrorCode       int    `json:"error_code"`
	ErrorMessage    string `json:"error_message"`
}
