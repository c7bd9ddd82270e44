package constants

// ProcessingStatus is the canonical lifecycle for rows in regulation_documents.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ProcessingStatus = "pending"    // registered, not yet picked up
	StatusProcessing ProcessingStatus = "processing" // pipeline owns the document
	StatusCompleted  ProcessingStatus = "completed"  // terminal success
	StatusFailed     ProcessingStatus = "failed"     // terminal failure, extraction_error set
)

// DocumentStatuses holds the allowed values for the processing_status field.
var DocumentStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusFailed),
}
