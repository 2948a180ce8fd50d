package constants

// Outcome is the terminal state of one document in an ingestion run.
type Outcome string

// Stable values (store these exact strings in logs and run results).
const (
	OutcomeProcessed Outcome = "PROCESSED" // at least one record created or updated
	OutcomeDuplicate Outcome = "DUPLICATE" // same content already ingested, or nothing new
	OutcomeError     Outcome = "ERROR"     // unreadable, unparseable, or no valid records
)
