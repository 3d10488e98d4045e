package types

// SearchRecord is the unit stored in the search index. The ID is generated
// fresh for every ingestion, never derived from the document, so re-uploading
// the same file creates a second record.
type SearchRecord struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// IngestionRecord is the audit entry persisted after a fully successful
// pipeline run.
type IngestionRecord struct {
	ID        string `json:"id" bson:"_id"`
	Filename  string `json:"filename" bson:"filename"`
	ObjectKey string `json:"object_key" bson:"object_key"`
	Summary   string `json:"summary" bson:"summary"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
}
