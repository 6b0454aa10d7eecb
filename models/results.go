package models

// WriteResult mirrors the acknowledgement fields of a document store write.
type WriteResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	InsertedID    interface{} `json:"insertedId,omitempty"`
	MatchedCount  int64       `json:"matchedCount,omitempty"`
	ModifiedCount int64       `json:"modifiedCount,omitempty"`
	UpsertedCount int64       `json:"upsertedCount,omitempty"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
	DeletedCount  int64       `json:"deletedCount,omitempty"`
}
