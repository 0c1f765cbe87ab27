package models

import "time"

// Feedback types accepted from the client.
const (
	FeedbackTypeGeneral     = "general"
	FeedbackTypeBug         = "bug"
	FeedbackTypeFeature     = "feature"
	FeedbackTypeSearchIssue = "search_issue"
)

// Feedback is a user-submitted report or suggestion. New submissions start in
// the "pending" status until an admin reviews them.
type Feedback struct {
	ID          string            `bson:"id" json:"id"`
	Type        string            `bson:"type" json:"type"`
	Message     string            `bson:"message" json:"message"`
	Email       string            `bson:"email,omitempty" json:"email,omitempty"`
	SearchQuery string            `bson:"searchQuery,omitempty" json:"searchQuery,omitempty"`
	ProviderID  string            `bson:"providerId,omitempty" json:"providerId,omitempty"`
	Status      string            `bson:"status" json:"status"`
	Metadata    map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
}
