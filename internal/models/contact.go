package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ContactProjectTypes = []string{"mini", "major", "ieee", "web", "ai-ml", "data-science", "mobile-app", "custom"}
	ContactBudgets      = []string{"under-5k", "5k-10k", "10k-20k", "20k-50k", "above-50k", "discuss"}
	ContactTimelines    = []string{"urgent", "1-week", "2-weeks", "1-month", "flexible"}
	ContactStatuses     = []string{"new", "read", "replied", "in-progress", "completed", "archived"}
	ContactPriorities   = []string{"low", "medium", "high", "urgent"}
	ContactSources      = []string{"website", "whatsapp", "email", "referral", "social-media"}
)

// ContactNote is a single admin remark on an inquiry.
type ContactNote struct {
	Content string    `bson:"content" json:"content"`
	AddedAt time.Time `bson:"addedAt" json:"addedAt"`
	AddedBy string    `bson:"addedBy" json:"addedBy"`
}

type Contact struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProjectType  string             `bson:"projectType" json:"projectType"`
	Budget       string             `bson:"budget" json:"budget"`
	Timeline     string             `bson:"timeline" json:"timeline"`
	Message      string             `bson:"message,omitempty" json:"message,omitempty"`
	Status       string             `bson:"status" json:"status"`
	Priority     string             `bson:"priority" json:"priority"`
	Source       string             `bson:"source" json:"source"`
	IPAddress    string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent    string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Notes        []ContactNote      `bson:"notes" json:"notes"`
	FollowUpDate *time.Time         `bson:"followUpDate,omitempty" json:"followUpDate,omitempty"`
	IsSpam       bool               `bson:"isSpam" json:"isSpam"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
