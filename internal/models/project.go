package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ProjectCategories   = []string{"AI/ML", "Web Development", "Data Science", "IoT", "Mobile App", "Other"}
	ProjectStatuses     = []string{"active", "inactive", "featured"}
	ProjectDifficulties = []string{"beginner", "intermediate", "advanced"}
)

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	TechStack   []string           `bson:"techStack" json:"techStack"`
	Price       string             `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Features    []string           `bson:"features" json:"features"`
	Status      string             `bson:"status" json:"status"`
	Difficulty  string             `bson:"difficulty" json:"difficulty"`
	Duration    string             `bson:"duration,omitempty" json:"duration,omitempty"`
	GithubURL   string             `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	LiveURL     string             `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	Tags        []string           `bson:"tags" json:"tags"`
	Views       int64              `bson:"views" json:"views"`
	Likes       int64              `bson:"likes" json:"likes"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsOneOf reports whether value is a member of the allowed enum list.
func IsOneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
