package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type ProjectCreateRequest struct {
	Title       string   `json:"title" binding:"required,max=100"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required,max=500"`
	TechStack   []string `json:"techStack"`
	Price       string   `json:"price" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	Features    []string `json:"features"`
	Status      string   `json:"status"`
	Difficulty  string   `json:"difficulty"`
	Duration    string   `json:"duration"`
	GithubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
	Tags        []string `json:"tags"`
}

type ProjectUpdateRequest struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	TechStack   *[]string `json:"techStack"`
	Price       *string   `json:"price"`
	Image       *string   `json:"image"`
	Features    *[]string `json:"features"`
	Status      *string   `json:"status"`
	Difficulty  *string   `json:"difficulty"`
	Duration    *string   `json:"duration"`
	GithubURL   *string   `json:"githubUrl"`
	LiveURL     *string   `json:"liveUrl"`
	Tags        *[]string `json:"tags"`
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeTags(values []string) []string {
	out := trimAll(values)
	for i, v := range out {
		out[i] = strings.ToLower(v)
	}
	return out
}

func buildProject(req ProjectCreateRequest, now time.Time) (models.Project, error) {
	category := strings.TrimSpace(req.Category)
	if !models.IsOneOf(category, models.ProjectCategories) {
		return models.Project{}, fmt.Errorf("invalid category: %s", category)
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = "active"
	} else if !models.IsOneOf(status, models.ProjectStatuses) {
		return models.Project{}, fmt.Errorf("invalid status: %s", status)
	}

	difficulty := strings.TrimSpace(req.Difficulty)
	if difficulty == "" {
		difficulty = "intermediate"
	} else if !models.IsOneOf(difficulty, models.ProjectDifficulties) {
		return models.Project{}, fmt.Errorf("invalid difficulty: %s", difficulty)
	}

	return models.Project{
		Title:       strings.TrimSpace(req.Title),
		Category:    category,
		Description: strings.TrimSpace(req.Description),
		TechStack:   trimAll(req.TechStack),
		Price:       strings.TrimSpace(req.Price),
		Image:       strings.TrimSpace(req.Image),
		Features:    trimAll(req.Features),
		Status:      status,
		Difficulty:  difficulty,
		Duration:    strings.TrimSpace(req.Duration),
		GithubURL:   strings.TrimSpace(req.GithubURL),
		LiveURL:     strings.TrimSpace(req.LiveURL),
		Tags:        normalizeTags(req.Tags),
		Views:       0,
		Likes:       0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// buildProjectUpdate turns set pointer fields into a $set document.
// Views and likes are deliberately absent: counters move only through the
// dedicated increment endpoints.
func buildProjectUpdate(req ProjectUpdateRequest, now time.Time) (bson.M, error) {
	update := bson.M{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("title cannot be empty")
		}
		update["title"] = title
	}
	if req.Category != nil {
		if !models.IsOneOf(*req.Category, models.ProjectCategories) {
			return nil, fmt.Errorf("invalid category: %s", *req.Category)
		}
		update["category"] = *req.Category
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, fmt.Errorf("description cannot be empty")
		}
		update["description"] = description
	}
	if req.TechStack != nil {
		update["techStack"] = trimAll(*req.TechStack)
	}
	if req.Price != nil {
		update["price"] = strings.TrimSpace(*req.Price)
	}
	if req.Image != nil {
		update["image"] = strings.TrimSpace(*req.Image)
	}
	if req.Features != nil {
		update["features"] = trimAll(*req.Features)
	}
	if req.Status != nil {
		if !models.IsOneOf(*req.Status, models.ProjectStatuses) {
			return nil, fmt.Errorf("invalid status: %s", *req.Status)
		}
		update["status"] = *req.Status
	}
	if req.Difficulty != nil {
		if !models.IsOneOf(*req.Difficulty, models.ProjectDifficulties) {
			return nil, fmt.Errorf("invalid difficulty: %s", *req.Difficulty)
		}
		update["difficulty"] = *req.Difficulty
	}
	if req.Duration != nil {
		update["duration"] = strings.TrimSpace(*req.Duration)
	}
	if req.GithubURL != nil {
		update["githubUrl"] = strings.TrimSpace(*req.GithubURL)
	}
	if req.LiveURL != nil {
		update["liveUrl"] = strings.TrimSpace(*req.LiveURL)
	}
	if req.Tags != nil {
		update["tags"] = normalizeTags(*req.Tags)
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	update["updatedAt"] = now
	return update, nil
}

/*
POST /api/admin/projects
*/
func CreateProject(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/projects"
		defer handlePanic(c, route)

		var req ProjectCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorMessage(err))
			return
		}

		project, err := buildProject(req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("projects").InsertOne(ctx, project)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		project.ID = res.InsertedID.(primitive.ObjectID)
		c.JSON(http.StatusCreated, project)
	}
}

/*
GET /api/admin/projects/:id
*/
func GetProject(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/projects/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var project models.Project
		err = db.Collection("projects").FindOne(ctx, bson.M{"_id": id}).Decode(&project)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "project not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

/*
PUT /api/admin/projects/:id
- partial update with merge semantics, returns the updated document
*/
func UpdateProject(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/projects/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req ProjectUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		update, err := buildProjectUpdate(req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var updated models.Project
		err = db.Collection("projects").FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)

		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "project not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /api/admin/projects/:id
*/
func DeleteProject(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/admin/projects/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("projects").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "project not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Project removed"})
	}
}
