package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/mailer"
	"backend/internal/models"
)

type ContactSubmitRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType" binding:"required"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Message     string `json:"message" binding:"max=1000"`
}

var phonePattern = regexp.MustCompile(`^[\+]?[1-9][\d]{0,15}$`)

// buildContact validates the submission and produces the document to
// persist. Status and source are always forced server-side; the request
// body cannot set workflow fields.
func buildContact(req ContactSubmitRequest, ip, userAgent string, now time.Time) (models.Contact, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		return models.Contact{}, fmt.Errorf("phone must be a valid phone number")
	}

	projectType := strings.TrimSpace(req.ProjectType)
	if !models.IsOneOf(projectType, models.ContactProjectTypes) {
		return models.Contact{}, fmt.Errorf("invalid projectType: %s", projectType)
	}

	budget := strings.TrimSpace(req.Budget)
	if budget == "" {
		budget = "discuss"
	} else if !models.IsOneOf(budget, models.ContactBudgets) {
		return models.Contact{}, fmt.Errorf("invalid budget: %s", budget)
	}

	timeline := strings.TrimSpace(req.Timeline)
	if timeline == "" {
		timeline = "flexible"
	} else if !models.IsOneOf(timeline, models.ContactTimelines) {
		return models.Contact{}, fmt.Errorf("invalid timeline: %s", timeline)
	}

	return models.Contact{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       phone,
		ProjectType: projectType,
		Budget:      budget,
		Timeline:    timeline,
		Message:     strings.TrimSpace(req.Message),
		Status:      "new",
		Priority:    "medium",
		Source:      "website",
		IPAddress:   ip,
		UserAgent:   userAgent,
		Notes:       []models.ContactNote{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

/*
POST /api/contact
- public submission; returns 201 regardless of email delivery outcome
*/
func SubmitContact(db *mongo.Database, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/contact"
		defer handlePanic(c, route)

		var req ContactSubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorMessage(err))
			return
		}

		contact, err := buildContact(req, c.ClientIP(), c.Request.UserAgent(), time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("contacts").InsertOne(ctx, contact)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		contact.ID = res.InsertedID.(primitive.ObjectID)

		if mail != nil {
			mail.SendContactEmails(contact)
		}

		log.Printf("[%s] inquiry stored id=%s type=%s", route, contact.ID.Hex(), contact.ProjectType)
		c.JSON(http.StatusCreated, gin.H{"message": "Contact form submitted successfully!"})
	}
}
