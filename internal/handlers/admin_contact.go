package handlers

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type ContactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ContactPriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type ContactNoteRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

func validateContactStatus(status string) error {
	if !models.IsOneOf(status, models.ContactStatuses) {
		return fmt.Errorf("invalid status: %s", status)
	}
	return nil
}

func validateContactPriority(priority string) error {
	if !models.IsOneOf(priority, models.ContactPriorities) {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	return nil
}

func buildContactNote(content string, now time.Time) (models.ContactNote, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return models.ContactNote{}, fmt.Errorf("content is required")
	}
	return models.ContactNote{
		Content: trimmed,
		AddedAt: now,
		AddedBy: "admin",
	}, nil
}

/*
GET /api/admin/contacts
- search across name/email/message/projectType, optional status filter
*/
func GetContacts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/contacts"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		filter := bson.M{}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			pattern := regexp.QuoteMeta(search)
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": pattern, "$options": "i"}},
				{"email": bson.M{"$regex": pattern, "$options": "i"}},
				{"message": bson.M{"$regex": pattern, "$options": "i"}},
				{"projectType": bson.M{"$regex": pattern, "$options": "i"}},
			}
		}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			if err := validateContactStatus(status); err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			filter["status"] = status
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("contacts").CountDocuments(ctx, filter)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		opts := options.Find().
			SetSkip((page - 1) * limit).
			SetLimit(limit).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("contacts").Find(ctx, filter, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		contacts := make([]models.Contact, 0)
		if err := cursor.All(ctx, &contacts); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, listEnvelope(contacts, total, page, limit))
	}
}

/*
GET /api/admin/contacts/:id
*/
func GetContact(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/contacts/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var contact models.Contact
		err = db.Collection("contacts").FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "contact not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, contact)
	}
}

/*
DELETE /api/admin/contacts/:id
*/
func DeleteContact(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/admin/contacts/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("contacts").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "contact not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Contact submission removed"})
	}
}

/*
PUT /api/admin/contacts/:id/status
*/
func UpdateContactStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/contacts/:id/status"
		defer handlePanic(c, route)

		var req ContactStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorMessage(err))
			return
		}
		if err := validateContactStatus(req.Status); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		updateContactField(c, db, route, bson.M{"status": req.Status})
	}
}

/*
PUT /api/admin/contacts/:id/priority
*/
func UpdateContactPriority(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/contacts/:id/priority"
		defer handlePanic(c, route)

		var req ContactPriorityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorMessage(err))
			return
		}
		if err := validateContactPriority(req.Priority); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		updateContactField(c, db, route, bson.M{"priority": req.Priority})
	}
}

func updateContactField(c *gin.Context, db *mongo.Database, route string, fields bson.M) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, route, "invalid id")
		return
	}

	fields["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var updated models.Contact
	err = db.Collection("contacts").FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)

	if err == mongo.ErrNoDocuments {
		respondWithError(c, http.StatusNotFound, route, "contact not found")
		return
	}
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, route, "db error")
		return
	}

	c.JSON(http.StatusOK, updated)
}

/*
POST /api/admin/contacts/:id/notes
*/
func AddContactNote(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/contacts/:id/notes"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req ContactNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorMessage(err))
			return
		}

		note, err := buildContactNote(req.Content, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var updated models.Contact
		err = db.Collection("contacts").FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{
				"$push": bson.M{"notes": note},
				"$set":  bson.M{"updatedAt": note.AddedAt},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)

		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "contact not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
