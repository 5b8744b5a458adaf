package handlers

import (
	"context"
	"fmt"
	"log"
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

type PricingCreateRequest struct {
	Name         string         `json:"name" binding:"required,max=50"`
	Price        string         `json:"price" binding:"required"`
	Description  string         `json:"description" binding:"required,max=200"`
	Features     []string       `json:"features"`
	Popular      bool           `json:"popular"`
	Color        string         `json:"color"`
	Category     string         `json:"category" binding:"required"`
	DeliveryTime string         `json:"deliveryTime" binding:"required"`
	Revisions    *int           `json:"revisions"`
	Support      string         `json:"support"`
	AddOns       []models.AddOn `json:"addOns"`
	IsActive     *bool          `json:"isActive"`
	Order        int            `json:"order"`
}

type PricingUpdateRequest struct {
	Name         *string         `json:"name"`
	Price        *string         `json:"price"`
	Description  *string         `json:"description"`
	Features     *[]string       `json:"features"`
	Popular      *bool           `json:"popular"`
	Color        *string         `json:"color"`
	Category     *string         `json:"category"`
	DeliveryTime *string         `json:"deliveryTime"`
	Revisions    *int            `json:"revisions"`
	Support      *string         `json:"support"`
	AddOns       *[]models.AddOn `json:"addOns"`
	IsActive     *bool           `json:"isActive"`
	Order        *int            `json:"order"`
}

func buildPricing(req PricingCreateRequest, now time.Time) (models.Pricing, error) {
	category := strings.TrimSpace(req.Category)
	if !models.IsOneOf(category, models.PricingCategories) {
		return models.Pricing{}, fmt.Errorf("invalid category: %s", category)
	}

	support := strings.TrimSpace(req.Support)
	if support == "" {
		support = "standard"
	} else if !models.IsOneOf(support, models.PricingSupportLevels) {
		return models.Pricing{}, fmt.Errorf("invalid support: %s", support)
	}

	revisions := 1
	if req.Revisions != nil {
		if *req.Revisions < 0 {
			return models.Pricing{}, fmt.Errorf("revisions cannot be negative")
		}
		revisions = *req.Revisions
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	addOns := req.AddOns
	if addOns == nil {
		addOns = []models.AddOn{}
	}

	return models.Pricing{
		Name:         strings.TrimSpace(req.Name),
		Price:        strings.TrimSpace(req.Price),
		Description:  strings.TrimSpace(req.Description),
		Features:     trimAll(req.Features),
		Popular:      req.Popular,
		Color:        strings.TrimSpace(req.Color),
		Category:     category,
		DeliveryTime: strings.TrimSpace(req.DeliveryTime),
		Revisions:    revisions,
		Support:      support,
		AddOns:       addOns,
		IsActive:     isActive,
		Order:        req.Order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func buildPricingUpdate(req PricingUpdateRequest, now time.Time) (bson.M, error) {
	update := bson.M{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		update["name"] = name
	}
	if req.Price != nil {
		update["price"] = strings.TrimSpace(*req.Price)
	}
	if req.Description != nil {
		update["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Features != nil {
		update["features"] = trimAll(*req.Features)
	}
	if req.Popular != nil {
		update["popular"] = *req.Popular
	}
	if req.Color != nil {
		update["color"] = strings.TrimSpace(*req.Color)
	}
	if req.Category != nil {
		if !models.IsOneOf(*req.Category, models.PricingCategories) {
			return nil, fmt.Errorf("invalid category: %s", *req.Category)
		}
		update["category"] = *req.Category
	}
	if req.DeliveryTime != nil {
		update["deliveryTime"] = strings.TrimSpace(*req.DeliveryTime)
	}
	if req.Revisions != nil {
		if *req.Revisions < 0 {
			return nil, fmt.Errorf("revisions cannot be negative")
		}
		update["revisions"] = *req.Revisions
	}
	if req.Support != nil {
		if !models.IsOneOf(*req.Support, models.PricingSupportLevels) {
			return nil, fmt.Errorf("invalid support: %s", *req.Support)
		}
		update["support"] = *req.Support
	}
	if req.AddOns != nil {
		update["addOns"] = *req.AddOns
	}
	if req.IsActive != nil {
		update["isActive"] = *req.IsActive
	}
	if req.Order != nil {
		update["order"] = *req.Order
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	update["updatedAt"] = now
	return update, nil
}

// clearPopularSiblings keeps at most one popular tier per category by
// unsetting the flag on every other document sharing the category. Called
// explicitly on the write path after a document ends up with popular=true.
func clearPopularSiblings(ctx context.Context, db *mongo.Database, category string, keep primitive.ObjectID) error {
	_, err := db.Collection("pricing").UpdateMany(
		ctx,
		bson.M{"category": category, "_id": bson.M{"$ne": keep}},
		bson.M{"$set": bson.M{"popular": false}},
	)
	return err
}

/*
POST /api/admin/pricing
*/
func CreatePricing(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/pricing"
		defer handlePanic(c, route)

		var req PricingCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorMessage(err))
			return
		}

		pricing, err := buildPricing(req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("pricing").InsertOne(ctx, pricing)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		pricing.ID = res.InsertedID.(primitive.ObjectID)

		if pricing.Popular {
			if err := clearPopularSiblings(ctx, db, pricing.Category, pricing.ID); err != nil {
				log.Printf("[%s] clearPopularSiblings: %v", route, err)
			}
		}

		c.JSON(http.StatusCreated, pricing)
	}
}

/*
GET /api/admin/pricing/:id
*/
func GetPricingTier(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/pricing/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var pricing models.Pricing
		err = db.Collection("pricing").FindOne(ctx, bson.M{"_id": id}).Decode(&pricing)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "pricing tier not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, pricing)
	}
}

/*
PUT /api/admin/pricing/:id
*/
func UpdatePricing(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/pricing/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req PricingUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		update, err := buildPricingUpdate(req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var updated models.Pricing
		err = db.Collection("pricing").FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)

		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "pricing tier not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if updated.Popular {
			if err := clearPopularSiblings(ctx, db, updated.Category, updated.ID); err != nil {
				log.Printf("[%s] clearPopularSiblings: %v", route, err)
			}
		}

		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /api/admin/pricing/:id
*/
func DeletePricing(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/admin/pricing/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("pricing").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "pricing tier not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Pricing tier removed"})
	}
}
