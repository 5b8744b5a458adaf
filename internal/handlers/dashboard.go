package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fieldCount struct {
	Value string `bson:"_id" json:"value"`
	Count int64  `bson:"count" json:"count"`
}

type categoryViews struct {
	Category   string `bson:"_id" json:"category"`
	Count      int64  `bson:"count" json:"count"`
	TotalViews int64  `bson:"totalViews" json:"totalViews"`
}

// growthPercent compares the recent period against the prior one,
// reporting 0 when the prior period was empty.
func growthPercent(recent, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	growth := float64(recent-previous) / float64(previous) * 100
	return math.Round(growth*10) / 10
}

func countByField(ctx context.Context, db *mongo.Database, collection, field string) ([]fieldCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]fieldCount, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func sumProjectViews(ctx context.Context, db *mongo.Database) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "totalViews": bson.M{"$sum": "$views"}}}},
	}

	cursor, err := db.Collection("projects").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalViews, nil
}

func projectsByCategory(ctx context.Context, db *mongo.Database) ([]categoryViews, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":        "$category",
			"count":      bson.M{"$sum": 1},
			"totalViews": bson.M{"$sum": "$views"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := db.Collection("projects").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]categoryViews, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func contactsSince(ctx context.Context, db *mongo.Database, since time.Time) (int64, error) {
	return db.Collection("contacts").CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": since},
	})
}

/*
GET /api/admin/dashboard-stats
- pure read-side aggregation, recomputed on every call
*/
func DashboardStats(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/dashboard-stats"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		projectCount, err := db.Collection("projects").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		pricingCount, err := db.Collection("pricing").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		contactCount, err := db.Collection("contacts").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		totalViews, err := sumProjectViews(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		byType, err := countByField(ctx, db, "contacts", "projectType")
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		byStatus, err := countByField(ctx, db, "contacts", "status")
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		byPriority, err := countByField(ctx, db, "contacts", "priority")
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		byCategory, err := projectsByCategory(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		now := time.Now()
		last7, err := contactsSince(ctx, db, now.AddDate(0, 0, -7))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		last30, err := contactsSince(ctx, db, now.AddDate(0, 0, -30))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		last60, err := contactsSince(ctx, db, now.AddDate(0, 0, -60))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		previous30 := last60 - last30

		c.JSON(http.StatusOK, gin.H{
			"overview": gin.H{
				"totalProjects":       projectCount,
				"totalPricingTiers":   pricingCount,
				"totalContacts":       contactCount,
				"totalProjectViews":   totalViews,
				"recentContactsCount": last7,
				"contactGrowth":       growthPercent(last30, previous30),
			},
			"recentContacts": gin.H{
				"last7Days":  last7,
				"last30Days": last30,
				"last60Days": last60,
			},
			"contactsByType":     renameKey(byType, "type"),
			"contactsByStatus":   renameKey(byStatus, "status"),
			"contactsByPriority": renameKey(byPriority, "priority"),
			"projectsByCategory": byCategory,
		})
	}
}

// renameKey reshapes aggregation buckets so each list names its own
// grouping key, matching what the dashboard UI expects.
func renameKey(counts []fieldCount, key string) []gin.H {
	out := make([]gin.H, 0, len(counts))
	for _, item := range counts {
		out = append(out, gin.H{key: item.Value, "count": item.Count})
	}
	return out
}
