package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	PricingCategories    = []string{"mini", "major", "ieee", "web", "custom"}
	PricingSupportLevels = []string{"basic", "standard", "premium"}
)

// AddOn is an optional extra sold alongside a pricing tier.
type AddOn struct {
	Name        string `bson:"name" json:"name"`
	Price       string `bson:"price" json:"price"`
	Description string `bson:"description" json:"description"`
}

type Pricing struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Price        string             `bson:"price" json:"price"`
	Description  string             `bson:"description" json:"description"`
	Features     []string           `bson:"features" json:"features"`
	Popular      bool               `bson:"popular" json:"popular"`
	Color        string             `bson:"color,omitempty" json:"color,omitempty"`
	Category     string             `bson:"category" json:"category"`
	DeliveryTime string             `bson:"deliveryTime" json:"deliveryTime"`
	Revisions    int                `bson:"revisions" json:"revisions"`
	Support      string             `bson:"support" json:"support"`
	AddOns       []AddOn            `bson:"addOns" json:"addOns"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
