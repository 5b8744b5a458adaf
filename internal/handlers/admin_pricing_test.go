package handlers

import (
	"testing"
	"time"
)

func validPricingRequest() PricingCreateRequest {
	return PricingCreateRequest{
		Name:         "Major Projects",
		Price:        "₹8,000 - ₹15,000",
		Description:  "Full-stack final year projects",
		Features:     []string{"Complete source code", "Documentation"},
		Category:     "major",
		DeliveryTime: "2-3 weeks",
	}
}

func TestBuildPricingDefaults(t *testing.T) {
	pricing, err := buildPricing(validPricingRequest(), time.Now())
	if err != nil {
		t.Fatalf("buildPricing returned error: %v", err)
	}

	if pricing.Support != "standard" {
		t.Fatalf("expected default support=standard, got %q", pricing.Support)
	}
	if pricing.Revisions != 1 {
		t.Fatalf("expected default revisions=1, got %d", pricing.Revisions)
	}
	if !pricing.IsActive {
		t.Fatal("expected default isActive=true")
	}
	if pricing.AddOns == nil {
		t.Fatal("expected empty addOns list, got nil")
	}
}

func TestBuildPricingRejectsInvalid(t *testing.T) {
	req := validPricingRequest()
	req.Category = "enterprise"
	if _, err := buildPricing(req, time.Now()); err == nil {
		t.Fatal("expected error for unknown category")
	}

	req = validPricingRequest()
	negative := -1
	req.Revisions = &negative
	if _, err := buildPricing(req, time.Now()); err == nil {
		t.Fatal("expected error for negative revisions")
	}

	req = validPricingRequest()
	req.Support = "platinum"
	if _, err := buildPricing(req, time.Now()); err == nil {
		t.Fatal("expected error for unknown support level")
	}
}

func TestBuildPricingUpdatePartial(t *testing.T) {
	popular := true
	order := 3
	now := time.Now()

	update, err := buildPricingUpdate(PricingUpdateRequest{Popular: &popular, Order: &order}, now)
	if err != nil {
		t.Fatalf("buildPricingUpdate returned error: %v", err)
	}

	if update["popular"] != true || update["order"] != 3 {
		t.Fatalf("unexpected update document: %v", update)
	}
	if update["updatedAt"] != now {
		t.Fatal("expected updatedAt to be touched")
	}
}

func TestBuildPricingUpdateRejectsEmpty(t *testing.T) {
	if _, err := buildPricingUpdate(PricingUpdateRequest{}, time.Now()); err == nil {
		t.Fatal("expected error for empty update")
	}

	bad := "vip"
	if _, err := buildPricingUpdate(PricingUpdateRequest{Support: &bad}, time.Now()); err == nil {
		t.Fatal("expected error for unknown support level")
	}
}
