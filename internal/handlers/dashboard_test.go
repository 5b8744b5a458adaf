package handlers

import "testing"

func TestGrowthPercentZeroPriorPeriod(t *testing.T) {
	if got := growthPercent(12, 0); got != 0 {
		t.Fatalf("expected 0%% growth with empty prior period, got %v", got)
	}
}

func TestGrowthPercent(t *testing.T) {
	cases := []struct {
		recent, previous int64
		want             float64
	}{
		{20, 10, 100},
		{10, 20, -50},
		{10, 10, 0},
		{10, 3, 233.3},
	}
	for _, c := range cases {
		if got := growthPercent(c.recent, c.previous); got != c.want {
			t.Fatalf("growthPercent(%d, %d) = %v, want %v", c.recent, c.previous, got, c.want)
		}
	}
}

func TestRenameKey(t *testing.T) {
	out := renameKey([]fieldCount{{Value: "web", Count: 4}}, "type")
	if len(out) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(out))
	}
	if out[0]["type"] != "web" || out[0]["count"] != int64(4) {
		t.Fatalf("unexpected bucket: %v", out[0])
	}
}
