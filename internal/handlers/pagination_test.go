package handlers

import "testing"

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 20 {
		t.Fatalf("expected defaults page=1 limit=20, got page=%d limit=%d", page, limit)
	}
}

func TestParsePaginationParamsRejectsInvalid(t *testing.T) {
	cases := [][2]string{
		{"0", "10"},
		{"-1", "10"},
		{"abc", "10"},
		{"1", "0"},
		{"1", "101"},
		{"1", "x"},
	}
	for _, c := range cases {
		if _, _, err := parsePaginationParams(c[0], c[1]); err == nil {
			t.Fatalf("expected error for page=%q limit=%q", c[0], c[1])
		}
	}
}

func TestTotalPagesCeil(t *testing.T) {
	cases := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 20, 5},
	}
	for _, c := range cases {
		if got := totalPages(c.total, c.limit); got != c.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}

func TestListEnvelopeShape(t *testing.T) {
	env := listEnvelope([]string{"a", "b"}, 25, 2, 10)

	if env["total"].(int64) != 25 {
		t.Fatalf("expected total=25, got %v", env["total"])
	}
	if env["page"].(int64) != 2 {
		t.Fatalf("expected page=2, got %v", env["page"])
	}
	if env["totalPages"].(int64) != 3 {
		t.Fatalf("expected totalPages=3, got %v", env["totalPages"])
	}
}
