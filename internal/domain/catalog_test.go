package domain

import "testing"

func TestCatalogHasTenEntriesSortedByID(t *testing.T) {
	t.Parallel()

	entries := Catalog()
	if len(entries) != 10 {
		t.Fatalf("catalog size = %d, want 10", len(entries))
	}
	if CatalogSize() != len(entries) {
		t.Fatalf("CatalogSize = %d, want %d", CatalogSize(), len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].ID >= entries[i].ID {
			t.Fatalf("entries not sorted at %d: %d >= %d", i, entries[i-1].ID, entries[i].ID)
		}
	}
	for _, e := range entries {
		if e.Name == "" || e.Category == "" {
			t.Fatalf("entry %d missing name or category: %+v", e.ID, e)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	t.Parallel()

	entries := Catalog()
	entries[0].Name = "mutated"

	info, ok := LookupSatellite(entries[0].ID)
	if !ok {
		t.Fatalf("LookupSatellite(%d) not found", entries[0].ID)
	}
	if info.Name == "mutated" {
		t.Fatalf("catalog mutated through returned slice")
	}
}

func TestLookupSatellite(t *testing.T) {
	t.Parallel()

	info, ok := LookupSatellite(DefaultSatelliteID)
	if !ok {
		t.Fatalf("default satellite missing from catalog")
	}
	if info.Name != "International Space Station (ISS)" || info.Category != CategorySpaceStation {
		t.Fatalf("unexpected ISS entry: %+v", info)
	}

	if _, ok := LookupSatellite(99999); ok {
		t.Fatalf("LookupSatellite(99999) should be absent")
	}
}

func TestResolveSatelliteID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want int
	}{
		{"", DefaultSatelliteID},
		{"20580", 20580},
		{" 43070 ", 43070},
		{"99999", DefaultSatelliteID},
		{"iss", DefaultSatelliteID},
		{"-1", DefaultSatelliteID},
	}
	for _, tc := range cases {
		if got := ResolveSatelliteID(tc.raw); got != tc.want {
			t.Fatalf("ResolveSatelliteID(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestParseCatalogID(t *testing.T) {
	t.Parallel()

	if id, ok := ParseCatalogID("27424"); !ok || id != 27424 {
		t.Fatalf("ParseCatalogID(27424) = %d, %v", id, ok)
	}
	if id, ok := ParseCatalogID("12345"); ok || id != 12345 {
		t.Fatalf("ParseCatalogID(12345) = %d, %v; want 12345, false", id, ok)
	}
	if _, ok := ParseCatalogID("abc"); ok {
		t.Fatalf("ParseCatalogID(abc) should fail")
	}
}
