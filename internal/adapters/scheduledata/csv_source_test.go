package scheduledata

import (
	"context"
	"strings"
	"testing"
)

const sampleCSV = `Arrival Time,Vehicle Type,Type,Hub Code,Parcels
0:00,19',Loading,HUB1,
1:30,32' MA,Unloading,HUB2,850
23:30,32'SXL,Loading,HUB1,
noon,22',Loading,HUB1,
4:15,17',Shipping,HUB1,
5:00,14',Loading,HUB1,many
6:00,Eicher 19 ft,Unloading,HUB1,500
`

func TestCSVSourceHubs(t *testing.T) {
	src, err := NewCSVSource(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hubs, err := src.Hubs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hubs) != 2 || hubs[0] != "HUB1" || hubs[1] != "HUB2" {
		t.Fatalf("hubs = %v, want [HUB1 HUB2] in first-seen order", hubs)
	}
}

func TestCSVSourceEntries(t *testing.T) {
	src, err := NewCSVSource(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, issues, err := src.Entries(context.Background(), "HUB1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// HUB2's row is filtered out; three HUB1 rows are malformed.
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if len(issues) != 3 {
		t.Fatalf("issues = %d, want 3 (bad time, bad type, bad parcels)", len(issues))
	}

	first := entries[0]
	if first.VehicleType != "19'" || first.ArrivalTime != 0 || first.ParcelOverride != nil {
		t.Errorf("first entry = %+v", first)
	}

	last := entries[2]
	if last.ParcelOverride == nil || *last.ParcelOverride != 500 {
		t.Errorf("last entry override = %v, want 500", last.ParcelOverride)
	}
	if last.HubCode != "HUB1" {
		t.Errorf("hub code = %q, want HUB1", last.HubCode)
	}
}

func TestCSVSourceEntriesOtherHub(t *testing.T) {
	src, err := NewCSVSource(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, issues, err := src.Entries(context.Background(), "HUB2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || len(issues) != 0 {
		t.Fatalf("entries = %d issues = %d, want 1 and 0", len(entries), len(issues))
	}
	if entries[0].ParcelOverride == nil || *entries[0].ParcelOverride != 850 {
		t.Errorf("override = %v, want 850", entries[0].ParcelOverride)
	}
}

func TestCSVSourceMissingRequiredColumn(t *testing.T) {
	noType := `Arrival Time,Vehicle Type,Hub Code
0:00,19',HUB1
`
	if _, err := NewCSVSource(strings.NewReader(noType)); err == nil {
		t.Fatal("expected error for missing required column, got none")
	}
}

func TestCSVSourceOptionalParcelsColumn(t *testing.T) {
	noParcels := `Arrival Time,Vehicle Type,Type,Hub Code
8:00,19',Loading,HUB1
`
	src, err := NewCSVSource(strings.NewReader(noParcels))
	if err != nil {
		t.Fatalf("parcels column must be optional: %v", err)
	}

	entries, issues, err := src.Entries(context.Background(), "HUB1")
	if err != nil || len(issues) != 0 {
		t.Fatalf("unexpected: err=%v issues=%v", err, issues)
	}
	if len(entries) != 1 || entries[0].ParcelOverride != nil {
		t.Fatalf("entries = %+v, want one entry with default parcels", entries)
	}
}
