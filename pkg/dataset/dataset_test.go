package dataset

import (
	"encoding/json"
	"testing"
)

func TestNormalize(t *testing.T) {
	grid := [][]interface{}{
		{"Outlet", "Headline", "Reach"},
		{"TechCrunch", "Launch coverage", "9200000"},
		{"Wired", "Feature", "5600000"},
	}

	rows := Normalize(grid)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Outlet"] != "TechCrunch" {
		t.Errorf("Outlet mismatch: got %q", rows[0]["Outlet"])
	}
	if rows[1]["Headline"] != "Feature" {
		t.Errorf("Headline mismatch: got %q", rows[1]["Headline"])
	}
}

func TestNormalize_RaggedRows(t *testing.T) {
	grid := [][]interface{}{
		{"Outlet", "Headline", "Date"},
		{"Forbes"},
		{"Axios", "Q3 roundup", "2026-08-01", "surplus cell"},
	}

	rows := Normalize(grid)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0]["Headline"] != "" || rows[0]["Date"] != "" {
		t.Errorf("Short row should pad missing cells with empty strings, got %v", rows[0])
	}
	if len(rows[1]) != 3 {
		t.Errorf("Surplus cells should be dropped, got %d keys", len(rows[1]))
	}
}

func TestNormalize_BlankAndTypedCells(t *testing.T) {
	grid := [][]interface{}{
		{"Outlet", "", "Confirmed"},
		{"Reuters", float64(42), true},
		{nil, "x", float64(1.5)},
	}

	rows := Normalize(grid)
	if rows[0]["column_2"] != "42" {
		t.Errorf("Blank header should become positional, got %v", rows[0])
	}
	if rows[0]["Confirmed"] != "true" {
		t.Errorf("Bool cell should render as true, got %q", rows[0]["Confirmed"])
	}
	if rows[1]["Outlet"] != "" {
		t.Errorf("Nil cell should render empty, got %q", rows[1]["Outlet"])
	}
	if rows[1]["Confirmed"] != "1.5" {
		t.Errorf("Float cell should render without exponent, got %q", rows[1]["Confirmed"])
	}
}

func TestNormalize_HeaderOnlyAndEmpty(t *testing.T) {
	// Empty sheets must serialize as [] rather than null, so Normalize
	// returns an empty slice, never nil.
	rows := Normalize([][]interface{}{{"Outlet"}})
	if rows == nil || len(rows) != 0 {
		t.Errorf("Header-only grid should normalize to an empty slice, got %#v", rows)
	}
	rows = Normalize(nil)
	if rows == nil || len(rows) != 0 {
		t.Errorf("Empty grid should normalize to an empty slice, got %#v", rows)
	}

	if data, err := json.Marshal(rows); err != nil || string(data) != "[]" {
		t.Errorf("Normalized empty sheet should marshal as [], got %s (err %v)", data, err)
	}
}

func TestDataset_AddSheetPreservesOrder(t *testing.T) {
	ds := New()
	ds.AddSheet("Coverage", []Row{{"Outlet": "Wired"}})
	ds.AddSheet("Awards", nil)
	ds.AddSheet("Speaking", []Row{{"Event": "KubeCon"}, {"Event": "re:Invent"}})

	want := []string{"Coverage", "Awards", "Speaking"}
	for i, name := range want {
		if ds.SheetNames[i] != name {
			t.Errorf("SheetNames[%d] = %q, want %q", i, ds.SheetNames[i], name)
		}
	}
	if ds.RowCount() != 3 {
		t.Errorf("RowCount = %d, want 3", ds.RowCount())
	}
	if ds.Rows("Missing") != nil {
		t.Error("Rows for an absent sheet should be nil")
	}
}
