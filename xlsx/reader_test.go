package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// createTestXLSX writes a workbook where each entry maps a sheet name
// to its rows. Returns the file path.
func createTestXLSX(t *testing.T, sheets map[string][][]string, order []string) string {
	t.Helper()

	f := excelize.NewFile()
	for i, name := range order {
		if i == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("NewSheet(%s): %v", name, err)
			}
		}
		for rowIdx, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTables_SingleSheet(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Routes": {
			{"Destination", "NextHop"},
			{"10.0.0.0/8", "192.168.1.1"},
		},
	}, []string{"Routes"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	tables, err := r.Tables()
	if err != nil {
		t.Fatalf("Tables() error = %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if got := tables[0].Rows[0].Cells[0].Text; got != "Destination" {
		t.Errorf("cell[0][0] = %q, want 'Destination'", got)
	}
	if got := tables[0].Rows[1].Cells[1].Text; got != "192.168.1.1" {
		t.Errorf("cell[1][1] = %q, want '192.168.1.1'", got)
	}
}

func TestTables_SheetOrder(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Zones":  {{"Zone"}, {"trust"}},
		"Routes": {{"Destination"}, {"10.0.0.0/8"}},
	}, []string{"Zones", "Routes"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	names := r.SheetNames()
	if len(names) != 2 || names[0] != "Zones" || names[1] != "Routes" {
		t.Fatalf("SheetNames() = %v, want [Zones Routes]", names)
	}

	tables, err := r.Tables()
	if err != nil {
		t.Fatalf("Tables() error = %v", err)
	}
	if got := tables[0].Rows[0].Cells[0].Text; got != "Zone" {
		t.Errorf("first table header = %q, want 'Zone'", got)
	}
	if got := tables[1].Rows[0].Cells[0].Text; got != "Destination" {
		t.Errorf("second table header = %q, want 'Destination'", got)
	}
}

func TestTable_NamedSheet(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Zones":  {{"Zone"}, {"trust"}},
		"Routes": {{"Destination"}, {"10.0.0.0/8"}},
	}, []string{"Zones", "Routes"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	table, err := r.Table("Routes")
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if got := table.Rows[1].Cells[0].Text; got != "10.0.0.0/8" {
		t.Errorf("data cell = %q, want '10.0.0.0/8'", got)
	}

	if _, err := r.Table("NoSuchSheet"); err == nil {
		t.Error("Table() should fail for a missing sheet")
	}
}

func TestTables_EmptySheet(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Empty": nil,
	}, []string{"Empty"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	tables, err := r.Tables()
	if err != nil {
		t.Fatalf("Tables() error = %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if len(tables[0].Rows) != 0 {
		t.Errorf("expected 0 rows for empty sheet, got %d", len(tables[0].Rows))
	}
}

func TestOpen_NonexistentFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	if err == nil {
		t.Fatal("Open() should fail for a nonexistent file")
	}
}
