package store

import (
	"os"
	"path/filepath"
	"testing"

	"pocketpet/internal/pet"
)

func intPtr(v int) *int { return &v }

func fullRecord() pet.Record {
	return pet.Record{
		Hunger:    intPtr(32),
		Happiness: intPtr(69),
		Energy:    intPtr(79),
		AgeDays:   intPtr(3),
	}
}

func TestFileStoreFirstRun(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}

	rec, err := fs.Load()
	if err != nil {
		t.Fatalf("first-run load: %v", err)
	}
	if rec != nil {
		t.Fatalf("first-run load = %+v, want nil", rec)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}

	if err := fs.Save(fullRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("load returned nil after save")
	}
	if *rec.Hunger != 32 || *rec.Happiness != 69 || *rec.Energy != 79 || *rec.AgeDays != 3 {
		t.Errorf("loaded %+v, want the saved values", rec)
	}
}

func TestFileStorePartialRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(`{"hunger": 12}`), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}

	rec, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Hunger == nil || *rec.Hunger != 12 {
		t.Errorf("hunger = %v, want 12", rec.Hunger)
	}
	if rec.Happiness != nil || rec.Energy != nil || rec.AgeDays != nil {
		t.Errorf("missing keys should stay nil: %+v", rec)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Load(); err == nil {
		t.Fatal("malformed state should surface an error for the host to log")
	}
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := fs.Save(fullRecord()); err != nil {
		t.Fatalf("save into created dir: %v", err)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}

	if err := fs.Save(fullRecord()); err != nil {
		t.Fatal(err)
	}
	second := fullRecord()
	*second.Hunger = 90
	if err := fs.Save(second); err != nil {
		t.Fatal(err)
	}

	rec, err := fs.Load()
	if err != nil {
		t.Fatal(err)
	}
	if *rec.Hunger != 90 {
		t.Errorf("hunger = %d after overwrite, want 90", *rec.Hunger)
	}
}
