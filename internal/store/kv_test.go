package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileKVMissingFileIsEmpty(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "storage.json"))
	_, found, err := kv.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected no entry")
	}
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("remove on missing file: %v", err)
	}
}

func TestFileKVSetGetRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	kv := NewFileKV(path)

	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := kv.Set("b", `{"rows":[]}`); err != nil {
		t.Fatalf("set b: %v", err)
	}

	reopened := NewFileKV(path)
	v, found, err := reopened.Get("b")
	if err != nil || !found || v != `{"rows":[]}` {
		t.Fatalf("get b = %q, %v, %v", v, found, err)
	}

	if err := reopened.Remove("a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, found, _ := kv.Get("a"); found {
		t.Fatal("expected a to be removed")
	}
	if _, found, _ := kv.Get("b"); !found {
		t.Fatal("expected b to survive removal of a")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 store file, got %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the store file, found %d entries", len(entries))
	}
}

func TestFileKVCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	kv := NewFileKV(path)

	if _, _, err := kv.Get("k"); err == nil {
		t.Fatal("expected parse error from corrupt file")
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("set should replace corrupt file: %v", err)
	}
	v, found, err := kv.Get("k")
	if err != nil || !found || v != "v" {
		t.Fatalf("get after repair = %q, %v, %v", v, found, err)
	}
}

func TestFileKVWithAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	a := NewAdapter(NewFileKV(path))
	if err := a.Save(sampleRows()); err != nil {
		t.Fatalf("save: %v", err)
	}
	rows, ok := NewAdapter(NewFileKV(path)).Load()
	if !ok || len(rows) != len(sampleRows()) {
		t.Fatalf("expected %d rows from disk, got %d (ok=%v)", len(sampleRows()), len(rows), ok)
	}
}

func TestDebouncerSupersedes(t *testing.T) {
	var d Debouncer
	first, ok := d.Schedule()
	if !ok {
		t.Fatal("expected schedule")
	}
	second, _ := d.Schedule()

	if d.Fire(first) {
		t.Fatal("superseded generation must not fire")
	}
	if !d.Pending() {
		t.Fatal("expected newest save still pending")
	}
	if !d.Fire(second) {
		t.Fatal("newest generation should fire")
	}
	if d.Fire(second) {
		t.Fatal("a generation fires once")
	}
}

func TestDebouncerCancelAndSkip(t *testing.T) {
	var d Debouncer
	gen, _ := d.Schedule()
	d.Cancel()
	if d.Fire(gen) || d.Pending() {
		t.Fatal("cancelled save must not fire")
	}

	pending, _ := d.Schedule()
	d.SkipNext()
	if _, ok := d.Schedule(); ok {
		t.Fatal("expected skipped schedule")
	}
	if d.Fire(pending) {
		t.Fatal("skip must also drop the earlier pending save")
	}
	if _, ok := d.Schedule(); !ok {
		t.Fatal("skip applies to one schedule only")
	}
}
