package fleet

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeedFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadFileYAML(t *testing.T) {
	d := t.TempDir()
	p := writeSeedFile(t, d, "fleet.yaml", "machines:\n  - id: \"001\"\n    stock: 10\n  - id: lobby-a\n    stock: 2\n")
	reg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("len=%d", reg.Len())
	}
	if m, _ := reg.Get("lobby-a"); m.StockLevel != 2 {
		t.Fatalf("machine lobby-a: %+v", m)
	}
}

func TestLoadFileJSON(t *testing.T) {
	d := t.TempDir()
	p := writeSeedFile(t, d, "fleet.json", `{"machines":[{"id":"001","stock":5}]}`)
	reg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m, _ := reg.Get("001"); m.StockLevel != 5 {
		t.Fatalf("machine 001: %+v", m)
	}
}

func TestLoadFileTOML(t *testing.T) {
	d := t.TempDir()
	p := writeSeedFile(t, d, "fleet.toml", "[[machines]]\nid=\"001\"\nstock=7\n")
	reg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m, _ := reg.Get("001"); m.StockLevel != 7 {
		t.Fatalf("machine 001: %+v", m)
	}
}

func TestLoadFileErrors(t *testing.T) {
	d := t.TempDir()

	if _, err := LoadFile(filepath.Join(d, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	empty := writeSeedFile(t, d, "empty.yaml", "machines: []\n")
	if _, err := LoadFile(empty); err == nil {
		t.Fatalf("expected error for empty fleet")
	}

	dup := writeSeedFile(t, d, "dup.yaml", "machines:\n  - id: \"001\"\n    stock: 1\n  - id: \"001\"\n    stock: 2\n")
	if _, err := LoadFile(dup); err == nil {
		t.Fatalf("expected error for duplicate ids")
	}

	noID := writeSeedFile(t, d, "noid.json", `{"machines":[{"stock":3}]}`)
	if _, err := LoadFile(noID); err == nil {
		t.Fatalf("expected error for empty machine id")
	}

	bad := writeSeedFile(t, d, "fleet.txt", "whatever")
	if _, err := LoadFile(bad); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}
