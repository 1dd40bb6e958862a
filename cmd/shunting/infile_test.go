package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInfile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "exprs.txt")
	if err := os.WriteFile(name, []byte("1+2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name   string
		inname string
		std    bool
		stdin  bool
		file   bool
		err    bool
	}{
		{"none", "", false, false, false, false},
		{"default-stdin", "", true, true, false, false},
		{"dash", "-", false, true, false, false},
		{"dash-with-args", "-", true, true, false, false},
		{"file", name, true, false, true, false},
		{"missing", filepath.Join(dir, "missing.txt"), false, false, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, tty, err := infile(c.inname, c.std)
			if (err != nil) != c.err {
				t.Fatalf("infile(%q, %t): wrong error %v", c.inname, c.std, err)
			}
			switch {
			case c.stdin:
				if f != os.Stdin {
					t.Errorf("infile(%q, %t): want stdin, got %v", c.inname, c.std, f)
				}
			case c.file:
				if f == nil || f == os.Stdin {
					t.Fatalf("infile(%q, %t): want file, got %v", c.inname, c.std, f)
				}
				if tty {
					t.Errorf("infile(%q, %t): file reported as terminal", c.inname, c.std)
				}
				if err := f.Close(); err != nil {
					t.Error(err)
				}
			case !c.err:
				if f != nil || tty {
					t.Errorf("infile(%q, %t): want no input, got %v, %t", c.inname, c.std, f, tty)
				}
			}
		})
	}
}
