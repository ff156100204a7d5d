package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/parser"
)

func writeLog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "make.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	log := writeLog(t, dir, ""+
		"make[1]: Entering directory '/proj'\n"+
		"arm-linux-gcc -c -Iinc /proj/src/a.c -o a.o\n"+
		"arm-linux-g++ -c -DFOO /proj/src/b.cpp -o b.o\n")

	g := &Generator{
		LogPath: log,
		Output:  filepath.Join(dir, "compile_commands.json"),
		Parser:  parser.New("/run", "proj", nil, parser.Options{}),
	}

	res, err := g.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(res.Records))
	}
	if res.Records[0].File != "src/a.c" || res.Records[1].File != "src/b.cpp" {
		t.Errorf("unexpected records: %+v", res.Records)
	}

	if _, err := os.Stat(g.Output); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestRunMissingLog(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{
		LogPath: filepath.Join(dir, "does-not-exist.log"),
		Output:  filepath.Join(dir, "compile_commands.json"),
		Parser:  parser.New("/run", "proj", nil, parser.Options{}),
	}

	if _, err := g.Run(); err == nil {
		t.Fatal("Run() succeeded on a missing log file")
	}
	// No output file may be written when the log is missing.
	if _, err := os.Stat(g.Output); !os.IsNotExist(err) {
		t.Error("output file was written despite missing log")
	}
}

func TestRunEmptyResultWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	log := writeLog(t, dir, "noise\nmore noise\n")

	g := &Generator{
		LogPath: log,
		Output:  filepath.Join(dir, "compile_commands.json"),
		Parser:  parser.New("/run", "proj", nil, parser.Options{}),
	}

	res, err := g.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Records) != 0 {
		t.Errorf("got %d records, want 0", len(res.Records))
	}

	data, err := os.ReadFile(g.Output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := string(bytes.TrimSpace(data)); got != "[]" {
		t.Errorf("empty run wrote %q, want []", got)
	}
}

func TestRunDeterministic(t *testing.T) {
	dir := t.TempDir()
	log := writeLog(t, dir, ""+
		"arm-linux-gcc -c -Iinc /proj/src/a.c -o a.o\n"+
		"arm-linux-g++ -c /proj/src/b.cpp -o b.o\n")

	g := &Generator{
		LogPath: log,
		Output:  filepath.Join(dir, "compile_commands.json"),
		Parser:  parser.New("/run", "proj", nil, parser.Options{}),
	}

	if _, err := g.Run(); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	first, err := os.ReadFile(g.Output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if _, err := g.Run(); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	second, err := os.ReadFile(g.Output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("two runs over the same log produced different output")
	}
}
