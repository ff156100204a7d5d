package web

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/compiledb"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/generator"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/parser"
)

func TestHandleDatabase(t *testing.T) {
	s := NewServer("make.log", "compile_commands.json")

	// Before any run the database is a valid empty array.
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", "/compile_commands.json", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var empty []compiledb.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &empty); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d records before any run, want 0", len(empty))
	}

	s.SetResult(&generator.Result{
		Records: []compiledb.Record{
			{Directory: "/run", Arguments: []string{"gcc", "-Iinc"}, File: "src/a.c"},
		},
		Stats: parser.Stats{Lines: 10, Records: 1, Skipped: 2},
	})

	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", "/compile_commands.json", nil))
	var records []compiledb.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(records) != 1 || records[0].File != "src/a.c" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestHandleSummary(t *testing.T) {
	s := NewServer("make.log", "out.json")
	s.SetResult(&generator.Result{
		Stats: parser.Stats{Lines: 100, Records: 7, Skipped: 3},
	})

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/summary", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var sum Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if sum.Lines != 100 || sum.Records != 7 || sum.Skipped != 3 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Log != "make.log" || sum.Output != "out.json" {
		t.Errorf("summary paths = %q, %q", sum.Log, sum.Output)
	}
}
