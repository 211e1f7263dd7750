package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const header = "Category,Brand,Model,Brand Rating (5),Processor Rating (5),Battery Rating (5),Camera Rating (5)\n"

func TestParseReadsRows(t *testing.T) {
	in := header +
		"Budget,Xiaomi,Redmi Note 13,3.8,3.6,4.4,3.7\n" +
		"Premium,Apple,iPhone 15,4.9,4.8,4.2,4.7\n"

	records, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Brand != "Xiaomi" || records[0].Model != "Redmi Note 13" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[0].BatteryRating != "4.4" {
		t.Errorf("rating should stay a raw string, got %q", records[0].BatteryRating)
	}
}

func TestParseDropsRowsWithoutCategory(t *testing.T) {
	in := header +
		"Budget,Xiaomi,Redmi Note 13,3.8,3.6,4.4,3.7\n" +
		",Apple,iPhone 15,4.9,4.8,4.2,4.7\n" +
		"   ,Samsung,Galaxy S24,4.8,4.7,4.3,4.6\n"

	records, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after dropping category-less rows, got %d", len(records))
	}
	if records[0].Brand != "Xiaomi" {
		t.Errorf("wrong surviving record: %+v", records[0])
	}
}

func TestParseKeepsNonNumericRatingsForTheEngine(t *testing.T) {
	in := header + "Budget,Acme,One,not-a-number,3.6,4.4,3.7\n"

	records, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse should not coerce ratings: %v", err)
	}
	if records[0].BrandRating != "not-a-number" {
		t.Errorf("expected raw cell passthrough, got %q", records[0].BrandRating)
	}
}

func TestParseMissingColumn(t *testing.T) {
	in := "Category,Brand,Model,Brand Rating (5),Processor Rating (5),Battery Rating (5)\n" +
		"Budget,Acme,One,4,4,4\n"

	if _, err := Parse(strings.NewReader(in)); err == nil {
		t.Error("expected error for missing Camera Rating (5) column")
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := Parse(strings.NewReader(header)); err == nil {
		t.Error("expected error for header-only input")
	}
}

func TestParseColumnOrderIndependent(t *testing.T) {
	in := "Brand,Model,Category,Camera Rating (5),Battery Rating (5),Processor Rating (5),Brand Rating (5)\n" +
		"Acme,One,Budget,1.1,2.2,3.3,4.4\n"

	records, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	r := records[0]
	if r.CameraRating != "1.1" || r.BatteryRating != "2.2" || r.ProcessorRating != "3.3" || r.BrandRating != "4.4" {
		t.Errorf("columns mapped by position instead of header: %+v", r)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phones.csv")
	content := header + "Budget,Acme,One,4.0,4.0,4.0,4.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
