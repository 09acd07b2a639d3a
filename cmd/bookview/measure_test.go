package main

import "bytes"
import "strings"
import "testing"

import "go.uber.org/zap/zaptest"
import "golang.org/x/image/font/basicfont"

import "github.com/sesvxace/book"
import "github.com/sesvxace/book/bookfile"
import "github.com/sesvxace/book/imghost"

func TestWriteMeasurements(t *testing.T) {
	def, err := bookfile.ParseString(`book "M" {
		pages 2
		page 1 { "one" "two" }
	}`)
	if err != nil { t.Fatal(err) }

	var out bytes.Buffer
	host := imghost.New(basicfont.Face7x13, nil)
	if err := writeMeasurements(&out, def, host, book.DefaultOptions(), zaptest.NewLogger(t)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 { t.Fatalf("expected 2 lines, got %q", out.String()) }
	if lines[0] != "page 1: 2 rows, height 392, max scroll 0" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "page 2: 0 rows, height 392, max scroll 0" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}
