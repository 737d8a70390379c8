package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sdejongh/uniqnorris/pkg/models"
)

func sampleReport() *models.Report {
	dirA := models.Directory{Path: "/data/photos", Arg: "photos"}
	dirB := models.Directory{Path: "/data/backup", Arg: "backup"}

	return &models.Report{
		RunID:     "test-run",
		Mode:      models.CompareByName,
		StartTime: time.Now(),
		Duration:  125 * time.Millisecond,
		Directories: []models.Directory{dirA, dirB},
		Unique: map[string]models.UniqueSet{
			"/data/photos": {
				{Name: "holiday.jpg", Path: "/data/photos/holiday.jpg"},
				{Name: "sunset.jpg", Path: "/data/photos/sunset.jpg"},
			},
			"/data/backup": nil,
		},
		Stats: models.Statistics{
			RootsSupplied: 2,
			RootsCompared: 2,
			FilesScanned:  5,
			UniqueFiles:   2,
		},
		Status: models.StatusSuccess,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"human", false},
		{"json", false},
		{"table", false},
		{"xml", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := New(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("New(%q) should fail", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.format, err)
			}
			if f.Name() != tt.format {
				t.Errorf("Name() = %s, want %s", f.Name(), tt.format)
			}
		})
	}
}

func TestHumanFormatter(t *testing.T) {
	t.Run("ListsUniqueFiles", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewHumanFormatter().Write(&buf, sampleReport()); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"by filename",
			"/data/photos/",
			"(2 unique files)",
			"- holiday.jpg",
			"- sunset.jpg",
			"(no unique files)",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("ContentModeHeader", func(t *testing.T) {
		report := sampleReport()
		report.Mode = models.CompareByContent

		var buf bytes.Buffer
		NewHumanFormatter().Write(&buf, report)

		if !strings.Contains(buf.String(), "by content") {
			t.Errorf("content-mode header missing:\n%s", buf.String())
		}
	})

	t.Run("PreviewCappedWithTrueTotal", func(t *testing.T) {
		report := sampleReport()
		var set models.UniqueSet
		for i := 0; i < PreviewLimit+10; i++ {
			name := fmt.Sprintf("file-%03d.txt", i)
			set = append(set, models.UniqueFile{Name: name, Path: "/data/photos/" + name})
		}
		report.Unique["/data/photos"] = set

		var buf bytes.Buffer
		NewHumanFormatter().Write(&buf, report)
		out := buf.String()

		if !strings.Contains(out, fmt.Sprintf("(%d unique files)", PreviewLimit+10)) {
			t.Errorf("true total missing from output:\n%s", out)
		}
		if !strings.Contains(out, "... and 10 more") {
			t.Errorf("remaining-count note missing:\n%s", out)
		}
		if strings.Count(out, "- file-") != PreviewLimit {
			t.Errorf("listed %d files, want %d", strings.Count(out, "- file-"), PreviewLimit)
		}
	})

	t.Run("SkippedRootsListed", func(t *testing.T) {
		report := sampleReport()
		report.FailedRoots = []models.RootFailure{{Arg: "/gone", Reason: "does not exist"}}

		var buf bytes.Buffer
		NewHumanFormatter().Write(&buf, report)

		if !strings.Contains(buf.String(), "/gone") {
			t.Errorf("skipped root missing:\n%s", buf.String())
		}
	})
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter().Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var doc JSONReport
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.RunID != "test-run" {
		t.Errorf("run_id = %s, want test-run", doc.RunID)
	}
	if doc.Mode != "by-name" {
		t.Errorf("mode = %s, want by-name", doc.Mode)
	}
	if len(doc.Directories) != 2 {
		t.Fatalf("directories = %d, want 2", len(doc.Directories))
	}
	if doc.Directories[0].UniqueCount != 2 {
		t.Errorf("unique_count = %d, want 2", doc.Directories[0].UniqueCount)
	}
	if doc.Directories[0].Unique[0].Name != "holiday.jpg" {
		t.Errorf("first unique = %s, want holiday.jpg", doc.Directories[0].Unique[0].Name)
	}

	t.Run("ListIsUncapped", func(t *testing.T) {
		report := sampleReport()
		var set models.UniqueSet
		for i := 0; i < PreviewLimit+25; i++ {
			name := fmt.Sprintf("f%d", i)
			set = append(set, models.UniqueFile{Name: name, Path: "/data/photos/" + name})
		}
		report.Unique["/data/photos"] = set

		var buf bytes.Buffer
		NewJSONFormatter().Write(&buf, report)

		var doc JSONReport
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(doc.Directories[0].Unique) != PreviewLimit+25 {
			t.Errorf("JSON list has %d entries, want the full %d", len(doc.Directories[0].Unique), PreviewLimit+25)
		}
	})
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter().Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"photos (2 unique)", "backup (0 unique)", "holiday.jpg", "sunset.jpg"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestNullReporter(t *testing.T) {
	// Must be safe to call in any order
	r := NewNullReporter()
	r.Increment()
	r.Start(10)
	r.Increment()
	r.Finish()
	r.Finish()
}

func TestBarReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter(&buf)
	r.Start(3)
	r.Increment()
	r.Increment()
	r.Increment()
	r.Finish()
	// Finishing twice must not panic
	r.Finish()
}
