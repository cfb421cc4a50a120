package formatter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cratedig/cratedig/internal/models"
)

func testPlaylist() *models.Playlist {
	artist := &models.Artist{ID: "A1", Name: "Night Swimmers", Popularity: 64}
	return &models.Playlist{
		ID:          "P1",
		Name:        "Tides",
		Owner:       "Owner One",
		Description: "songs about water",
		Followers:   42,
		Tracks: []*models.Track{
			{ID: "T1", Name: "Undertow", DurationMS: 231000, Popularity: 71, Artists: []*models.Artist{artist}},
			{ID: "T2", Name: "Slack Water", DurationMS: 187000, Popularity: 55, Artists: []*models.Artist{artist}},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(testPlaylist())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("generated CSV does not parse: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][1] != "Title" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "T1" || records[1][2] != "Night Swimmers" || records[1][3] != "3:51" {
		t.Errorf("unexpected first row: %v", records[1])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown(testPlaylist())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	md := string(data)
	for _, want := range []string{
		"# Tides",
		"**Description**: songs about water",
		"**Owner**: Owner One",
		"**Tracks**: 2",
		"1. Night Swimmers - Undertow [3:51]",
		"2. Night Swimmers - Slack Water [3:07]",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(testPlaylist())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "Playlist: Tides") {
		t.Errorf("text missing playlist name:\n%s", text)
	}
	if !strings.Contains(text, "1. Night Swimmers - Undertow") {
		t.Errorf("text missing track line:\n%s", text)
	}
}

func TestWriteExports(t *testing.T) {
	dir := t.TempDir()

	t.Run("CSV", func(t *testing.T) {
		files, err := WriteCSVExport(testPlaylist(), filepath.Join(dir, "tides"))
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("expected 2 files, got %d", len(files))
		}
		for _, f := range files {
			if _, err := os.Stat(f); err != nil {
				t.Errorf("expected file %s to exist: %v", f, err)
			}
		}

		meta, err := os.ReadFile(files[1])
		if err != nil {
			t.Fatalf("failed to read metadata: %v", err)
		}
		if strings.Contains(string(meta), "Undertow") {
			t.Error("metadata JSON should not include tracks")
		}
	})

	t.Run("Markdown", func(t *testing.T) {
		file, err := WriteMarkdownExport(testPlaylist(), filepath.Join(dir, "tides"))
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if !strings.HasSuffix(file, ".md") {
			t.Errorf("unexpected filename: %s", file)
		}
		if _, err := os.Stat(file); err != nil {
			t.Errorf("expected file to exist: %v", err)
		}
	})

	t.Run("Text", func(t *testing.T) {
		file, err := WriteTextExport(testPlaylist(), filepath.Join(dir, "tides.txt"))
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if _, err := os.Stat(file); err != nil {
			t.Errorf("expected file to exist: %v", err)
		}
	})
}

func TestBarChart(t *testing.T) {
	t.Run("Scales To Largest Value", func(t *testing.T) {
		chart := BarChart("Track popularity", []ChartRow{
			{Label: "Undertow", Value: 80},
			{Label: "Slack Water", Value: 40},
		})

		lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected title + 2 bars, got %d lines", len(lines))
		}

		long := strings.Count(lines[1], "█")
		short := strings.Count(lines[2], "█")
		if long != chartBarWidth {
			t.Errorf("expected max bar of %d cells, got %d", chartBarWidth, long)
		}
		if short != chartBarWidth/2 {
			t.Errorf("expected half-width bar, got %d", short)
		}
	})

	t.Run("Zero Values", func(t *testing.T) {
		chart := BarChart("empty", []ChartRow{{Label: "nothing", Value: 0}})
		if strings.Contains(chart, "█") {
			t.Errorf("expected no bars for zero values:\n%s", chart)
		}
	})

	t.Run("Entity Helpers", func(t *testing.T) {
		playlist := testPlaylist()
		chart := PopularityChart(playlist.Tracks)
		if !strings.Contains(chart, "Undertow") || !strings.Contains(chart, "71") {
			t.Errorf("popularity chart missing data:\n%s", chart)
		}

		chart = FollowerChart([]*models.Artist{{ID: "A1", Name: "Night Swimmers", Followers: 1200}})
		if !strings.Contains(chart, "1200") {
			t.Errorf("follower chart missing data:\n%s", chart)
		}
	})
}
