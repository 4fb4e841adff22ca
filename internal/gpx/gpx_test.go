package gpx

import (
	"strings"
	"testing"
	"time"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Morning walk</name>
    <trkseg>
      <trkpt lat="52.5200" lon="13.4050">
        <time>2025-03-10T08:00:00Z</time>
      </trkpt>
      <trkpt lat="52.5201" lon="13.4052">
        <time>2025-03-10T08:00:10Z</time>
      </trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="52.5203" lon="13.4055">
        <time>2025-03-10T08:00:30Z</time>
      </trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(sampleGPX))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}

	if doc.Version != "1.1" || doc.Creator != "test" {
		t.Errorf("version/creator = %q/%q", doc.Version, doc.Creator)
	}
	if len(doc.Tracks) != 1 || doc.Tracks[0].Name != "Morning walk" {
		t.Fatalf("unexpected tracks: %+v", doc.Tracks)
	}

	points := doc.AllPoints()
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	first := points[0]
	if first.Lat != 52.52 || first.Lon != 13.405 {
		t.Errorf("first point = %v,%v", first.Lat, first.Lon)
	}
	want := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if !first.Time.Equal(want) {
		t.Errorf("first point time = %v, want %v", first.Time, want)
	}
}

func TestParseReaderRejectsGarbage(t *testing.T) {
	if _, err := ParseReader(strings.NewReader("not xml at all")); err == nil {
		t.Error("expected parse error")
	}
}
