// Package gpx parses the minimal subset of GPX 1.1 needed to replay a
// recorded track as a stream of location fixes.
package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"time"
)

// Point is a GPS track point.
type Point struct {
	Lat  float64   `xml:"lat,attr"`
	Lon  float64   `xml:"lon,attr"`
	Time time.Time `xml:"time,omitempty"`
}

// TrackSegment holds consecutive track points.
type TrackSegment struct {
	Points []Point `xml:"trkpt"`
}

// Track is a GPX track with segments.
type Track struct {
	Name     string         `xml:"name,omitempty"`
	Segments []TrackSegment `xml:"trkseg"`
}

// GPX is the top-level document.
type GPX struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Tracks  []Track  `xml:"trk"`
}

// Parse reads and parses a GPX file.
func Parse(filename string) (*GPX, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening gpx file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses GPX from an io.Reader.
func ParseReader(r io.Reader) (*GPX, error) {
	decoder := xml.NewDecoder(r)

	var doc GPX
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing gpx: %w", err)
	}
	return &doc, nil
}

// AllPoints flattens every track segment into one chronological slice.
func (g *GPX) AllPoints() []Point {
	var points []Point
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			points = append(points, segment.Points...)
		}
	}
	return points
}
