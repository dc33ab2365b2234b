// Package geo reads coordinates pasted from map applications.
package geo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrUnrecognized = errors.New("unrecognized coordinate format")
	ErrOutOfRange   = errors.New("coordinate out of range")
)

// Point is a WGS84 position in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

var (
	dmsRX = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*°\s*` +
		`(?:(\d+(?:\.\d+)?)\s*['′’]\s*)?` +
		`(?:(\d+(?:\.\d+)?)\s*(?:"|″|”|'')\s*)?` +
		`([NSEW])`)
	decimalRX = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*[,;\s]\s*(-?\d+(?:\.\d+)?)\s*$`)
)

// ParseDMS accepts a degrees-minutes-seconds pair such as
// 54°52'59.2"N 69°14'13.8"E (hemisphere letters decide which part is which,
// S and W are negative) or a plain "lat, lon" decimal pair.
func ParseDMS(s string) (Point, error) {
	s = strings.TrimSpace(s)
	if m := decimalRX.FindStringSubmatch(s); m != nil {
		lat, _ := strconv.ParseFloat(m[1], 64)
		lon, _ := strconv.ParseFloat(m[2], 64)
		return checkRange(Point{Latitude: lat, Longitude: lon})
	}

	parts := dmsRX.FindAllStringSubmatch(s, -1)
	if len(parts) != 2 {
		return Point{}, ErrUnrecognized
	}
	var p Point
	var haveLat, haveLon bool
	for _, m := range parts {
		v, err := dmsValue(m[1], m[2], m[3])
		if err != nil {
			return Point{}, err
		}
		switch strings.ToUpper(m[4]) {
		case "N":
			p.Latitude, haveLat = v, true
		case "S":
			p.Latitude, haveLat = -v, true
		case "E":
			p.Longitude, haveLon = v, true
		case "W":
			p.Longitude, haveLon = -v, true
		}
	}
	if !haveLat || !haveLon {
		return Point{}, ErrUnrecognized
	}
	return checkRange(p)
}

func dmsValue(deg, min, sec string) (float64, error) {
	d, _ := strconv.ParseFloat(deg, 64)
	var m, s float64
	if min != "" {
		m, _ = strconv.ParseFloat(min, 64)
	}
	if sec != "" {
		s, _ = strconv.ParseFloat(sec, 64)
	}
	if m >= 60 || s >= 60 {
		return 0, fmt.Errorf("%w: minutes and seconds must be below 60", ErrOutOfRange)
	}
	return d + m/60 + s/3600, nil
}

func checkRange(p Point) (Point, error) {
	if p.Latitude < -90 || p.Latitude > 90 {
		return Point{}, fmt.Errorf("%w: latitude %v", ErrOutOfRange, p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return Point{}, fmt.Errorf("%w: longitude %v", ErrOutOfRange, p.Longitude)
	}
	return p, nil
}

// FormatDecimal renders v with seven decimal places, the precision stored
// for field coordinates.
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 7, 64)
}
