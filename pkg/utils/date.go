package utils

import (
	"fmt"
	"strconv"
	"time"
)

// UnixMillis konvertiert einen ISO-8601 Zeitstempel in den Unix-Timestamp in
// Millisekunden, als Dezimalstring. Ein "Z"-Suffix wird wie +00:00 behandelt.
func UnixMillis(timestamp string) (string, error) {
	// Mögliche Omnivore Formate
	formats := []string{
		time.RFC3339, // deckt Z, Offsets und Sekundenbruchteile ab
		"2006-01-02",
	}

	for _, format := range formats {
		if parsed, err := time.Parse(format, timestamp); err == nil {
			return strconv.FormatInt(parsed.UnixMilli(), 10), nil
		}
	}

	return "", fmt.Errorf("unbekanntes Datumsformat: %q", timestamp)
}
