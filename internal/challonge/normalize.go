package challonge

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	models "github.com/FAB-TCG-Colombia/ChallongeAnalisis/models"
)

// Date fields checked by the year filter, in priority order. starts_at is a
// legacy alias kept for older API variants.
var yearFilterFields = []string{"started_at", "starts_at", "created_at"}

var timestampKeys = []string{"created_at", "started_at", "completed_at", "starts_at"}

var dateLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// extractAttributes flattens a raw entry: merges the identifier into the
// attributes when absent, backfills date fields from the nested timestamps
// object, and resolves the participant count from its alternate homes.
func extractAttributes(entry models.RawTournament) map[string]interface{} {
	attributes := make(map[string]interface{}, len(entry.Attributes)+1)
	maps.Copy(attributes, entry.Attributes)

	if _, ok := attributes["id"]; !ok && entry.Id != "" {
		attributes["id"] = entry.Id
	}

	mergeTimestamps(attributes)
	attributes["participants_count"] = resolveParticipantsCount(attributes, entry.Relationships)

	return attributes
}

// mergeTimestamps backfills top-level date fields from the timestamps
// sub-object. Top-level values always win over nested ones.
func mergeTimestamps(attributes map[string]interface{}) {
	timestamps, ok := attributes["timestamps"].(map[string]interface{})
	if !ok {
		return
	}
	for _, key := range timestampKeys {
		if isEmptyValue(attributes[key]) && !isEmptyValue(timestamps[key]) {
			attributes[key] = timestamps[key]
		}
	}
}

// resolveParticipantsCount returns the first non-null match of:
// attributes.participants_count, relationships.participants.count,
// relationships.participants.meta.count,
// relationships.participants.links.meta.count.
func resolveParticipantsCount(
	attributes map[string]interface{},
	relationships map[string]interface{},
) interface{} {
	if count := attributes["participants_count"]; count != nil {
		return count
	}

	participants, ok := relationships["participants"].(map[string]interface{})
	if !ok {
		return nil
	}
	if count := participants["count"]; count != nil {
		return count
	}
	if meta, ok := participants["meta"].(map[string]interface{}); ok {
		if count := meta["count"]; count != nil {
			return count
		}
	}
	if links, ok := participants["links"].(map[string]interface{}); ok {
		if meta, ok := links["meta"].(map[string]interface{}); ok {
			if count := meta["count"]; count != nil {
				return count
			}
		}
	}
	return nil
}

// inYear reports whether any of the tournament's date fields parses to the
// target year. Absent or unparseable dates are skipped, never fatal.
func inYear(attributes map[string]interface{}, year int) bool {
	for _, field := range yearFilterFields {
		raw, ok := attributes[field].(string)
		if !ok || raw == "" {
			continue
		}
		parsed, err := parseDate(raw)
		if err != nil {
			continue
		}
		if parsed.Year() == year {
			return true
		}
	}
	return false
}

// parseDate parses an ISO-8601 timestamp, substituting a trailing "Z" with
// "+00:00" so both forms are accepted. Timestamps without an explicit offset
// and plain dates are accepted as well.
func parseDate(raw string) (time.Time, error) {
	sanitized := raw
	if strings.HasSuffix(sanitized, "Z") {
		sanitized = strings.TrimSuffix(sanitized, "Z") + "+00:00"
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, sanitized); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", raw)
}

// normalizeTournament reshapes extracted attributes into the canonical
// ten-field record. Normalization never fails: absent values become empty
// strings.
func normalizeTournament(attributes map[string]interface{}) models.Tournament {
	return models.Tournament{
		Id:                stringify(attributes["id"]),
		Name:              stringify(attributes["name"]),
		Url:               stringify(attributes["url"]),
		FullChallongeUrl:  stringify(attributes["full_challonge_url"]),
		State:             stringify(attributes["state"]),
		GameName:          stringify(attributes["game_name"]),
		ParticipantsCount: stringify(attributes["participants_count"]),
		CreatedAt:         stringify(attributes["created_at"]),
		StartedAt:         stringify(attributes["started_at"]),
		CompletedAt:       stringify(attributes["completed_at"]),
	}
}

func isEmptyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// stringify renders an attribute value for CSV output. JSON numbers arrive as
// float64; whole counts must not pick up a decimal point.
func stringify(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprint(value)
	}
}
