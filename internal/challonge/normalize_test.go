package challonge

import (
	"testing"

	models "github.com/FAB-TCG-Colombia/ChallongeAnalisis/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractAttributes_BackfillsFromTimestamps(t *testing.T) {
	entry := models.RawTournament{
		Id: "10",
		Attributes: map[string]interface{}{
			"name": "Nested Dates",
			"timestamps": map[string]interface{}{
				"created_at":   "2024-01-01T00:00:00Z",
				"started_at":   "2024-01-02T00:00:00Z",
				"completed_at": "2024-01-03T00:00:00Z",
			},
		},
	}

	attributes := extractAttributes(entry)
	assert.Equal(t, "2024-01-01T00:00:00Z", attributes["created_at"])
	assert.Equal(t, "2024-01-02T00:00:00Z", attributes["started_at"])
	assert.Equal(t, "2024-01-03T00:00:00Z", attributes["completed_at"])
}

func TestExtractAttributes_TopLevelDatesWin(t *testing.T) {
	entry := models.RawTournament{
		Id: "10",
		Attributes: map[string]interface{}{
			"started_at": "2024-05-05T00:00:00Z",
			"timestamps": map[string]interface{}{
				"started_at": "2023-01-01T00:00:00Z",
			},
		},
	}

	attributes := extractAttributes(entry)
	assert.Equal(t, "2024-05-05T00:00:00Z", attributes["started_at"])
}

func TestExtractAttributes_MergesIdWhenAbsent(t *testing.T) {
	entry := models.RawTournament{
		Id:         "42",
		Attributes: map[string]interface{}{"name": "No Inline Id"},
	}
	attributes := extractAttributes(entry)
	assert.Equal(t, "42", attributes["id"])
}

func TestExtractAttributes_KeepsInlineId(t *testing.T) {
	entry := models.RawTournament{
		Id:         "42",
		Attributes: map[string]interface{}{"id": "7"},
	}
	attributes := extractAttributes(entry)
	assert.Equal(t, "7", attributes["id"])
}

func TestResolveParticipantsCount_PriorityOrder(t *testing.T) {
	relationships := map[string]interface{}{
		"participants": map[string]interface{}{
			"count": float64(2),
			"meta":  map[string]interface{}{"count": float64(3)},
			"links": map[string]interface{}{
				"meta": map[string]interface{}{"count": float64(4)},
			},
		},
	}

	// Direct attribute beats everything
	count := resolveParticipantsCount(map[string]interface{}{"participants_count": float64(1)}, relationships)
	assert.Equal(t, float64(1), count)

	// relationships.participants.count beats meta.count
	count = resolveParticipantsCount(map[string]interface{}{}, relationships)
	assert.Equal(t, float64(2), count)

	// meta.count beats links.meta.count
	delete(relationships["participants"].(map[string]interface{}), "count")
	count = resolveParticipantsCount(map[string]interface{}{}, relationships)
	assert.Equal(t, float64(3), count)

	// links.meta.count is the last fallback
	delete(relationships["participants"].(map[string]interface{}), "meta")
	count = resolveParticipantsCount(map[string]interface{}{}, relationships)
	assert.Equal(t, float64(4), count)

	delete(relationships["participants"].(map[string]interface{}), "links")
	count = resolveParticipantsCount(map[string]interface{}{}, relationships)
	assert.Nil(t, count)
}

func TestResolveParticipantsCount_NoRelationships(t *testing.T) {
	count := resolveParticipantsCount(map[string]interface{}{}, nil)
	assert.Nil(t, count)
}

func TestInYear_StartedAtMatches(t *testing.T) {
	attributes := map[string]interface{}{
		"started_at": "2024-03-01T12:00:00Z",
		"created_at": "2023-12-31T23:59:59Z",
	}
	assert.True(t, inYear(attributes, 2024))
}

func TestInYear_AllDatesInPreviousYear(t *testing.T) {
	attributes := map[string]interface{}{
		"started_at": "2023-03-01T12:00:00Z",
		"starts_at":  "2023-03-01T12:00:00Z",
		"created_at": "2023-01-01T00:00:00Z",
	}
	assert.False(t, inYear(attributes, 2024))
}

func TestInYear_LegacyStartsAtAlias(t *testing.T) {
	attributes := map[string]interface{}{
		"starts_at": "2024-07-04T00:00:00Z",
	}
	assert.True(t, inYear(attributes, 2024))
}

func TestInYear_UnparseableDatesAreSkipped(t *testing.T) {
	attributes := map[string]interface{}{
		"started_at": "garbage",
		"starts_at":  "more garbage",
		"created_at": "still garbage",
	}
	assert.False(t, inYear(attributes, 2024))
}

func TestParseDate_AcceptedFormats(t *testing.T) {
	for _, raw := range []string{
		"2024-05-01T10:00:00Z",
		"2024-05-01T10:00:00+00:00",
		"2024-05-01T10:00:00-05:00",
		"2024-05-01T10:00:00",
		"2024-05-01",
	} {
		parsed, err := parseDate(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, 2024, parsed.Year(), raw)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := parseDate("yesterday")
	assert.Error(t, err)
}

func TestNormalizeTournament_MissingFieldsBecomeEmpty(t *testing.T) {
	tournament := normalizeTournament(map[string]interface{}{
		"id":   "1",
		"name": "Sparse",
	})
	assert.Equal(t, "1", tournament.Id)
	assert.Equal(t, "Sparse", tournament.Name)
	assert.Empty(t, tournament.Url)
	assert.Empty(t, tournament.State)
	assert.Empty(t, tournament.GameName)
	assert.Empty(t, tournament.ParticipantsCount)
	assert.Empty(t, tournament.CompletedAt)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", stringify(nil))
	assert.Equal(t, "text", stringify("text"))
	assert.Equal(t, "16", stringify(float64(16)))
	assert.Equal(t, "3.5", stringify(float64(3.5)))
	assert.Equal(t, "7", stringify(7))
}
