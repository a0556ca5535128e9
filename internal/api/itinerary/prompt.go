package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

func getPreferencesPrompt(message string, tripContext *types.TripContext) string {
	ctx := tripContext
	if ctx == nil {
		ctx = &types.TripContext{}
	}
	ctxJSON, err := json.Marshal(ctx)
	if err != nil {
		ctxJSON = []byte("{}")
	}
	return fmt.Sprintf(`Extract travel plan preferences from this message. Return JSON only, no markdown.
Message: %q
Context: %s

Return this exact JSON shape:
{
  "days": number (1-7, default 1),
  "categories": string[] (from: %s),
  "vibes": string[] (e.g. romantic, adventurous, relaxed, party, cultural),
  "groupType": string (%s),
  "planName": string (short descriptive name for the plan),
  "maxStopsPerDay": number (3-6, based on pace)
}`, message, ctxJSON, strings.Join(types.AllowedCategories, ", "), strings.Join(types.AllowedGroupTypes, "/"))
}

// cleanJSONResponse strips markdown code fences and any prose around the JSON object.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(strings.TrimSpace(response), "```")
	response = strings.TrimSpace(response)

	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace <= firstBrace {
		return response
	}
	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}
