package activities

import (
	"sort"
	"strings"
)

// EffortStyle determines whether a day's intensity is best represented
// by summed distance or by summed time.
type EffortStyle string

const (
	DistanceStyle EffortStyle = "distance"
	DurationStyle EffortStyle = "duration"
)

type TypeInfo struct {
	Type  string      `json:"type"`
	Label string      `json:"label"`
	Emoji string      `json:"emoji"`
	Style EffortStyle `json:"style"`
}

// typeCatalog is the static activity-type lookup table: display label,
// emoji and effort style per known type. Strength, conditioning, mobility
// and interval classes are duration-style; everything else, unknown types
// included, is distance-style.
var typeCatalog = map[string]TypeInfo{
	"run":              {Type: "Run", Label: "Run", Emoji: "🏃", Style: DistanceStyle},
	"trailrun":         {Type: "TrailRun", Label: "Trail Run", Emoji: "⛰️", Style: DistanceStyle},
	"virtualrun":       {Type: "VirtualRun", Label: "Virtual Run", Emoji: "🏃", Style: DistanceStyle},
	"ride":             {Type: "Ride", Label: "Ride", Emoji: "🚴", Style: DistanceStyle},
	"virtualride":      {Type: "VirtualRide", Label: "Virtual Ride", Emoji: "🚴", Style: DistanceStyle},
	"gravelride":       {Type: "GravelRide", Label: "Gravel Ride", Emoji: "🚵", Style: DistanceStyle},
	"mountainbikeride": {Type: "MountainBikeRide", Label: "Mountain Bike Ride", Emoji: "🚵", Style: DistanceStyle},
	"ebikeride":        {Type: "EBikeRide", Label: "E-Bike Ride", Emoji: "🚴", Style: DistanceStyle},
	"swim":             {Type: "Swim", Label: "Swim", Emoji: "🏊", Style: DistanceStyle},
	"walk":             {Type: "Walk", Label: "Walk", Emoji: "🚶", Style: DistanceStyle},
	"hike":             {Type: "Hike", Label: "Hike", Emoji: "🥾", Style: DistanceStyle},
	"rowing":           {Type: "Rowing", Label: "Rowing", Emoji: "🚣", Style: DistanceStyle},
	"kayaking":         {Type: "Kayaking", Label: "Kayaking", Emoji: "🛶", Style: DistanceStyle},
	"alpineski":        {Type: "AlpineSki", Label: "Alpine Ski", Emoji: "⛷️", Style: DistanceStyle},
	"nordicski":        {Type: "NordicSki", Label: "Nordic Ski", Emoji: "🎿", Style: DistanceStyle},
	"snowboard":        {Type: "Snowboard", Label: "Snowboard", Emoji: "🏂", Style: DistanceStyle},
	"inlineskate":      {Type: "InlineSkate", Label: "Inline Skate", Emoji: "🛼", Style: DistanceStyle},

	"weighttraining": {Type: "WeightTraining", Label: "Weight Training", Emoji: "🏋️", Style: DurationStyle},
	"workout":        {Type: "Workout", Label: "Workout", Emoji: "💪", Style: DurationStyle},
	"crossfit":       {Type: "Crossfit", Label: "Crossfit", Emoji: "🏋️", Style: DurationStyle},
	"hiit":           {Type: "HIIT", Label: "HIIT", Emoji: "🔥", Style: DurationStyle},
	"yoga":           {Type: "Yoga", Label: "Yoga", Emoji: "🧘", Style: DurationStyle},
	"pilates":        {Type: "Pilates", Label: "Pilates", Emoji: "🧘", Style: DurationStyle},
	"stretching":     {Type: "Stretching", Label: "Stretching", Emoji: "🤸", Style: DurationStyle},
	"elliptical":     {Type: "Elliptical", Label: "Elliptical", Emoji: "💪", Style: DurationStyle},
	"stairstepper":   {Type: "StairStepper", Label: "Stair Stepper", Emoji: "🪜", Style: DurationStyle},
	"rockclimbing":   {Type: "RockClimbing", Label: "Rock Climbing", Emoji: "🧗", Style: DurationStyle},
}

// TypeInfoFor returns the catalog entry for the given activity-type label.
// Unknown labels get a generic distance-style entry, per the fallback rule.
func TypeInfoFor(label string) TypeInfo {
	if info, ok := typeCatalog[normalizeTypeLabel(label)]; ok {
		return info
	}
	return TypeInfo{
		Type:  label,
		Label: label,
		Emoji: "🏅",
		Style: DistanceStyle,
	}
}

func IsDurationStyle(label string) bool {
	return TypeInfoFor(label).Style == DurationStyle
}

// AllTypes lists the known catalog entries, sorted by type name.
func AllTypes() []TypeInfo {
	all := make([]TypeInfo, 0, len(typeCatalog))
	for _, info := range typeCatalog {
		all = append(all, info)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Type < all[j].Type
	})
	return all
}

func normalizeTypeLabel(label string) string {
	normalized := strings.ToLower(label)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	return normalized
}
