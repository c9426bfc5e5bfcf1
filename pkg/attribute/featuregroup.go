// Package attribute implements the GDTF standard attribute catalogue
// and the normalized AttributeValue scalar that every fixture channel
// ultimately resolves to.
package attribute

// FeatureGroup is the coarse category every standard Attribute belongs
// to. Custom attributes have no feature group.
type FeatureGroup int

const (
	FeatureGroupDimmer FeatureGroup = iota
	FeatureGroupPosition
	FeatureGroupGobo
	FeatureGroupColor
	FeatureGroupBeam
	FeatureGroupFocus
	FeatureGroupControl
	FeatureGroupShapers
	FeatureGroupVideo
)

var featureGroupNames = [...]string{
	"Dimmer", "Position", "Gobo", "Color", "Beam", "Focus", "Control", "Shapers", "Video",
}

func (g FeatureGroup) String() string {
	if int(g) < 0 || int(g) >= len(featureGroupNames) {
		return "Unknown"
	}
	return featureGroupNames[g]
}

// FeatureGroups lists all nine feature groups in their canonical order,
// used by callers that must enumerate every preset family (§3.1).
func FeatureGroups() []FeatureGroup {
	return []FeatureGroup{
		FeatureGroupDimmer, FeatureGroupPosition, FeatureGroupGobo, FeatureGroupColor,
		FeatureGroupBeam, FeatureGroupFocus, FeatureGroupControl, FeatureGroupShapers, FeatureGroupVideo,
	}
}
