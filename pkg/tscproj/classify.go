package tscproj

// Rule tells the transform engine how a property reacts to scaling.
type Rule int

const (
	// Unclassified properties pass through untouched.
	Unclassified Rule = iota
	// SpatialLinear multiplies a length or position by the spatial factor.
	SpatialLinear
	// SpatialArrayElementwise multiplies every element of a rectangle
	// array by the spatial factor.
	SpatialArrayElementwise
	// ScaleFactorPassthrough marks dimensionless zoom components that
	// spatial scaling leaves unchanged: the canvas and the pixel sizes
	// grow together, so relative zoom stays valid.
	ScaleFactorPassthrough
	// TemporalLinear multiplies a tick quantity by the temporal factor.
	TemporalLinear
	// TemporalPreserveDuration marks duration fields of audio-bearing
	// media that temporal scaling must not stretch.
	TemporalPreserveDuration
)

func (r Rule) String() string {
	switch r {
	case Unclassified:
		return "unclassified"
	case SpatialLinear:
		return "spatial-linear"
	case SpatialArrayElementwise:
		return "spatial-array"
	case ScaleFactorPassthrough:
		return "scale-passthrough"
	case TemporalLinear:
		return "temporal-linear"
	case TemporalPreserveDuration:
		return "temporal-preserve"
	}
	return "unknown"
}

var spatialLinearProps = map[string]bool{
	"width":                true,
	"height":               true,
	"widthAttr":            true,
	"heightAttr":           true,
	"translation0":         true,
	"translation1":         true,
	"translation2":         true,
	"geometryCrop0":        true,
	"geometryCrop1":        true,
	"geometryCrop2":        true,
	"geometryCrop3":        true,
	"corner-radius":        true,
	"stroke-width":         true,
	"default-width":        true,
	"default-height":       true,
	"default-translation0": true,
	"default-translation1": true,
	"default-translation2": true,
}

var scaleFactorProps = map[string]bool{
	"scale0":         true,
	"scale1":         true,
	"scale2":         true,
	"default-scale":  true,
	"default-scale0": true,
	"default-scale1": true,
	"default-scale2": true,
}

var spatialArrayProps = map[string]bool{
	"rect":      true,
	"trackRect": true,
}

var temporalProps = map[string]bool{
	"start":         true,
	"duration":      true,
	"mediaStart":    true,
	"mediaDuration": true,
	"trimStartSum":  true,
	"time":          true,
	"endTime":       true,
	"range":         true,
}

// audioPreservedProps are the temporal properties that pin an audio clip
// to its recorded length: the clip moves on the timeline but is never
// stretched.
var audioPreservedProps = map[string]bool{
	"duration":      true,
	"mediaStart":    true,
	"mediaDuration": true,
}

// Classify maps a property name and its enclosing media variant to a
// transformation rule. Names not enumerated here are Unclassified; the
// engine leaves them exactly as read.
func Classify(name string, kind MediaKind) Rule {
	switch {
	case spatialArrayProps[name]:
		return SpatialArrayElementwise
	case scaleFactorProps[name]:
		return ScaleFactorPassthrough
	case spatialLinearProps[name]:
		return SpatialLinear
	case temporalProps[name]:
		if kind == MediaAudio && audioPreservedProps[name] {
			return TemporalPreserveDuration
		}
		return TemporalLinear
	default:
		return Unclassified
	}
}
