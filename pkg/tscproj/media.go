package tscproj

import "github.com/twardoch/tscprojpy/pkg/jsonval"

// MediaKind is the closed set of media variants the engine understands.
type MediaKind int

const (
	// MediaNone marks properties with no enclosing media: the canvas,
	// source bin entries, and transitions.
	MediaNone MediaKind = iota
	// MediaOpaque is the degrade-gracefully variant for unrecognized type
	// tags. An opaque record is preserved verbatim and never transformed.
	MediaOpaque
	MediaVideo
	MediaImage
	MediaAudio
	MediaCallout
	MediaUnified
	MediaGroup
)

func (k MediaKind) String() string {
	switch k {
	case MediaNone:
		return "none"
	case MediaOpaque:
		return "opaque"
	case MediaVideo:
		return "video"
	case MediaImage:
		return "image"
	case MediaAudio:
		return "audio"
	case MediaCallout:
		return "callout"
	case MediaUnified:
		return "unified"
	case MediaGroup:
		return "group"
	}
	return "unknown"
}

// mediaKindForTag maps a record's "_type" tag to its variant. Tags not
// listed here make the record opaque.
var mediaKindForTag = map[string]MediaKind{
	"VMFile":        MediaVideo,
	"ScreenVMFile":  MediaVideo,
	"StitchedMedia": MediaVideo,
	"IMFile":        MediaImage,
	"AMFile":        MediaAudio,
	"Callout":       MediaCallout,
	"UnifiedMedia":  MediaUnified,
	"Group":         MediaGroup,
}

// Media is one item placed on a timeline track. Timing fields are in
// edit-rate ticks. The view is read only; fields the model does not
// interpret stay in the underlying record and survive a save untouched.
type Media struct {
	Kind    MediaKind
	TypeTag string

	ID        int64
	SourceRef int64 // source bin id this item points at, 0 when none

	Start         float64 // position on the timeline
	Duration      float64 // length on the timeline
	MediaStart    float64 // trim offset into the source
	MediaDuration float64 // trimmed source length
	Scalar        float64 // playback rate, 1 when absent

	Parameters []Parameter
	Effects    []Effect

	Children []*Media // group members
	Video    *Media   // video side of a unified pair
	Audio    *Media   // audio side of a unified pair

	raw *jsonval.Object
}

// Parameter is one entry of a media's parameters object: either a plain
// literal or an animated property with keyframes.
type Parameter struct {
	Name     string
	Literal  jsonval.Value // valid when Animated is nil
	Animated *AnimatedProperty
}

// AnimatedProperty is a parameter value that changes over time.
type AnimatedProperty struct {
	Type         string
	DefaultValue jsonval.Value
	Keyframes    []Keyframe

	raw *jsonval.Object
}

// Keyframe is one sample of an animated property. Time fields are in
// edit-rate ticks.
type Keyframe struct {
	Time     float64
	EndTime  float64
	Duration float64
	Value    jsonval.Value
	Interp   string

	raw *jsonval.Object
}

// Effect is one entry of a media's effects list.
type Effect struct {
	Name string

	raw *jsonval.Object
}
