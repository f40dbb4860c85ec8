package tscproj

import "github.com/twardoch/tscprojpy/pkg/jsonval"

// Project is the root of a loaded document. The typed fields are read
// only views; the complete document, including every field the model does
// not interpret, is carried underneath and re-emitted verbatim on save.
type Project struct {
	Version     FormatVersion
	Title       string
	Description string
	Author      string
	Canvas      Canvas
	Sources     []SourceItem
	Timeline    Timeline

	root *jsonval.Object
}

// Canvas holds the project-level composition settings.
type Canvas struct {
	Width                 float64
	Height                float64
	FrameRate             float64
	AudioSampleRate       float64
	TargetLoudness        float64
	LoudnessNormalization bool
}

// SourceItem is one imported media file in the source bin.
type SourceItem struct {
	ID     int64
	Path   string // file path the item was imported from
	Rect   []float64
	Tracks []SourceTrack

	raw *jsonval.Object
}

// SourceTrackType tells what a source track carries.
type SourceTrackType int

const (
	SourceVideo SourceTrackType = 0
	SourceImage SourceTrackType = 1
	SourceAudio SourceTrackType = 2
)

func (t SourceTrackType) String() string {
	switch t {
	case SourceVideo:
		return "video"
	case SourceImage:
		return "image"
	case SourceAudio:
		return "audio"
	}
	return "unknown"
}

// SourceTrack is one stream inside a source item.
type SourceTrack struct {
	Type      SourceTrackType
	Range     []float64
	TrackRect []float64
	// SampleRate is kept in its raw form: documents write it either as a
	// number or as a rational string like "44100/1".
	SampleRate jsonval.Value

	raw *jsonval.Object
}

// Timeline is the edit: an ordered list of tracks.
type Timeline struct {
	ID     int64
	Tracks []Track

	raw *jsonval.Object
}

// Track is one horizontal lane of the timeline.
type Track struct {
	Index       int64
	Medias      []*Media
	Transitions []Transition
	Muted       bool
	Hidden      bool
	Solo        bool
	Magnetic    bool

	raw *jsonval.Object
}

// Transition joins two adjacent media items on a track. Duration is in
// edit-rate ticks; media ids are 0 when the side is open.
type Transition struct {
	Name       string
	Duration   float64
	LeftMedia  int64
	RightMedia int64

	raw *jsonval.Object
}

// DurationTicks returns the end of the last media item across all tracks,
// in edit-rate ticks.
func (p *Project) DurationTicks() float64 {
	var max float64
	for _, tr := range p.Timeline.Tracks {
		for _, m := range tr.Medias {
			if end := m.Start + m.Duration; end > max {
				max = end
			}
		}
	}
	return max
}

// DurationSeconds returns the timeline duration converted through the
// document's edit rate.
func (p *Project) DurationSeconds() float64 {
	if p.Version.EditRate <= 0 {
		return 0
	}
	return p.DurationTicks() / float64(p.Version.EditRate)
}

// TrackCount returns the number of timeline tracks.
func (p *Project) TrackCount() int { return len(p.Timeline.Tracks) }

// MediaCount returns the number of items placed on the timeline, not
// counting group members.
func (p *Project) MediaCount() int {
	n := 0
	for _, tr := range p.Timeline.Tracks {
		n += len(tr.Medias)
	}
	return n
}

// SourceCount returns the number of source bin entries.
func (p *Project) SourceCount() int { return len(p.Sources) }
