package tscproj

import (
	"fmt"
	"math"

	"github.com/twardoch/tscprojpy/pkg/jsonval"
)

// Load parses a project document, checks its revision and required
// structure, and builds the typed model. Non-fatal findings, such as
// undocumented revisions, unrecognized media tags, or out-of-order
// keyframes, come back as warnings next to the project. Fatal problems
// return a MalformedDocumentError or UnsupportedVersionError.
func Load(data []byte) (*Project, []Warning, error) {
	root, err := parseRoot(data)
	if err != nil {
		return nil, nil, err
	}
	fv, warns, err := normalizeVersion(root)
	if err != nil {
		return nil, warns, err
	}
	if err := validateStructure(root); err != nil {
		return nil, warns, err
	}
	return extractProject(root, fv, &warns), warns, nil
}

func parseRoot(data []byte) (*jsonval.Object, error) {
	v, err := jsonval.Parse(data)
	if err != nil {
		return nil, MalformedDocumentError{Message: "invalid JSON", Err: err}
	}
	if v.Kind != jsonval.ObjectKind {
		return nil, MalformedDocumentError{Message: fmt.Sprintf("top-level value is %s, want object", v.Kind)}
	}
	return v.Obj, nil
}

// validateStructure enforces the fields a document cannot do without.
// Everything else degrades to zero-valued views instead of failing.
func validateStructure(root *jsonval.Object) error {
	for _, dim := range []string{"width", "height"} {
		v, ok := root.Get(dim)
		if !ok {
			return MalformedDocumentError{Path: dim, Message: "missing canvas dimension"}
		}
		if v.Kind != jsonval.NumberKind {
			return MalformedDocumentError{Path: dim, Message: "canvas dimension must be a number"}
		}
		if f, err := v.Float64(); err != nil || f <= 0 {
			return MalformedDocumentError{Path: dim, Message: "canvas dimension must be positive"}
		}
	}
	sb, ok := root.Get("sourceBin")
	if !ok {
		return MalformedDocumentError{Path: "sourceBin", Message: "missing source list"}
	}
	if sb.Kind != jsonval.ArrayKind {
		return MalformedDocumentError{Path: "sourceBin", Message: "source list must be an array"}
	}
	tl, ok := root.Get("timeline")
	if !ok {
		return MalformedDocumentError{Path: "timeline", Message: "missing timeline"}
	}
	if tl.Kind != jsonval.ObjectKind {
		return MalformedDocumentError{Path: "timeline", Message: "timeline must be an object"}
	}
	return nil
}

// extractProject builds the typed views over root. It tolerates missing
// or oddly shaped optional fields and never fails; warns may be nil when
// the caller does not want findings, as when rebuilding views after a
// transform.
func extractProject(root *jsonval.Object, fv FormatVersion, warns *[]Warning) *Project {
	x := &extractor{warns: warns, seenIDs: make(map[int64]string)}
	p := &Project{
		Version:     fv,
		Title:       getString(root, "title"),
		Description: getString(root, "description"),
		Author:      getString(root, "author"),
		Canvas: Canvas{
			Width:                 getNumber(root, "width", 0),
			Height:                getNumber(root, "height", 0),
			FrameRate:             getNumber(root, "videoFormatFrameRate", 0),
			AudioSampleRate:       getNumber(root, "audioFormatSampleRate", 0),
			TargetLoudness:        getNumber(root, "targetLoudness", 0),
			LoudnessNormalization: getBool(root, "shouldApplyLoudnessNormalization"),
		},
		root: root,
	}
	if sb, ok := root.Get("sourceBin"); ok && sb.Kind == jsonval.ArrayKind {
		for _, item := range sb.Elems {
			if item.Kind != jsonval.ObjectKind {
				continue
			}
			p.Sources = append(p.Sources, extractSourceItem(item.Obj))
		}
	}
	if tl, ok := root.Get("timeline"); ok && tl.Kind == jsonval.ObjectKind {
		p.Timeline = x.timeline(tl.Obj)
	}
	return p
}

type extractor struct {
	warns   *[]Warning
	seenIDs map[int64]string // media id to the path of its first use
}

func (x *extractor) warn(code WarningCode, path, format string, args ...any) {
	if x.warns == nil {
		return
	}
	*x.warns = append(*x.warns, Warning{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (x *extractor) timeline(obj *jsonval.Object) Timeline {
	tl := Timeline{ID: getInt(obj, "id", 0), raw: obj}
	forEachTrackObject(obj, func(sceneIdx, trackIdx int, track *jsonval.Object) {
		path := fmt.Sprintf("timeline.sceneTrack.scenes[%d].csml.tracks[%d]", sceneIdx, trackIdx)
		tl.Tracks = append(tl.Tracks, x.track(track, path))
	})
	return tl
}

// forEachTrackObject walks timeline.sceneTrack.scenes[*].csml.tracks[*],
// skipping anything that does not have the expected shape.
func forEachTrackObject(timeline *jsonval.Object, fn func(sceneIdx, trackIdx int, track *jsonval.Object)) {
	st, ok := timeline.Get("sceneTrack")
	if !ok || st.Kind != jsonval.ObjectKind {
		return
	}
	scenes, ok := st.Obj.Get("scenes")
	if !ok || scenes.Kind != jsonval.ArrayKind {
		return
	}
	for si, scene := range scenes.Elems {
		if scene.Kind != jsonval.ObjectKind {
			continue
		}
		csml, ok := scene.Obj.Get("csml")
		if !ok || csml.Kind != jsonval.ObjectKind {
			continue
		}
		tracks, ok := csml.Obj.Get("tracks")
		if !ok || tracks.Kind != jsonval.ArrayKind {
			continue
		}
		for ti, tr := range tracks.Elems {
			if tr.Kind != jsonval.ObjectKind {
				continue
			}
			fn(si, ti, tr.Obj)
		}
	}
}

func (x *extractor) track(obj *jsonval.Object, path string) Track {
	t := Track{
		Index:    getInt(obj, "trackIndex", 0),
		Muted:    getBool(obj, "audioMuted"),
		Hidden:   getBool(obj, "videoHidden"),
		Solo:     getBool(obj, "solo"),
		Magnetic: getBool(obj, "magnetic"),
		raw:      obj,
	}
	if ms, ok := obj.Get("medias"); ok && ms.Kind == jsonval.ArrayKind {
		for i, mv := range ms.Elems {
			if mv.Kind != jsonval.ObjectKind {
				continue
			}
			t.Medias = append(t.Medias, x.media(mv.Obj, fmt.Sprintf("%s.medias[%d]", path, i)))
		}
	}
	if ts, ok := obj.Get("transitions"); ok && ts.Kind == jsonval.ArrayKind {
		for _, tv := range ts.Elems {
			if tv.Kind != jsonval.ObjectKind {
				continue
			}
			t.Transitions = append(t.Transitions, extractTransition(tv.Obj))
		}
	}
	return t
}

func (x *extractor) media(obj *jsonval.Object, path string) *Media {
	tag := getString(obj, "_type")
	kind, known := mediaKindForTag[tag]
	if !known {
		x.warn(WarnOpaqueMedia, path, "unrecognized media type %q is preserved but will not be transformed", tag)
		return &Media{Kind: MediaOpaque, TypeTag: tag, raw: obj}
	}
	return x.typedMedia(obj, kind, tag, path)
}

func (x *extractor) typedMedia(obj *jsonval.Object, kind MediaKind, tag, path string) *Media {
	m := &Media{
		Kind:          kind,
		TypeTag:       tag,
		ID:            getInt(obj, "id", 0),
		SourceRef:     getInt(obj, "src", 0),
		Start:         getNumber(obj, "start", 0),
		Duration:      getNumber(obj, "duration", 0),
		MediaStart:    getNumber(obj, "mediaStart", 0),
		MediaDuration: getNumber(obj, "mediaDuration", 0),
		Scalar:        getNumber(obj, "scalar", 1),
		raw:           obj,
	}
	if obj.Has("id") {
		if prev, dup := x.seenIDs[m.ID]; dup {
			x.warn(WarnDuplicateMediaID, path, "media id %d already used at %s", m.ID, prev)
		} else {
			x.seenIDs[m.ID] = path
		}
	}
	m.Parameters = x.parameters(obj, path)
	m.Effects = extractEffects(obj)
	switch kind {
	case MediaGroup:
		if ms, ok := obj.Get("medias"); ok && ms.Kind == jsonval.ArrayKind {
			for i, child := range ms.Elems {
				if child.Kind != jsonval.ObjectKind {
					continue
				}
				m.Children = append(m.Children, x.media(child.Obj, fmt.Sprintf("%s.medias[%d]", path, i)))
			}
		}
	case MediaUnified:
		m.Video = x.unifiedSide(obj, "video", MediaVideo, path)
		m.Audio = x.unifiedSide(obj, "audio", MediaAudio, path)
	}
	return m
}

// unifiedSide extracts one half of a unified pair. The nested records
// usually carry no type tag of their own; the member key decides then.
func (x *extractor) unifiedSide(obj *jsonval.Object, key string, fallback MediaKind, parent string) *Media {
	v, ok := obj.Get(key)
	if !ok || v.Kind != jsonval.ObjectKind {
		return nil
	}
	path := parent + "." + key
	if tag := getString(v.Obj, "_type"); tag != "" {
		return x.media(v.Obj, path)
	}
	return x.typedMedia(v.Obj, fallback, "", path)
}

func (x *extractor) parameters(obj *jsonval.Object, path string) []Parameter {
	pv, ok := obj.Get("parameters")
	if !ok || pv.Kind != jsonval.ObjectKind {
		return nil
	}
	var params []Parameter
	for _, name := range pv.Obj.Keys() {
		v, _ := pv.Obj.Get(name)
		p := Parameter{Name: name}
		if ap := x.animated(v, fmt.Sprintf("%s.parameters.%s", path, name)); ap != nil {
			p.Animated = ap
		} else {
			p.Literal = v
		}
		params = append(params, p)
	}
	return params
}

// animated recognizes the keyframed form of a parameter value: an object
// with a keyframes array. Anything else returns nil so the caller keeps
// the value as a literal.
func (x *extractor) animated(v jsonval.Value, path string) *AnimatedProperty {
	if v.Kind != jsonval.ObjectKind {
		return nil
	}
	kfs, ok := v.Obj.Get("keyframes")
	if !ok || kfs.Kind != jsonval.ArrayKind {
		return nil
	}
	ap := &AnimatedProperty{Type: getString(v.Obj, "type"), raw: v.Obj}
	if dv, ok := v.Obj.Get("defaultValue"); ok {
		ap.DefaultValue = dv
	}
	prev := math.Inf(-1)
	for i, kv := range kfs.Elems {
		if kv.Kind != jsonval.ObjectKind {
			continue
		}
		kf := Keyframe{
			Time:     getNumber(kv.Obj, "time", 0),
			EndTime:  getNumber(kv.Obj, "endTime", 0),
			Duration: getNumber(kv.Obj, "duration", 0),
			Interp:   getString(kv.Obj, "interp"),
			raw:      kv.Obj,
		}
		if val, ok := kv.Obj.Get("value"); ok {
			kf.Value = val
		}
		if kf.Time < prev {
			x.warn(WarnKeyframeOrder, fmt.Sprintf("%s.keyframes[%d]", path, i), "keyframe time %v is before the previous keyframe; order kept as found", kf.Time)
		}
		prev = kf.Time
		ap.Keyframes = append(ap.Keyframes, kf)
	}
	return ap
}

func extractSourceItem(obj *jsonval.Object) SourceItem {
	s := SourceItem{
		ID:   getInt(obj, "id", 0),
		Path: getString(obj, "src"),
		Rect: numberSlice(obj, "rect"),
		raw:  obj,
	}
	if ts, ok := obj.Get("sourceTracks"); ok && ts.Kind == jsonval.ArrayKind {
		for _, tv := range ts.Elems {
			if tv.Kind != jsonval.ObjectKind {
				continue
			}
			st := SourceTrack{
				Type:      SourceTrackType(getInt(tv.Obj, "type", 0)),
				Range:     numberSlice(tv.Obj, "range"),
				TrackRect: numberSlice(tv.Obj, "trackRect"),
				raw:       tv.Obj,
			}
			if sr, ok := tv.Obj.Get("sampleRate"); ok {
				st.SampleRate = sr
			}
			s.Tracks = append(s.Tracks, st)
		}
	}
	return s
}

func extractTransition(obj *jsonval.Object) Transition {
	return Transition{
		Name:       getString(obj, "name"),
		Duration:   getNumber(obj, "duration", 0),
		LeftMedia:  getInt(obj, "leftMedia", 0),
		RightMedia: getInt(obj, "rightMedia", 0),
		raw:        obj,
	}
}

func extractEffects(obj *jsonval.Object) []Effect {
	ev, ok := obj.Get("effects")
	if !ok || ev.Kind != jsonval.ArrayKind {
		return nil
	}
	var effects []Effect
	for _, e := range ev.Elems {
		if e.Kind != jsonval.ObjectKind {
			continue
		}
		effects = append(effects, Effect{Name: getString(e.Obj, "effectName"), raw: e.Obj})
	}
	return effects
}

func getString(o *jsonval.Object, key string) string {
	if v, ok := o.Get(key); ok && v.Kind == jsonval.StringKind {
		return v.Str
	}
	return ""
}

func getNumber(o *jsonval.Object, key string, def float64) float64 {
	if v, ok := o.Get(key); ok && v.Kind == jsonval.NumberKind {
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return def
}

func getInt(o *jsonval.Object, key string, def int64) int64 {
	return int64(getNumber(o, key, float64(def)))
}

func getBool(o *jsonval.Object, key string) bool {
	if v, ok := o.Get(key); ok && v.Kind == jsonval.BoolKind {
		return v.Bool
	}
	return false
}

func numberSlice(o *jsonval.Object, key string) []float64 {
	v, ok := o.Get(key)
	if !ok || v.Kind != jsonval.ArrayKind {
		return nil
	}
	out := make([]float64, 0, len(v.Elems))
	for _, e := range v.Elems {
		if e.Kind != jsonval.NumberKind {
			continue
		}
		if f, err := e.Float64(); err == nil {
			out = append(out, f)
		}
	}
	return out
}
