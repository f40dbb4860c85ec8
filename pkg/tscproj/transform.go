package tscproj

import (
	"math"

	"github.com/twardoch/tscprojpy/pkg/jsonval"
)

// ScaleSpatial returns a copy of the project with every length and
// position multiplied by factor: canvas dimensions, media geometry,
// source rectangles, and the values of spatial keyframes. Dimensionless
// zoom components (scale0 through scale2) and all timing stay untouched.
// Factor 1 returns an identical copy.
func ScaleSpatial(p *Project, factor float64) (*Project, error) {
	if !(factor > 0) {
		return nil, InvalidFactorError{Factor: factor}
	}
	return transform(p, factors{spatial: factor, temporal: 1})
}

// ScaleTemporal returns a copy of the project with every timing quantity
// multiplied by factor. Audio-bearing media keep their duration,
// mediaStart, and mediaDuration: the clip moves to its scaled start but
// plays at its recorded length. Factor 1 returns an identical copy.
func ScaleTemporal(p *Project, factor float64) (*Project, error) {
	if !(factor > 0) {
		return nil, InvalidFactorError{Factor: factor}
	}
	return transform(p, factors{spatial: 1, temporal: factor})
}

type factors struct {
	spatial  float64
	temporal float64
}

func transform(p *Project, f factors) (*Project, error) {
	root := p.root.Clone()
	t := transformer{f: f}
	if err := t.project(root); err != nil {
		return nil, err
	}
	return extractProject(root, p.Version, nil), nil
}

type transformer struct {
	f factors
}

func (t transformer) factorFor(rule Rule) float64 {
	switch rule {
	case SpatialLinear, SpatialArrayElementwise:
		return t.f.spatial
	case TemporalLinear:
		return t.f.temporal
	default:
		return 1
	}
}

func (t transformer) project(root *jsonval.Object) error {
	t.scanObject(root, MediaNone)
	if sb, ok := root.Get("sourceBin"); ok && sb.Kind == jsonval.ArrayKind {
		for _, item := range sb.Elems {
			if item.Kind == jsonval.ObjectKind {
				t.sourceItem(item.Obj)
			}
		}
	}
	if tl, ok := root.Get("timeline"); ok && tl.Kind == jsonval.ObjectKind {
		if err := t.timeline(tl.Obj); err != nil {
			return err
		}
	}
	return nil
}

func (t transformer) sourceItem(obj *jsonval.Object) {
	t.scanObject(obj, MediaNone)
	if ts, ok := obj.Get("sourceTracks"); ok && ts.Kind == jsonval.ArrayKind {
		for _, tr := range ts.Elems {
			if tr.Kind == jsonval.ObjectKind {
				t.scanObject(tr.Obj, MediaNone)
			}
		}
	}
}

func (t transformer) timeline(obj *jsonval.Object) error {
	var werr error
	forEachTrackObject(obj, func(_, _ int, track *jsonval.Object) {
		if werr != nil {
			return
		}
		werr = t.track(track)
	})
	return werr
}

func (t transformer) track(obj *jsonval.Object) error {
	if ms, ok := obj.Get("medias"); ok && ms.Kind == jsonval.ArrayKind {
		for _, m := range ms.Elems {
			if m.Kind != jsonval.ObjectKind {
				continue
			}
			if err := t.media(m.Obj); err != nil {
				return err
			}
		}
	}
	if ts, ok := obj.Get("transitions"); ok && ts.Kind == jsonval.ArrayKind {
		for _, tr := range ts.Elems {
			if tr.Kind == jsonval.ObjectKind {
				t.scanObject(tr.Obj, MediaNone)
			}
		}
	}
	return nil
}

func (t transformer) media(obj *jsonval.Object) error {
	kind, known := mediaKindForTag[getString(obj, "_type")]
	if !known {
		// opaque records pass through verbatim
		return nil
	}
	return t.mediaAs(obj, kind)
}

func (t transformer) mediaAs(obj *jsonval.Object, kind MediaKind) error {
	t.scanObject(obj, kind)
	for _, container := range []string{"parameters", "def", "attributes"} {
		if cv, ok := obj.Get(container); ok && cv.Kind == jsonval.ObjectKind {
			t.scanObject(cv.Obj, kind)
		}
	}
	if ev, ok := obj.Get("effects"); ok && ev.Kind == jsonval.ArrayKind {
		for _, e := range ev.Elems {
			if e.Kind != jsonval.ObjectKind {
				continue
			}
			if pv, ok := e.Obj.Get("parameters"); ok && pv.Kind == jsonval.ObjectKind {
				t.scanObject(pv.Obj, kind)
			}
		}
	}
	switch kind {
	case MediaGroup:
		if ms, ok := obj.Get("medias"); ok && ms.Kind == jsonval.ArrayKind {
			for _, child := range ms.Elems {
				if child.Kind != jsonval.ObjectKind {
					continue
				}
				if err := t.media(child.Obj); err != nil {
					return err
				}
			}
		}
	case MediaUnified:
		if err := t.unifiedSide(obj, "video", MediaVideo); err != nil {
			return err
		}
		if err := t.unifiedSide(obj, "audio", MediaAudio); err != nil {
			return err
		}
	}
	return t.checkDuration(obj, kind)
}

func (t transformer) unifiedSide(obj *jsonval.Object, key string, fallback MediaKind) error {
	v, ok := obj.Get(key)
	if !ok || v.Kind != jsonval.ObjectKind {
		return nil
	}
	kind := fallback
	if tag := getString(v.Obj, "_type"); tag != "" {
		k, known := mediaKindForTag[tag]
		if !known {
			return nil
		}
		kind = k
	}
	return t.mediaAs(v.Obj, kind)
}

// checkDuration rejects a temporal result that leaves a non-audio item
// with nothing to play.
func (t transformer) checkDuration(obj *jsonval.Object, kind MediaKind) error {
	if t.f.temporal == 1 || kind == MediaAudio {
		return nil
	}
	v, ok := obj.Get("duration")
	if !ok || v.Kind != jsonval.NumberKind {
		return nil
	}
	f, err := v.Float64()
	if err != nil || f > 0 {
		return nil
	}
	return InvalidTimelineError{MediaID: getInt(obj, "id", 0), Duration: f}
}

// scanObject applies name-based rules to an object's direct members.
// Unclassified members stay untouched, except that animated values
// always get their time axis scaled.
func (t transformer) scanObject(obj *jsonval.Object, kind MediaKind) {
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		obj.Set(key, t.applyRule(v, Classify(key, kind)))
	}
}

func (t transformer) applyRule(v jsonval.Value, rule Rule) jsonval.Value {
	switch v.Kind {
	case jsonval.NumberKind:
		return t.scaleNumber(v, rule)
	case jsonval.ArrayKind:
		return t.scaleElements(v, rule)
	case jsonval.ObjectKind:
		t.applyToStructured(v.Obj, rule)
	}
	return v
}

// applyToStructured handles the two object-shaped value forms: a
// keyframed animation, or a literal wrapped under a value key.
func (t transformer) applyToStructured(obj *jsonval.Object, rule Rule) {
	if kfs, ok := obj.Get("keyframes"); ok && kfs.Kind == jsonval.ArrayKind {
		t.animated(obj, rule)
		return
	}
	for _, key := range []string{"value", "defaultValue"} {
		if v, ok := obj.Get(key); ok && v.Kind == jsonval.NumberKind {
			obj.Set(key, t.scaleNumber(v, rule))
		}
	}
}

// animated scales an animation's value axis by the property's rule and
// its time axis by the temporal factor. The two axes are independent: a
// spatial property's keyframes move in time only under temporal scaling,
// and their values change only under spatial scaling.
func (t transformer) animated(obj *jsonval.Object, rule Rule) {
	for _, key := range []string{"defaultValue", "value"} {
		if v, ok := obj.Get(key); ok {
			obj.Set(key, t.scaleValueAxis(v, rule))
		}
	}
	kfs, _ := obj.Get("keyframes")
	for _, kv := range kfs.Elems {
		if kv.Kind != jsonval.ObjectKind {
			continue
		}
		kf := kv.Obj
		if v, ok := kf.Get("value"); ok {
			kf.Set("value", t.scaleValueAxis(v, rule))
		}
		for _, timeKey := range []string{"time", "endTime", "duration"} {
			if v, ok := kf.Get(timeKey); ok && v.Kind == jsonval.NumberKind {
				kf.Set(timeKey, t.scaleNumber(v, TemporalLinear))
			}
		}
	}
}

func (t transformer) scaleValueAxis(v jsonval.Value, rule Rule) jsonval.Value {
	switch v.Kind {
	case jsonval.NumberKind:
		return t.scaleNumber(v, rule)
	case jsonval.ArrayKind:
		return t.scaleElements(v, rule)
	}
	return v
}

func (t transformer) scaleElements(v jsonval.Value, rule Rule) jsonval.Value {
	if t.factorFor(rule) == 1 {
		return v
	}
	elems := make([]jsonval.Value, len(v.Elems))
	for i, e := range v.Elems {
		if e.Kind == jsonval.NumberKind {
			elems[i] = t.scaleNumber(e, rule)
		} else {
			elems[i] = e
		}
	}
	return jsonval.Value{Kind: jsonval.ArrayKind, Elems: elems}
}

// scaleNumber multiplies a numeric literal by the rule's factor while
// keeping its shape: integer literals round to the nearest integer, ties
// away from zero, and float literals stay floats. A factor of 1 returns
// the literal unchanged.
func (t transformer) scaleNumber(v jsonval.Value, rule Rule) jsonval.Value {
	factor := t.factorFor(rule)
	if factor == 1 {
		return v
	}
	f, err := v.Float64()
	if err != nil {
		return v
	}
	scaled := f * factor
	if jsonval.IsIntLiteral(v.Num) {
		return jsonval.Int(roundToInt(scaled))
	}
	return jsonval.Float(scaled)
}

func roundToInt(x float64) int64 {
	r := math.Round(x)
	switch {
	case r >= math.MaxInt64:
		return math.MaxInt64
	case r <= math.MinInt64:
		return math.MinInt64
	}
	return int64(r)
}
