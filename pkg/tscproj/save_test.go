package tscproj

import (
	"bytes"
	"strings"
	"testing"

	"github.com/twardoch/tscprojpy/pkg/jsonval"
)

const unknownFieldsDoc = `{
  "version": "9.0",
  "editRate": 705600000,
  "zeta": {"nested": [1, 2.5, "x", null, true], "未知": "日本語"},
  "width": 1920,
  "height": 1080,
  "alpha": 1e-3,
  "sourceBin": [],
  "timeline": {
    "futureTimelineFlag": {"enabled": true},
    "sceneTrack": {"scenes": []}
  },
  "trailing": 0.30000000000000004
}`

func TestSaveKeepsUnknownFieldsAndOrder(t *testing.T) {
	p, _, err := Load([]byte(unknownFieldsDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	out, err := Save(p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	in, err := jsonval.Parse([]byte(unknownFieldsDoc))
	if err != nil {
		t.Fatalf("parse input: %v", err)
	}
	back, err := jsonval.Parse(out)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if !jsonval.Equal(in, back) {
		t.Fatalf("document changed across load/save:\n%s", out)
	}

	s := string(out)
	for _, want := range []string{`"zeta"`, `"未知": "日本語"`, `"alpha": 1e-3`, `"futureTimelineFlag"`, `"trailing": 0.30000000000000004`} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s in:\n%s", want, s)
		}
	}
	if strings.Index(s, `"zeta"`) > strings.Index(s, `"width"`) {
		t.Errorf("field order changed:\n%s", s)
	}
}

func TestSaveIsStableAcrossReload(t *testing.T) {
	for _, doc := range []string{sampleDoc, unknownFieldsDoc} {
		p, _, err := Load([]byte(doc))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		first, err := Save(p)
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		p2, _, err := Load(first)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		second, err := Save(p2)
		if err != nil {
			t.Fatalf("save again: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("serialization is not a fixed point:\n%s\n--\n%s", first, second)
		}
	}
}

func TestSaveAfterTransformStaysParseable(t *testing.T) {
	p := loadDoc(t, sampleDoc)
	scaled, err := ScaleSpatial(p, 1.5)
	if err != nil {
		t.Fatalf("ScaleSpatial: %v", err)
	}
	out, err := Save(scaled)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, warns, err := Load(out)
	if err != nil {
		t.Fatalf("reload of transformed project: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	if again.Canvas.Width != 2880 || again.Canvas.Height != 1620 {
		t.Errorf("canvas = %vx%v, want 2880x1620", again.Canvas.Width, again.Canvas.Height)
	}
}
