package tscproj

import (
	"errors"
	"testing"

	"github.com/twardoch/tscprojpy/pkg/jsonval"
)

func parseObject(t *testing.T, doc string) *jsonval.Object {
	t.Helper()
	v, err := jsonval.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	if v.Kind != jsonval.ObjectKind {
		t.Fatalf("fixture is %s, want object", v.Kind)
	}
	return v.Obj
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantRate  int64
		wantScale float64
		warnings  int
	}{
		{"legacy with rate", `{"version": "4.0", "editRate": 60}`, 60, 1, 0},
		{"current with rate", `{"version": "9.0", "editRate": 705600000}`, 705600000, 11760000, 0},
		{"legacy without rate", `{"version": "4.0"}`, 60, 1, 1},
		{"current without rate", `{"version": "9.0"}`, 705600000, 11760000, 1},
		{"newer with documented rate", `{"version": "12.0", "editRate": 705600000}`, 705600000, 11760000, 1},
		{"undocumented rate", `{"version": "9.0", "editRate": 30}`, 30, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv, warns, err := normalizeVersion(parseObject(t, tt.doc))
			if err != nil {
				t.Fatalf("normalizeVersion: %v", err)
			}
			if fv.EditRate != tt.wantRate {
				t.Errorf("edit rate = %d, want %d", fv.EditRate, tt.wantRate)
			}
			if fv.UnitScale != tt.wantScale {
				t.Errorf("unit scale = %v, want %v", fv.UnitScale, tt.wantScale)
			}
			if len(warns) != tt.warnings {
				t.Errorf("got %d warnings, want %d: %v", len(warns), tt.warnings, warns)
			}
			for _, w := range warns {
				if w.Code != WarnVersionCompat {
					t.Errorf("warning code = %s, want %s", w.Code, WarnVersionCompat)
				}
			}
		})
	}
}

func TestNormalizeVersionRejectsOldRevisions(t *testing.T) {
	for _, doc := range []string{
		`{"version": "1.0"}`,
		`{"version": "2.0", "editRate": 60}`,
		`{"version": "3.9"}`,
		`{}`,
		`{"version": "not-a-number"}`,
	} {
		_, _, err := normalizeVersion(parseObject(t, doc))
		var verr UnsupportedVersionError
		if !errors.As(err, &verr) {
			t.Errorf("doc %s: got %v, want UnsupportedVersionError", doc, err)
		}
	}
}

func TestNormalizeVersionMalformed(t *testing.T) {
	for _, doc := range []string{
		`{"version": "9.0", "editRate": "fast"}`,
		`{"version": "9.0", "editRate": 0}`,
		`{"version": "9.0", "editRate": -60}`,
		`{"version": "9.0", "editRate": 59.94}`,
		`{"version": "12.0"}`,
		`{"version": 9}`,
	} {
		_, _, err := normalizeVersion(parseObject(t, doc))
		var merr MalformedDocumentError
		if !errors.As(err, &merr) {
			t.Errorf("doc %s: got %v, want MalformedDocumentError", doc, err)
		}
	}
}
