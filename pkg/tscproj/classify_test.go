package tscproj

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		kind MediaKind
		want Rule
	}{
		{"width", MediaVideo, SpatialLinear},
		{"height", MediaNone, SpatialLinear},
		{"widthAttr", MediaCallout, SpatialLinear},
		{"translation0", MediaCallout, SpatialLinear},
		{"translation2", MediaAudio, SpatialLinear},
		{"geometryCrop3", MediaVideo, SpatialLinear},
		{"corner-radius", MediaCallout, SpatialLinear},
		{"stroke-width", MediaCallout, SpatialLinear},
		{"default-width", MediaUnified, SpatialLinear},
		{"default-translation1", MediaVideo, SpatialLinear},
		{"scale0", MediaVideo, ScaleFactorPassthrough},
		{"scale2", MediaImage, ScaleFactorPassthrough},
		{"default-scale", MediaImage, ScaleFactorPassthrough},
		{"default-scale1", MediaVideo, ScaleFactorPassthrough},
		{"rect", MediaNone, SpatialArrayElementwise},
		{"trackRect", MediaNone, SpatialArrayElementwise},
		{"start", MediaVideo, TemporalLinear},
		{"start", MediaAudio, TemporalLinear},
		{"duration", MediaVideo, TemporalLinear},
		{"duration", MediaAudio, TemporalPreserveDuration},
		{"mediaStart", MediaAudio, TemporalPreserveDuration},
		{"mediaDuration", MediaAudio, TemporalPreserveDuration},
		{"mediaDuration", MediaGroup, TemporalLinear},
		{"trimStartSum", MediaAudio, TemporalLinear},
		{"range", MediaNone, TemporalLinear},
		{"time", MediaVideo, TemporalLinear},
		{"endTime", MediaVideo, TemporalLinear},
		{"sampleRate", MediaNone, Unclassified},
		{"integratedLUFS", MediaNone, Unclassified},
		{"editRate", MediaNone, Unclassified},
		{"id", MediaVideo, Unclassified},
		{"opacity", MediaVideo, Unclassified},
		{"audioMuted", MediaNone, Unclassified},
	}
	for _, tt := range tests {
		if got := Classify(tt.name, tt.kind); got != tt.want {
			t.Errorf("Classify(%q, %s) = %s, want %s", tt.name, tt.kind, got, tt.want)
		}
	}
}
