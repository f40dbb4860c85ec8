package tscproj

import (
	"fmt"
	"math"
	"strconv"

	"github.com/twardoch/tscprojpy/pkg/jsonval"
)

// MinSupportedVersion is the oldest format revision the loader accepts.
// Revisions 1.0 through 3.0 predate the timing semantics the transforms
// rely on and are rejected outright.
const MinSupportedVersion = "4.0"

const minSupportedNumeric = 4.0

// baseEditRate is the tick rate of the oldest supported revision. Unit
// scales are expressed relative to it.
const baseEditRate = 60

// knownEditRates maps the revisions with documented timing semantics to
// their default tick rates. Newer revisions are accepted as long as they
// declare their own edit rate.
var knownEditRates = map[string]int64{
	"4.0": 60,
	"9.0": 705600000,
}

// FormatVersion describes a document's revision and the timing unit all
// of its temporal quantities are expressed in.
type FormatVersion struct {
	Version   string
	EditRate  int64
	UnitScale float64 // edit rate relative to the oldest supported revision
}

// normalizeVersion reads the version and editRate fields, applies the
// per-revision defaults, and decides whether the document is supported.
func normalizeVersion(root *jsonval.Object) (FormatVersion, []Warning, error) {
	var warns []Warning

	declared := ""
	if v, ok := root.Get("version"); ok {
		if v.Kind != jsonval.StringKind {
			return FormatVersion{}, nil, MalformedDocumentError{Path: "version", Message: "version must be a string"}
		}
		declared = v.Str
	}
	if declared == "" {
		return FormatVersion{}, nil, UnsupportedVersionError{}
	}
	num, err := strconv.ParseFloat(declared, 64)
	if err != nil || num < minSupportedNumeric {
		return FormatVersion{}, nil, UnsupportedVersionError{Version: declared}
	}

	defaultRate, known := knownEditRates[declared]
	if !known {
		warns = append(warns, Warning{
			Code:    WarnVersionCompat,
			Path:    "version",
			Message: fmt.Sprintf("version %s is newer than any documented revision; using its declared edit rate", declared),
		})
	}

	rate, declaredRate, err := editRateField(root)
	if err != nil {
		return FormatVersion{}, warns, err
	}
	switch {
	case declaredRate:
		if !documentedRate(rate) {
			warns = append(warns, Warning{
				Code:    WarnVersionCompat,
				Path:    "editRate",
				Message: fmt.Sprintf("edit rate %d is not a documented rate; temporal quantities are interpreted as declared", rate),
			})
		}
	case known:
		rate = defaultRate
		warns = append(warns, Warning{
			Code:    WarnVersionCompat,
			Path:    "editRate",
			Message: fmt.Sprintf("no editRate field; assuming %d ticks per second for version %s", defaultRate, declared),
		})
	default:
		return FormatVersion{}, warns, MalformedDocumentError{Path: "editRate", Message: "missing required field for an undocumented version"}
	}

	return FormatVersion{
		Version:   declared,
		EditRate:  rate,
		UnitScale: float64(rate) / baseEditRate,
	}, warns, nil
}

func editRateField(root *jsonval.Object) (rate int64, declared bool, err error) {
	v, ok := root.Get("editRate")
	if !ok {
		return 0, false, nil
	}
	if v.Kind != jsonval.NumberKind {
		return 0, false, MalformedDocumentError{Path: "editRate", Message: "edit rate must be a number"}
	}
	f, ferr := v.Float64()
	if ferr != nil {
		return 0, false, MalformedDocumentError{Path: "editRate", Message: "unreadable edit rate", Err: ferr}
	}
	if f <= 0 {
		return 0, false, MalformedDocumentError{Path: "editRate", Message: fmt.Sprintf("edit rate must be positive, got %v", f)}
	}
	if f != math.Trunc(f) {
		return 0, false, MalformedDocumentError{Path: "editRate", Message: fmt.Sprintf("edit rate must be an integer, got %v", f)}
	}
	return int64(f), true, nil
}

func documentedRate(rate int64) bool {
	for _, r := range knownEditRates {
		if r == rate {
			return true
		}
	}
	return false
}
