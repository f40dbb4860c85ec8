package tscproj

import "fmt"

// MalformedDocumentError reports input that cannot be understood as a
// project document: invalid JSON, a non-object root, or a required
// structural field that is missing or has the wrong shape.
type MalformedDocumentError struct {
	Path    string // document location, empty for document-level problems
	Message string
	Err     error
}

func (e MalformedDocumentError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		}
	}
	if e.Path != "" {
		return fmt.Sprintf("malformed document at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("malformed document: %s", msg)
}

func (e MalformedDocumentError) Unwrap() error { return e.Err }

// UnsupportedVersionError reports a document whose declared format
// revision predates MinSupportedVersion, or cannot be interpreted as a
// revision at all. A document without a version field counts as the
// oldest known revision and is rejected too.
type UnsupportedVersionError struct {
	Version string // declared version, empty when the field is absent
}

func (e UnsupportedVersionError) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("document has no version field; versions before %s are not supported", MinSupportedVersion)
	}
	return fmt.Sprintf("project version %q is not supported (minimum %s)", e.Version, MinSupportedVersion)
}

// InvalidFactorError reports a non-positive scale factor passed to a
// transform.
type InvalidFactorError struct {
	Factor float64
}

func (e InvalidFactorError) Error() string {
	return fmt.Sprintf("scale factor must be positive, got %v", e.Factor)
}

// InvalidTimelineError reports a temporal transform that would leave a
// media item with a non-positive duration.
type InvalidTimelineError struct {
	MediaID  int64
	Duration float64
}

func (e InvalidTimelineError) Error() string {
	return fmt.Sprintf("media %d would have non-positive duration %v after scaling", e.MediaID, e.Duration)
}

// WarningCode identifies a class of non-fatal finding.
type WarningCode string

const (
	// WarnVersionCompat flags revisions or edit rates outside the
	// documented set that are accepted on a best-effort basis.
	WarnVersionCompat WarningCode = "version-compat"
	// WarnOpaqueMedia flags a media record with an unrecognized type tag;
	// it is preserved verbatim but never transformed.
	WarnOpaqueMedia WarningCode = "opaque-media"
	// WarnKeyframeOrder flags keyframes whose times are not ascending;
	// the order is kept as found.
	WarnKeyframeOrder WarningCode = "keyframe-order"
	// WarnDuplicateMediaID flags a media id that appears more than once
	// in the document.
	WarnDuplicateMediaID WarningCode = "duplicate-media-id"
)

// Warning is a non-fatal finding collected while loading a document. It
// is returned to the caller next to the result rather than logged, so the
// caller decides how to surface it.
type Warning struct {
	Code    WarningCode `json:"code"`
	Path    string      `json:"path,omitempty"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	if w.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", w.Code, w.Message, w.Path)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
