// Package media turns selected files into playable references for the feed.
package media

import "strings"

// Kind classifies a playable handle by its source content type.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// KindOf classifies a content type. Anything that is not audio is treated
// as playable video, including unrelated types. Known over-broad default,
// kept deliberately.
func KindOf(contentType string) Kind {
	if strings.HasPrefix(contentType, "audio") {
		return KindAudio
	}
	return KindVideo
}

// Upload is a selected file: a name, a declared content type, and the bytes.
type Upload struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Handle is an opaque playable reference plus its classification.
type Handle struct {
	Ref  string `json:"ref"`
	Kind Kind   `json:"kind"`
}

// Provider converts an upload into a playable handle.
type Provider interface {
	Resolve(up Upload) (Handle, error)
}
