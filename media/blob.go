package media

import (
	"errors"
	"fmt"
	"sync"

	"github.com/segmentio/ksuid"
)

var (
	ErrNoFile   = errors.New("upload has no file name")
	ErrTooLarge = errors.New("upload exceeds size limit")
)

// Blob is a stored upload, retrievable by the ref handed out at resolve time.
type Blob struct {
	Name        string
	ContentType string
	Data        []byte
}

// BlobProvider keeps uploaded bytes in memory and hands out serve-path refs.
// Everything it holds dies with the process; there is no disk behind it.
type BlobProvider struct {
	mu       sync.Mutex
	blobs    map[string]Blob
	maxBytes int
}

// NewBlobProvider creates a provider enforcing maxBytes per upload.
// maxBytes <= 0 disables the limit.
func NewBlobProvider(maxBytes int) *BlobProvider {
	return &BlobProvider{
		blobs:    make(map[string]Blob),
		maxBytes: maxBytes,
	}
}

// Accepts reports whether the upload could be resolved later. Used to
// reject bad selections at pick time instead of at submit.
func (p *BlobProvider) Accepts(up Upload) error {
	if up.Name == "" {
		return ErrNoFile
	}
	if p.maxBytes > 0 && len(up.Data) > p.maxBytes {
		return ErrTooLarge
	}
	return nil
}

// Resolve stores the upload and returns a playable handle for it.
func (p *BlobProvider) Resolve(up Upload) (Handle, error) {
	if err := p.Accepts(up); err != nil {
		return Handle{}, err
	}

	id, err := ksuid.NewRandom()
	if err != nil {
		return Handle{}, fmt.Errorf("generate blob id: %w", err)
	}

	p.mu.Lock()
	p.blobs[id.String()] = Blob{
		Name:        up.Name,
		ContentType: up.ContentType,
		Data:        up.Data,
	}
	p.mu.Unlock()

	return Handle{
		Ref:  "/api/media/" + id.String(),
		Kind: KindOf(up.ContentType),
	}, nil
}

// Get returns the blob stored under id.
func (p *BlobProvider) Get(id string) (Blob, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.blobs[id]
	return b, ok
}
