package feed

import (
	"errors"
	"sync"

	"clipfeed/media"
)

// ErrDraftIncomplete is returned when submit is attempted while the draft
// is missing a required field or a file.
var ErrDraftIncomplete = errors.New("draft is missing required fields")

// DraftState labels where the draft sits in its lifecycle. Validity is not
// a state of its own; it is derived continuously from the fields.
type DraftState string

const (
	DraftEmpty   DraftState = "empty"
	DraftEditing DraftState = "editing"
)

// Draft tracks an in-progress upload. It never holds feed state: until a
// valid submit it produces nothing, and after submit it resets to empty.
type Draft struct {
	mu         sync.Mutex
	name       string
	location   string
	file       *media.Upload
	dragActive bool
}

func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SetName(name string) {
	d.mu.Lock()
	d.name = name
	d.mu.Unlock()
}

func (d *Draft) SetLocation(location string) {
	d.mu.Lock()
	d.location = location
	d.mu.Unlock()
}

// SelectFile records a file chosen through the picker. The most recent
// selection replaces any prior one.
func (d *Draft) SelectFile(up media.Upload) {
	d.mu.Lock()
	d.file = &up
	d.mu.Unlock()
}

// DropFile records a file delivered by drag-and-drop. Drop and picker are
// two producers for the same single slot, last write wins.
func (d *Draft) DropFile(up media.Upload) {
	d.SelectFile(up)
	d.SetDragActive(false)
}

// SetDragActive tracks whether a drag is hovering the drop target. Purely
// presentational; it never affects validity.
func (d *Draft) SetDragActive(active bool) {
	d.mu.Lock()
	d.dragActive = active
	d.mu.Unlock()
}

// CanSubmit reports whether the draft is submittable: name, location and a
// selected file must all be present.
func (d *Draft) CanSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.valid()
}

func (d *Draft) valid() bool {
	return d.name != "" && d.location != "" && d.file != nil
}

// Submit resolves the selected file into a playable handle, appends the
// resulting post to the store and resets the draft. An invalid draft is
// rejected outright; nothing is partially submitted.
func (d *Draft) Submit(store *Store, provider media.Provider) (Post, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.valid() {
		return Post{}, ErrDraftIncomplete
	}

	handle, err := provider.Resolve(*d.file)
	if err != nil {
		return Post{}, err
	}

	post, err := store.AddPost(Candidate{
		Name:      d.name,
		Location:  d.location,
		MediaRef:  handle.Ref,
		MediaKind: handle.Kind,
	})
	if err != nil {
		return Post{}, err
	}

	d.reset()
	return post, nil
}

// Cancel discards all edits and the selected file without submitting.
func (d *Draft) Cancel() {
	d.mu.Lock()
	d.reset()
	d.mu.Unlock()
}

func (d *Draft) reset() {
	d.name = ""
	d.location = ""
	d.file = nil
	d.dragActive = false
}

// DraftView is a read snapshot of the draft for rendering the upload form.
type DraftView struct {
	State      DraftState `json:"state"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	FileName   string     `json:"file_name,omitempty"`
	FileType   string     `json:"file_type,omitempty"`
	DragActive bool       `json:"drag_active"`
	CanSubmit  bool       `json:"can_submit"`
}

// View returns the current draft snapshot.
func (d *Draft) View() DraftView {
	d.mu.Lock()
	defer d.mu.Unlock()

	v := DraftView{
		State:      DraftEditing,
		Name:       d.name,
		Location:   d.location,
		DragActive: d.dragActive,
		CanSubmit:  d.valid(),
	}
	if d.name == "" && d.location == "" && d.file == nil {
		v.State = DraftEmpty
	}
	if d.file != nil {
		v.FileName = d.file.Name
		v.FileType = d.file.ContentType
	}
	return v
}
