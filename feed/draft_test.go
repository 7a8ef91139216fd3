package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipfeed/media"
)

func audioUpload() media.Upload {
	return media.Upload{
		Name:        "surah-al-fatiha.mp3",
		ContentType: "audio/mpeg",
		Data:        []byte("mp3 bytes"),
	}
}

func TestDraft_StartsEmpty(t *testing.T) {
	d := NewDraft()

	v := d.View()
	assert.Equal(t, DraftEmpty, v.State)
	assert.False(t, v.CanSubmit)
}

func TestDraft_ValidityGating(t *testing.T) {
	d := NewDraft()

	d.SetName("Reader1")
	assert.False(t, d.CanSubmit())
	assert.Equal(t, DraftEditing, d.View().State)

	d.SetLocation("Cairo")
	assert.False(t, d.CanSubmit(), "file still missing")

	d.SelectFile(audioUpload())
	assert.True(t, d.CanSubmit())

	// Clearing any one field disables submit again
	d.SetName("")
	assert.False(t, d.CanSubmit())

	d.SetName("Reader1")
	assert.True(t, d.CanSubmit())
	d.SetLocation("")
	assert.False(t, d.CanSubmit())
}

func TestDraft_DragStateIsPresentationalOnly(t *testing.T) {
	d := NewDraft()
	d.SetName("Reader1")
	d.SetLocation("Cairo")
	d.SelectFile(audioUpload())

	d.SetDragActive(true)
	assert.True(t, d.View().DragActive)
	assert.True(t, d.CanSubmit(), "drag hover must not affect validity")

	d.SetDragActive(false)
	assert.True(t, d.CanSubmit())
}

func TestDraft_PickerAndDropShareOneSlot(t *testing.T) {
	d := NewDraft()

	d.SelectFile(media.Upload{Name: "first.mp3", ContentType: "audio/mpeg"})
	assert.Equal(t, "first.mp3", d.View().FileName)

	// A drop replaces the picker selection and clears drag hover
	d.SetDragActive(true)
	d.DropFile(media.Upload{Name: "second.mp4", ContentType: "video/mp4"})
	v := d.View()
	assert.Equal(t, "second.mp4", v.FileName)
	assert.False(t, v.DragActive)

	// And a later picker selection replaces the drop
	d.SelectFile(media.Upload{Name: "third.mp3", ContentType: "audio/mpeg"})
	assert.Equal(t, "third.mp3", d.View().FileName)
}

func TestDraft_SubmitCreatesPostAndResets(t *testing.T) {
	d := NewDraft()
	s := NewStore()
	p := media.NewBlobProvider(0)

	d.SetName("Reader1")
	d.SetLocation("Cairo")
	d.SelectFile(audioUpload())

	post, err := d.Submit(s, p)
	require.NoError(t, err)

	assert.Equal(t, "Reader1", post.Name)
	assert.Equal(t, "Cairo", post.Location)
	assert.Equal(t, media.KindAudio, post.MediaKind)
	assert.Equal(t, 0, post.LikeCount)
	assert.False(t, post.Favorite)
	assert.NotEmpty(t, post.MediaRef)

	require.Len(t, s.All(), 1)
	assert.Equal(t, post.ID, s.All()[0].ID)

	// Submitted drafts reset to empty
	v := d.View()
	assert.Equal(t, DraftEmpty, v.State)
	assert.Empty(t, v.Name)
	assert.Empty(t, v.FileName)
	assert.False(t, v.CanSubmit)
}

func TestDraft_SubmitClassifiesVideo(t *testing.T) {
	d := NewDraft()
	s := NewStore()
	p := media.NewBlobProvider(0)

	d.SetName("Reader2")
	d.SetLocation("Istanbul")
	d.DropFile(media.Upload{Name: "clip.mp4", ContentType: "video/mp4", Data: []byte("x")})

	post, err := d.Submit(s, p)
	require.NoError(t, err)
	assert.Equal(t, media.KindVideo, post.MediaKind)
}

func TestDraft_SubmitRejectedWhenIncomplete(t *testing.T) {
	d := NewDraft()
	s := NewStore()
	p := media.NewBlobProvider(0)

	d.SetName("X")

	_, err := d.Submit(s, p)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
	assert.Empty(t, s.All(), "rejected submit must not touch the feed")

	// Fields survive a rejected submit; nothing was consumed
	assert.Equal(t, "X", d.View().Name)
}

func TestDraft_SubmitKeepsDraftOnProviderError(t *testing.T) {
	d := NewDraft()
	s := NewStore()
	p := media.NewBlobProvider(4) // tiny limit

	d.SetName("Reader1")
	d.SetLocation("Cairo")
	d.SelectFile(audioUpload())

	_, err := d.Submit(s, p)
	assert.ErrorIs(t, err, media.ErrTooLarge)
	assert.Empty(t, s.All())
	assert.True(t, d.CanSubmit(), "draft keeps its state when resolve fails")
}

func TestDraft_Cancel(t *testing.T) {
	d := NewDraft()

	d.SetName("Reader1")
	d.SetLocation("Cairo")
	d.SelectFile(audioUpload())
	d.SetDragActive(true)

	d.Cancel()

	v := d.View()
	assert.Equal(t, DraftEmpty, v.State)
	assert.Empty(t, v.Name)
	assert.Empty(t, v.Location)
	assert.Empty(t, v.FileName)
	assert.False(t, v.DragActive)
}
