package gallery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"art-therapy-server/modules/common/apperror"
	"art-therapy-server/modules/common/model"
)

type failingArtworks struct{}

func (failingArtworks) CreateArtwork(ctx context.Context, a *model.Artwork) (*model.Artwork, error) {
	return nil, apperror.ErrPersistence
}

func (failingArtworks) FindArtworkByID(ctx context.Context, id string) (*model.Artwork, error) {
	return nil, apperror.ErrPersistence
}

func (failingArtworks) FindArtworks(ctx context.Context, f model.ArtworkFilter, limit, offset int) ([]model.Artwork, int, error) {
	return nil, 0, apperror.ErrPersistence
}

func (failingArtworks) UpdateArtwork(ctx context.Context, id string, p model.ArtworkPatch) (*model.Artwork, error) {
	return nil, apperror.ErrPersistence
}

func (failingArtworks) DeleteArtwork(ctx context.Context, id string) error {
	return apperror.ErrPersistence
}

func TestService_WrapsStoreErrors(t *testing.T) {
	s := NewService(failingArtworks{}, false)
	ctx := context.Background()

	_, listErr := s.List(ctx, model.ArtworkFilter{}, 20, 0)
	_, getErr := s.Get(ctx, "x")
	_, saveErr := s.Save(ctx, &model.Artwork{ImageURL: "u", Prompt: "p"})
	deleteErr := s.Delete(ctx, "x")
	_, favErr := s.ToggleFavorite(ctx, "x")

	tests := []struct {
		err    error
		prefix string
	}{
		{listErr, "failed to retrieve gallery: "},
		{getErr, "failed to retrieve artwork details: "},
		{saveErr, "failed to save artwork: "},
		{deleteErr, "failed to delete artwork: "},
		{favErr, "failed to toggle favorite: "},
	}
	for _, tt := range tests {
		if tt.err == nil || !strings.HasPrefix(tt.err.Error(), tt.prefix) {
			t.Errorf("error = %v, want prefix %q", tt.err, tt.prefix)
			continue
		}
		if !errors.Is(tt.err, apperror.ErrPersistence) {
			t.Errorf("%q should wrap ErrPersistence", tt.err)
		}
	}
}

type recordingArtworks struct {
	failingArtworks
	saved []*model.Artwork
	patch model.ArtworkPatch
}

func (r *recordingArtworks) CreateArtwork(ctx context.Context, a *model.Artwork) (*model.Artwork, error) {
	r.saved = append(r.saved, a)
	return a, nil
}

func (r *recordingArtworks) UpdateArtwork(ctx context.Context, id string, p model.ArtworkPatch) (*model.Artwork, error) {
	r.patch = p
	return &model.Artwork{ID: id, IsFavorite: true}, nil
}

func TestService_SavePromptGuard(t *testing.T) {
	prompt := "An explicit sense of calm over the harbor"

	open := &recordingArtworks{}
	if _, err := NewService(open, false).Save(context.Background(), &model.Artwork{ImageURL: "u", Prompt: prompt}); err != nil {
		t.Fatalf("Save() without guard error = %v", err)
	}
	if len(open.saved) != 1 {
		t.Errorf("saved %d artworks, want 1", len(open.saved))
	}

	guarded := &recordingArtworks{}
	_, err := NewService(guarded, true).Save(context.Background(), &model.Artwork{ImageURL: "u", Prompt: prompt})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("Save() with guard error = %v, want validation error", err)
	}
	if len(guarded.saved) != 0 {
		t.Error("guarded save should not reach the store")
	}
}

func TestService_ToggleFavoriteDelegatesToStore(t *testing.T) {
	artworks := &recordingArtworks{}

	got, err := NewService(artworks, false).ToggleFavorite(context.Background(), "a1")
	if err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}
	if !artworks.patch.ToggleFavorite || artworks.patch.IsFavorite != nil {
		t.Errorf("patch = %+v, want a store-side toggle", artworks.patch)
	}
	if got.ID != "a1" || !got.IsFavorite {
		t.Errorf("ToggleFavorite() = %+v", got)
	}
}
