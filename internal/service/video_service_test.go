package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"stillmind/backend/internal/dto"
	"stillmind/backend/internal/repository"
)

func newFavoriteFixture() (*mockFavoriteRepo, FavoriteService) {
	favorites := newMockFavoriteRepo()
	repo := &repository.Repository{Favorite: favorites}
	svc := NewFavoriteService(repo, "https://www.youtube.com/embed", zap.NewNop())
	return favorites, svc
}

func TestCreateFavorite(t *testing.T) {
	_, svc := newFavoriteFixture()

	resp, err := svc.Create(context.Background(), &dto.CreateFavoriteRequest{
		UserID:  "user-1",
		VideoID: "inpok4MKVLM",
		Title:   "5-Minute Meditation",
		Tags:    []string{"short", "beginner"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.ID == "" {
		t.Error("favorite must carry a store-assigned id")
	}
	if resp.EmbedURL != "https://www.youtube.com/embed/inpok4MKVLM" {
		t.Errorf("embed_url = %q", resp.EmbedURL)
	}
}

func TestCreateFavorite_Duplicate(t *testing.T) {
	_, svc := newFavoriteFixture()
	ctx := context.Background()

	req := &dto.CreateFavoriteRequest{UserID: "user-1", VideoID: "inpok4MKVLM", Title: "5-Minute Meditation"}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrFavoriteExists) {
		t.Fatalf("expected ErrFavoriteExists, got %v", err)
	}

	// same video for a different user is fine
	other := &dto.CreateFavoriteRequest{UserID: "user-2", VideoID: "inpok4MKVLM", Title: "5-Minute Meditation"}
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("other user create: %v", err)
	}
}

func TestListFavorites(t *testing.T) {
	_, svc := newFavoriteFixture()
	ctx := context.Background()

	for _, id := range []string{"vid-a", "vid-b"} {
		if _, err := svc.Create(ctx, &dto.CreateFavoriteRequest{UserID: "user-1", VideoID: id, Title: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	list, err := svc.List(ctx, &dto.FavoriteListRequest{UserID: "user-1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(list))
	}

	if _, err := svc.List(ctx, &dto.FavoriteListRequest{}); !errors.Is(err, ErrUserIDRequired) {
		t.Fatalf("expected ErrUserIDRequired, got %v", err)
	}
}

func TestDeleteFavorite(t *testing.T) {
	_, svc := newFavoriteFixture()
	ctx := context.Background()

	resp, err := svc.Create(ctx, &dto.CreateFavoriteRequest{UserID: "user-1", VideoID: "vid-a", Title: "A"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, resp.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, resp.ID); !errors.Is(err, ErrFavoriteNotFound) {
		t.Fatalf("second delete should report not-found, got %v", err)
	}
}
