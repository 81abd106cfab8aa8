package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"feedapi/internal/apperr"
	"feedapi/internal/models"
	"feedapi/internal/repository"
	"feedapi/internal/storage"
)

// ImageUpload is a file received with a multipart request.
type ImageUpload struct {
	FileName string
	File     io.Reader
	Size     int64
}

type CreatePostRequest struct {
	Title   string
	Content string
	Image   *ImageUpload
}

// UpdatePostRequest carries either a replacement file (Image) or the image
// URL the client wants to keep (ImageURL). At least one must be present.
type UpdatePostRequest struct {
	Title    string
	Content  string
	ImageURL string
	Image    *ImageUpload
}

type FeedService interface {
	ListPosts(ctx context.Context, page, pageSize int) ([]models.Post, int, error)
	CreatePost(ctx context.Context, creatorID string, req CreatePostRequest) (*models.Post, *models.User, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	UpdatePost(ctx context.Context, requesterID, postID string, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, requesterID, postID string) error
}

type feedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	storage  storage.Storage
	logger   *slog.Logger
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository, storage storage.Storage, logger *slog.Logger) FeedService {
	return &feedService{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// ListPosts returns one page of posts in creation order plus the total count.
// Pages beyond the last yield an empty slice, not an error.
func (s *feedService) ListPosts(ctx context.Context, page, pageSize int) ([]models.Post, int, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	posts, err := s.postRepo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// CreatePost uploads the image, persists the post and links it into the
// creator's owned-post index. The two writes are not transactional: if the
// link write fails the post row stays behind without a back-reference.
func (s *feedService) CreatePost(ctx context.Context, creatorID string, req CreatePostRequest) (*models.Post, *models.User, error) {
	if req.Image == nil {
		return nil, nil, apperr.New(apperr.Validation, "No image provided.")
	}

	creator, err := s.userRepo.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, nil, err
	}

	objectName, imageURL, err := s.storage.UploadImage(ctx, req.Image.FileName, req.Image.File, req.Image.Size)
	if err != nil {
		return nil, nil, err
	}

	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		ImageURL:  imageURL,
		CreatorID: creatorID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.removeImageAsync(objectName)
		return nil, nil, err
	}

	if err := s.userRepo.AddPost(ctx, creatorID, post.PostID); err != nil {
		s.logger.Error("post created but not linked to creator",
			"postId", post.PostID, "creatorId", creatorID, "error", err)
		return nil, nil, err
	}

	return post, creator, nil
}

func (s *feedService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// UpdatePost replaces title, content and image of an owned post. When a new
// file is supplied the previous object is removed best-effort.
func (s *feedService) UpdatePost(ctx context.Context, requesterID, postID string, req UpdatePostRequest) (*models.Post, error) {
	if req.Image == nil && req.ImageURL == "" {
		return nil, apperr.New(apperr.Validation, "No image file added.")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.CreatorID != requesterID {
		return nil, apperr.New(apperr.Forbidden, "Not authorized.")
	}

	imageURL := req.ImageURL
	if req.Image != nil {
		_, imageURL, err = s.storage.UploadImage(ctx, req.Image.FileName, req.Image.File, req.Image.Size)
		if err != nil {
			return nil, err
		}
	}

	oldImageURL := post.ImageURL

	post.Title = req.Title
	post.Content = req.Content
	post.ImageURL = imageURL

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	if imageURL != oldImageURL {
		s.removeImageAsync(s.storage.ObjectName(oldImageURL))
	}

	return post, nil
}

// DeletePost removes the post, its image artifact and the creator's
// back-reference. Ownership is checked fresh against the loaded row.
func (s *feedService) DeletePost(ctx context.Context, requesterID, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.CreatorID != requesterID {
		return apperr.New(apperr.Forbidden, "Not authorized.")
	}

	s.removeImageAsync(s.storage.ObjectName(post.ImageURL))

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	if err := s.userRepo.RemovePost(ctx, post.CreatorID, postID); err != nil {
		s.logger.Error("post deleted but still linked to creator",
			"postId", postID, "creatorId", post.CreatorID, "error", err)
		return err
	}

	return nil
}

// removeImageAsync deletes an image artifact in the background. Failures are
// logged and swallowed; there is no retry.
func (s *feedService) removeImageAsync(objectName string) {
	if objectName == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.storage.DeleteImage(ctx, objectName); err != nil {
			s.logger.Warn("failed to remove image artifact", "object", objectName, "error", err)
		}
	}()
}
