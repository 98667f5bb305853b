package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-feed/internal/validators"
	"github.com/MKhiriev/go-feed/models"
)

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// validation.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}

// PostValidationService decorates a PostService with input validation.
// Content is trimmed before it is checked, so surrounding whitespace never
// counts toward the length limit.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

// NewPostValidationService returns a wrapper applying validators.FeedValidator.
func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewFeedValidator(),
	}
}

// Wrap implements PostServiceWrapper.
func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}

func (v *PostValidationService) Create(ctx context.Context, identity models.Identity, req models.CreatePostRequest) (models.PostResponse, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PostResponse{}, fmt.Errorf("post validation failed: %w", err)
	}

	return v.inner.Create(ctx, identity, req)
}

func (v *PostValidationService) Timeline(ctx context.Context, identity models.Identity, req models.TimelineRequest) (models.TimelineResponse, error) {
	return v.inner.Timeline(ctx, identity, req)
}

func (v *PostValidationService) UserPosts(ctx context.Context, identity models.Identity, userID int64, req models.TimelineRequest) (models.TimelineResponse, error) {
	return v.inner.UserPosts(ctx, identity, userID, req)
}
