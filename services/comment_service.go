// services/comment_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Atlas60229/forum-express-grading/entity"
	"github.com/Atlas60229/forum-express-grading/repository"
	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo    *repository.CommentRepository
	restaurantRepo *repository.RestaurantRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	restaurantRepo *repository.RestaurantRepository,
) *CommentService {
	return &CommentService{commentRepo: commentRepo, restaurantRepo: restaurantRepo}
}

// Create posts a comment. The subject restaurant must exist at
// creation time.
func (s *CommentService) Create(userID, restaurantID uint, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrValidation)
	}

	if _, err := s.restaurantRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant didn't exist", ErrNotFound)
		}
		return nil, err
	}

	comment := &entity.Comment{
		Text:         text,
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment (admin moderation path).
func (s *CommentService) Delete(commentID uint) error {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: comment didn't exist", ErrNotFound)
		}
		return err
	}
	return s.commentRepo.Delete(comment)
}
