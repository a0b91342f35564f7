package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/snap-point/insta-api/models"
)

// PostFilter narrows ListPosts. Zero fields do not filter.
type PostFilter struct {
	AuthorID uint
	TagSlug  string
	// FollowerID restricts the list to authors followed by this user.
	FollowerID uint
}

func preloadPost(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.slug ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("post_images.id ASC") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.Author")
}

// CreatePost inserts the post and links its already-persisted tags.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	err := s.with(ctx).Omit("Author", "Tags.*").Create(post).Error
	return translate(err, "create post")
}

// GetPost loads a post with author, tags, images and comments.
func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := preloadPost(s.with(ctx)).First(&post, id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("post %d", id))
	}
	return &post, nil
}

// PostExists is a cheap existence check used by the like layer.
func (s *Store) PostExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.with(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err, fmt.Sprintf("post %d", id))
	}
	return count > 0, nil
}

func (s *Store) ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	q := preloadPost(s.with(ctx)).Model(&models.Post{})
	if filter.AuthorID != 0 {
		q = q.Where("posts.author_id = ?", filter.AuthorID)
	}
	if filter.TagSlug != "" {
		q = q.Where("EXISTS (SELECT 1 FROM post_tags WHERE post_tags.post_id = posts.id AND post_tags.tag_slug = ?)", filter.TagSlug)
	}
	if filter.FollowerID != 0 {
		q = q.Where("posts.author_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)", filter.FollowerID)
	}

	var posts []models.Post
	if err := q.Order("posts.created_at DESC, posts.id DESC").Find(&posts).Error; err != nil {
		return nil, translate(err, "list posts")
	}
	return posts, nil
}

// UpdatePost changes the text and, when tags is non-nil, replaces the tag set.
func (s *Store) UpdatePost(ctx context.Context, post *models.Post, text *string, tags []models.Tag) error {
	err := s.Transaction(ctx, func(tx *Store) error {
		if text != nil {
			if err := tx.db.Model(&models.Post{}).Where("id = ?", post.ID).Update("text", *text).Error; err != nil {
				return translate(err, fmt.Sprintf("update post %d", post.ID))
			}
		}
		switch {
		case tags == nil:
		case len(tags) == 0:
			if err := tx.db.Model(post).Association("Tags").Clear(); err != nil {
				return translate(err, fmt.Sprintf("clear tags of post %d", post.ID))
			}
		default:
			if err := tx.db.Model(post).Association("Tags").Replace(tags); err != nil {
				return translate(err, fmt.Sprintf("replace tags of post %d", post.ID))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fresh, err := s.GetPost(ctx, post.ID)
	if err != nil {
		return err
	}
	*post = *fresh
	return nil
}

// DeletePost removes the post and everything that belongs to it. The deleted
// images are returned so their files can be removed from storage once the
// transaction has committed.
func (s *Store) DeletePost(ctx context.Context, post *models.Post) ([]models.PostImage, error) {
	var images []models.PostImage
	err := s.Transaction(ctx, func(tx *Store) error {
		var commentIDs []uint
		if err := tx.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Pluck("id", &commentIDs).Error; err != nil {
			return translate(err, "collect comments")
		}
		if len(commentIDs) > 0 {
			if err := tx.db.Where("target_kind = ? AND target_id IN ?", models.LikeKindComment, commentIDs).
				Delete(&models.Like{}).Error; err != nil {
				return translate(err, "delete comment likes")
			}
		}
		if err := tx.db.Where("target_kind = ? AND target_id = ?", models.LikeKindPost, post.ID).
			Delete(&models.Like{}).Error; err != nil {
			return translate(err, "delete post likes")
		}
		if err := tx.db.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return translate(err, "delete comments")
		}
		if err := tx.db.Where("post_id = ?", post.ID).Find(&images).Error; err != nil {
			return translate(err, "collect images")
		}
		if err := tx.db.Where("post_id = ?", post.ID).Delete(&models.PostImage{}).Error; err != nil {
			return translate(err, "delete images")
		}
		if err := tx.db.Model(post).Association("Tags").Clear(); err != nil {
			return translate(err, "unlink tags")
		}
		res := tx.db.Delete(&models.Post{}, post.ID)
		if res.Error != nil {
			return translate(res.Error, fmt.Sprintf("delete post %d", post.ID))
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, fmt.Sprintf("post %d", post.ID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (s *Store) CreateImage(ctx context.Context, image *models.PostImage) error {
	return translate(s.with(ctx).Create(image).Error, "create image")
}
