package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/models"
)

func (s *Store) CreateTag(ctx context.Context, tag *models.Tag) error {
	return translate(s.with(ctx).Create(tag).Error, fmt.Sprintf("create tag %q", tag.Slug))
}

func (s *Store) GetTag(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.with(ctx).Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("tag %q", slug))
	}
	return &tag, nil
}

func (s *Store) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.with(ctx).Order("slug ASC").Find(&tags).Error; err != nil {
		return nil, translate(err, "list tags")
	}
	return tags, nil
}

// TagsBySlugs resolves every slug to an existing tag. Unknown slugs are a
// validation error; duplicates in the input are collapsed.
func (s *Store) TagsBySlugs(ctx context.Context, slugs []string) ([]models.Tag, error) {
	unique := make([]string, 0, len(slugs))
	seen := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		if !seen[slug] {
			seen[slug] = true
			unique = append(unique, slug)
		}
	}
	if len(unique) == 0 {
		return []models.Tag{}, nil
	}

	var tags []models.Tag
	if err := s.with(ctx).Where("slug IN ?", unique).Order("slug ASC").Find(&tags).Error; err != nil {
		return nil, translate(err, "resolve tags")
	}
	if len(tags) == len(unique) {
		return tags, nil
	}

	found := make(map[string]bool, len(tags))
	for _, t := range tags {
		found[t.Slug] = true
	}
	var missing []string
	for _, slug := range unique {
		if !found[slug] {
			missing = append(missing, slug)
		}
	}
	return nil, fmt.Errorf("%w: unknown tags: %s", apperr.ErrValidation, strings.Join(missing, ", "))
}
