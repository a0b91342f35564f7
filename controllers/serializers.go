package controllers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/models"
	"github.com/snap-point/insta-api/policy"
	"github.com/snap-point/insta-api/social"
	"github.com/snap-point/insta-api/storage"
	"github.com/snap-point/insta-api/utils"
)

const timeLayout = "02-01-2006 15:04:05"

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Avatar    string `json:"avatar"`
}

type UserDetailResponse struct {
	UserResponse
	Followers   int64 `json:"followers"`
	Following   int64 `json:"following"`
	IsFollowing bool  `json:"is_following"`
}

type CommentResponse struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	PostID     uint   `json:"post_id"`
	CreatedAt  string `json:"created_at"`
	TotalLikes int64  `json:"total_likes"`
	IsFan      bool   `json:"is_fan"`
}

type PostResponse struct {
	ID         uint              `json:"id"`
	Text       string            `json:"text"`
	Author     string            `json:"author"`
	CreatedAt  string            `json:"created_at"`
	Tags       []string          `json:"tags"`
	Images     []string          `json:"images"`
	Comments   []CommentResponse `json:"comments"`
	TotalLikes int64             `json:"total_likes"`
	IsFan      bool              `json:"is_fan"`
}

type TagResponse struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
	}
}

func newUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}

func newTagResponse(t *models.Tag) TagResponse {
	return TagResponse{Slug: t.Slug, Title: t.Title}
}

// Serializer renders posts and comments for the requesting actor, which is
// what decides is_fan.
type Serializer struct {
	Likes   *social.Likes
	Storage storage.Storage
}

func NewSerializer(likes *social.Likes, store storage.Storage) *Serializer {
	return &Serializer{Likes: likes, Storage: store}
}

func (s *Serializer) likes(ctx context.Context, item models.Likeable, actor policy.Actor) (int64, bool, error) {
	total, err := s.Likes.TotalLikes(ctx, item)
	if err != nil {
		return 0, false, err
	}
	fan, err := s.Likes.IsFan(ctx, item, actor)
	if err != nil {
		return 0, false, err
	}
	return total, fan, nil
}

func (s *Serializer) Comment(c *gin.Context, comment *models.Comment) (CommentResponse, error) {
	total, fan, err := s.likes(c.Request.Context(), comment, utils.Actor(c))
	if err != nil {
		return CommentResponse{}, err
	}
	return CommentResponse{
		ID:         comment.ID,
		Text:       comment.Text,
		Author:     comment.Author.Email,
		PostID:     comment.PostID,
		CreatedAt:  comment.CreatedAt.Format(timeLayout),
		TotalLikes: total,
		IsFan:      fan,
	}, nil
}

func (s *Serializer) Comments(c *gin.Context, comments []models.Comment) ([]CommentResponse, error) {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		resp, err := s.Comment(c, &comments[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *Serializer) Post(c *gin.Context, post *models.Post) (PostResponse, error) {
	total, fan, err := s.likes(c.Request.Context(), post, utils.Actor(c))
	if err != nil {
		return PostResponse{}, err
	}
	comments, err := s.Comments(c, post.Comments)
	if err != nil {
		return PostResponse{}, err
	}

	images := make([]string, 0, len(post.Images))
	for _, img := range post.Images {
		images = append(images, absoluteURL(c, s.Storage.URL(img.Key)))
	}

	return PostResponse{
		ID:         post.ID,
		Text:       post.Text,
		Author:     post.Author.Email,
		CreatedAt:  post.CreatedAt.Format(timeLayout),
		Tags:       post.TagSlugs(),
		Images:     images,
		Comments:   comments,
		TotalLikes: total,
		IsFan:      fan,
	}, nil
}

func (s *Serializer) Posts(c *gin.Context, posts []models.Post) ([]PostResponse, error) {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		resp, err := s.Post(c, &posts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// absoluteURL prefixes host-relative URLs (disk storage) with the request's
// scheme and host.
func absoluteURL(c *gin.Context, u string) string {
	if !strings.HasPrefix(u, "/") {
		return u
	}
	scheme := "http"
	if c.Request.TLS != nil || c.Request.URL.Scheme == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + u
}
