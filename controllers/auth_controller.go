package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/config"
	"github.com/snap-point/insta-api/models"
	"github.com/snap-point/insta-api/store"
	"github.com/snap-point/insta-api/utils"
)

type AuthController struct {
	Store        *store.Store
	JWTSecret    []byte
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	GoogleConfig *config.GoogleConfig
}

type TokenResponse struct {
	TokenType    string       `json:"token_type"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)

func NewAuthController(st *store.Store, secret []byte, accessTTL, refreshTTL time.Duration, google *config.GoogleConfig) *AuthController {
	return &AuthController{
		Store:        st,
		JWTSecret:    secret,
		AccessTTL:    accessTTL,
		RefreshTTL:   refreshTTL,
		GoogleConfig: google,
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, fmt.Errorf("hash password: %w", err))
		return
	}

	user := models.User{
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Password:  string(hashedPassword),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := ac.Store.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			err = fmt.Errorf("%w: email already registered", apperr.ErrValidation)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    newUserResponse(&user),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	user, err := ac.Store.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			err = errInvalidCredentials
		}
		respondError(c, err)
		return
	}
	if user.Password == "" {
		respondError(c, errInvalidCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		respondError(c, errInvalidCredentials)
		return
	}

	ac.issueTokens(c, user)
}

// RefreshToken rotates a refresh token: the old value stops working and a
// fresh access/refresh pair is returned.
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}
	invalid := fmt.Errorf("%w: invalid refresh token", apperr.ErrUnauthenticated)

	claims, err := utils.ParseToken(ac.JWTSecret, input.RefreshToken, utils.TokenTypeRefresh)
	if err != nil {
		respondError(c, invalid)
		return
	}

	ctx := c.Request.Context()
	stored, err := ac.Store.GetRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			err = invalid
		}
		respondError(c, err)
		return
	}
	if stored.UserID != claims.UserID || time.Now().After(stored.ExpiresAt) {
		_ = ac.Store.DeleteRefreshToken(ctx, stored.UserID, stored.Token)
		respondError(c, invalid)
		return
	}

	user, err := ac.Store.GetUser(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			err = invalid
		}
		respondError(c, err)
		return
	}

	access, refresh, err := ac.signPair(user)
	if err != nil {
		respondError(c, err)
		return
	}
	stored.Token = refresh
	stored.ExpiresAt = time.Now().Add(ac.RefreshTTL)
	if err := ac.Store.RotateRefreshToken(ctx, stored); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		TokenType:    "Bearer",
		AccessToken:  access,
		RefreshToken: refresh,
		User:         newUserResponse(user),
	})
}

// Logout revokes the caller's refresh token. Unknown tokens still log out.
func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	if err := ac.Store.DeleteRefreshToken(c.Request.Context(), utils.Actor(c).UserID, input.RefreshToken); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Logged out successfully"})
}

// GoogleLogin signs in with a Google authorization code, creating the account
// on first use or linking it to an existing account with the same email.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if ac.GoogleConfig == nil {
		respondError(c, fmt.Errorf("google sign-in: %w", apperr.ErrNotFound))
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	ctx := c.Request.Context()
	token, err := ac.GoogleConfig.ExchangeCode(ctx, input.Code)
	if err != nil {
		respondError(c, fmt.Errorf("%w: failed to exchange code for token", apperr.ErrUnauthenticated))
		return
	}
	info, err := ac.GoogleConfig.GetUserInfo(ctx, token)
	if err != nil {
		respondError(c, fmt.Errorf("%w: invalid Google token", apperr.ErrUnauthenticated))
		return
	}
	if info.Email == "" || !info.VerifiedEmail {
		respondError(c, fmt.Errorf("%w: Google account has no verified email", apperr.ErrUnauthenticated))
		return
	}

	user, err := ac.googleUser(c, info)
	if err != nil {
		respondError(c, err)
		return
	}
	ac.issueTokens(c, user)
}

func (ac *AuthController) googleUser(c *gin.Context, info *config.GoogleUserInfo) (*models.User, error) {
	ctx := c.Request.Context()

	user, err := ac.Store.GetUserByGoogleID(ctx, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	email := strings.ToLower(info.Email)
	user, err = ac.Store.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		updates := map[string]interface{}{"google_id": info.ID}
		if user.Avatar == "" && info.Picture != "" {
			updates["avatar"] = info.Picture
		}
		if err := ac.Store.UpdateUser(ctx, user, updates); err != nil {
			return nil, err
		}
		return user, nil
	case errors.Is(err, apperr.ErrNotFound):
		googleID := info.ID
		user = &models.User{
			Email:     email,
			GoogleID:  &googleID,
			FirstName: info.GivenName,
			LastName:  info.FamilyName,
			Avatar:    info.Picture,
		}
		if err := ac.Store.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	default:
		return nil, err
	}
}

func (ac *AuthController) signPair(user *models.User) (access, refresh string, err error) {
	access, err = utils.IssueToken(ac.JWTSecret, user.ID, user.Email, utils.TokenTypeAccess, ac.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = utils.IssueToken(ac.JWTSecret, user.ID, user.Email, utils.TokenTypeRefresh, ac.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (ac *AuthController) issueTokens(c *gin.Context, user *models.User) {
	access, refresh, err := ac.signPair(user)
	if err != nil {
		respondError(c, err)
		return
	}
	err = ac.Store.CreateRefreshToken(c.Request.Context(), &models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(ac.RefreshTTL),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		TokenType:    "Bearer",
		AccessToken:  access,
		RefreshToken: refresh,
		User:         newUserResponse(user),
	})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user, err := ac.Store.GetUser(c.Request.Context(), utils.Actor(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateProfile patches the caller's names, bio and avatar. Email and
// password are not changed here.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	var input struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Bio       *string `json:"bio"`
		Avatar    *string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, bindError(err))
		return
	}

	ctx := c.Request.Context()
	user, err := ac.Store.GetUser(ctx, utils.Actor(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if len(updates) > 0 {
		if err := ac.Store.UpdateUser(ctx, user, updates); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
