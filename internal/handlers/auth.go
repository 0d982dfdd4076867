package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/cloudforge-dev/cloudforge/internal/auth"
	"github.com/cloudforge-dev/cloudforge/internal/store"
	"github.com/cloudforge-dev/cloudforge/internal/types"
	"github.com/cloudforge-dev/cloudforge/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userResponse(id uint, username, fullName, avatar, role string) types.UserResponse {
	return types.UserResponse{
		ID:       id,
		Username: username,
		FullName: fullName,
		Avatar:   avatar,
		Role:     role,
	}
}

func (h *Handler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))

	_, err := h.store.GetUserByUsername(ctx.Request.Context(), req.Username)

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}

	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Failed to check existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, err := h.store.CreateUser(ctx.Request.Context(), store.NewUser{
		Username: req.Username,
		Password: string(passwordHash),
		FullName: req.FullName,
		Avatar:   req.Avatar,
	})

	if err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userResponse(user.ID, user.Username, user.FullName, user.Avatar, user.Role),
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationError(err))
		return
	}

	req.Username = strings.ToLower(strings.TrimSpace(req.Username))

	user, err := h.store.GetUserByUsername(ctx.Request.Context(), req.Username)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			log.Printf("Failed to look up user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Username)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResponse(user.ID, user.Username, user.FullName, user.Avatar, user.Role),
	})
}

func (h *Handler) Me(ctx *gin.Context) {
	current, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.store.GetUser(ctx.Request.Context(), current.ID)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": userResponse(user.ID, user.Username, user.FullName, user.Avatar, user.Role),
	})
}
