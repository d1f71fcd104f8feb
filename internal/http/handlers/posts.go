package handlers

import (
	"net/http"
	"strconv"

	"eventhub/internal/domain/models"
	"eventhub/internal/http/middleware"
	"eventhub/internal/services"
	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	Posts services.PostService
}

func (h PostHandler) Create(c *gin.Context) {
	var input services.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.Posts.CreatePost(middleware.CurrentUserID(c), input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Created(c, "post created successfully", post)
}

func (h PostHandler) List(c *gin.Context) {
	p := utils.GetPagination(c, "created_at")

	eventID, _ := strconv.ParseInt(c.Query("eventId"), 10, 64)
	userID, _ := strconv.ParseInt(c.Query("userId"), 10, 64)
	filter := models.PostFilter{
		EventID:    eventID,
		UserID:     userID,
		SearchTerm: c.Query("searchTerm"),
	}

	posts, total, err := h.Posts.ListPosts(filter, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "posts fetched successfully", posts, p, total)
}

func (h PostHandler) MyPosts(c *gin.Context) {
	p := utils.GetPagination(c, "created_at")

	posts, total, err := h.Posts.MyPosts(middleware.CurrentUserID(c), p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "my posts fetched successfully", posts, p, total)
}

func (h PostHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	post, err := h.Posts.GetPost(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "post fetched successfully", post)
}

func (h PostHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd models.PostUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.Posts.UpdatePost(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "post updated successfully", post)
}

func (h PostHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Posts.DeletePost(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "post deleted successfully", nil)
}

// LikeUnlike toggles the caller's like on a post.
func (h PostHandler) LikeUnlike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	post, err := h.Posts.LikeUnlikePost(id, middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "post like updated successfully", post)
}
