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

type CommentHandler struct {
	Comments services.CommentService
}

func (h CommentHandler) Create(c *gin.Context) {
	var input services.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.Comments.CreateComment(middleware.CurrentUserID(c), input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Created(c, "comment created successfully", comment)
}

func (h CommentHandler) List(c *gin.Context) {
	p := utils.GetPagination(c, "created_at")

	postID, _ := strconv.ParseInt(c.Query("postId"), 10, 64)
	userID, _ := strconv.ParseInt(c.Query("userId"), 10, 64)
	filter := models.CommentFilter{
		PostID:     postID,
		UserID:     userID,
		SearchTerm: c.Query("searchTerm"),
	}

	comments, total, err := h.Comments.ListComments(filter, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "comments fetched successfully", comments, p, total)
}

func (h CommentHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	comment, err := h.Comments.GetComment(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "comment fetched successfully", comment)
}

func (h CommentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd models.CommentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.Comments.UpdateComment(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "comment updated successfully", comment)
}

func (h CommentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Comments.DeleteComment(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "comment deleted successfully", nil)
}
