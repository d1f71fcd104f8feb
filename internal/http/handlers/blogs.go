package handlers

import (
	"net/http"
	"strconv"

	"eventhub/internal/domain/models"
	"eventhub/internal/services"
	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	Blogs services.BlogService
}

func (h BlogHandler) Create(c *gin.Context) {
	var input services.CreateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.Blogs.CreateBlog(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Created(c, "blog created successfully", blog)
}

func (h BlogHandler) List(c *gin.Context) {
	p := utils.GetPagination(c, "created_at", "title")

	eventID, _ := strconv.ParseInt(c.Query("eventId"), 10, 64)
	filter := models.BlogFilter{
		EventID:    eventID,
		SearchTerm: c.Query("searchTerm"),
	}

	blogs, total, err := h.Blogs.ListBlogs(filter, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "blogs fetched successfully", blogs, p, total)
}

func (h BlogHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	blog, err := h.Blogs.GetBlog(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "blog fetched successfully", blog)
}

func (h BlogHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd models.BlogUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.Blogs.UpdateBlog(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "blog updated successfully", blog)
}

func (h BlogHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Blogs.DeleteBlog(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "blog deleted successfully", nil)
}
