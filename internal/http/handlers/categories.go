package handlers

import (
	"net/http"

	"eventhub/internal/domain/models"
	"eventhub/internal/services"
	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	Categories services.CategoryService
}

func (h CategoryHandler) Create(c *gin.Context) {
	var input services.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.Categories.CreateCategory(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Created(c, "event category created successfully", category)
}

func (h CategoryHandler) List(c *gin.Context) {
	p := utils.GetPagination(c, "created_at", "name")

	categories, total, err := h.Categories.ListCategories(c.Query("searchTerm"), p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "event categories fetched successfully", categories, p, total)
}

func (h CategoryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	category, err := h.Categories.GetCategory(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "event category fetched successfully", category)
}

func (h CategoryHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd models.EventCategoryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.Categories.UpdateCategory(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "event category updated successfully", category)
}

func (h CategoryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Categories.DeleteCategory(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "event category deleted successfully", nil)
}
