package handlers

import (
	"net/http"

	"eventhub/internal/domain/models"
	"eventhub/internal/services"
	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users services.UserService
}

func (h UserHandler) List(c *gin.Context) {
	p := utils.GetPagination(c, "created_at", "full_name", "email")
	filter := models.UserFilter{
		SearchTerm: c.Query("searchTerm"),
		Role:       c.Query("role"),
		Status:     c.Query("status"),
	}

	users, total, err := h.Users.ListUsers(filter, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "users fetched successfully", users, p, total)
}

func (h UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := h.Users.GetUser(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "user fetched successfully", user)
}

func (h UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Users.UpdateUser(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "user updated successfully", user)
}

func (h UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Users.DeleteUser(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "user deleted successfully", nil)
}
