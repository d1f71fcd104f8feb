package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"eventhub/internal/domain/models"
	"eventhub/internal/services"
	"eventhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	Events services.EventService
}

func (h EventHandler) Create(c *gin.Context) {
	var input services.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.Events.CreateEvent(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Created(c, "event created successfully", event)
}

func (h EventHandler) List(c *gin.Context) {
	p := utils.GetPagination(c, "created_at", "title", "price", "event_date")
	filter := models.EventFilter{
		SearchTerm:  c.Query("searchTerm"),
		CategoryIDs: parseIDList(c.Query("category")),
		Date:        c.Query("date"),
		MinPrice:    parsePrice(c.Query("minPrice")),
		MaxPrice:    parsePrice(c.Query("maxPrice")),
	}

	events, total, err := h.Events.ListEvents(filter, p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OKList(c, "events fetched successfully", events, p, total)
}

func (h EventHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	event, err := h.Events.GetEvent(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "event fetched successfully", event)
}

func (h EventHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd models.EventUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.Events.UpdateEvent(id, upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "event updated successfully", event)
}

func (h EventHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Events.DeleteEvent(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "event deleted successfully", nil)
}

// parseIDList splits a comma separated list like "1,4,7". Bad entries are
// skipped rather than failing the whole request.
func parseIDList(raw string) []int64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func parsePrice(raw string) *float64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
