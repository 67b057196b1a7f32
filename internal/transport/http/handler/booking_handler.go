package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/internal/domain"
	"staynest/internal/service"
	mdw "staynest/internal/transport/http/middleware"
	resp "staynest/internal/transport/http/response"
)

type BookingHandler struct {
	svc *service.Booking
}

func NewBookingHandler(svc *service.Booking) *BookingHandler { return &BookingHandler{svc: svc} }

func (h *BookingHandler) Mount(public, authed *gin.RouterGroup) {
	public.GET("/bookings/:id", h.get)

	authed.GET("/bookings", h.listMine)
	authed.POST("/bookings", h.create)
	authed.PUT("/bookings/:id", h.update)
	authed.DELETE("/bookings/:id", h.remove)
}

func (h *BookingHandler) create(c *gin.Context) {
	var in service.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	b, err := h.svc.Create(c.Request.Context(), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) listMine(c *gin.Context) {
	f := domain.BookingFilters{
		Status: domain.BookingStatus(c.Query("status")),
		Page:   atoiDefault(c.Query("page"), 1),
		Limit:  atoiDefault(c.Query("limit"), 10),
	}
	out, p, err := h.svc.ListMine(c.Request.Context(), c.GetString(mdw.KeyUserID), f)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out, "pagination": p})
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) update(c *gin.Context) {
	var in service.BookingUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	b, err := h.svc.Update(c.Request.Context(), c.Param("id"), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) remove(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.GetString(mdw.KeyUserID)); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Booking cancelled")
}
