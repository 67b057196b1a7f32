package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/internal/domain"
	"staynest/internal/service"
	mdw "staynest/internal/transport/http/middleware"
	resp "staynest/internal/transport/http/response"
)

type ReviewHandler struct {
	svc *service.Review
}

func NewReviewHandler(svc *service.Review) *ReviewHandler { return &ReviewHandler{svc: svc} }

func (h *ReviewHandler) Mount(public, authed *gin.RouterGroup) {
	public.GET("/reviews", h.list)
	public.GET("/reviews/:id", h.get)

	authed.POST("/reviews", h.create)
	authed.PUT("/reviews/:id", h.update)
	authed.DELETE("/reviews/:id", h.remove)
}

func (h *ReviewHandler) create(c *gin.Context) {
	var in service.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	r, err := h.svc.Create(c.Request.Context(), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ReviewHandler) list(c *gin.Context) {
	f := domain.ReviewFilters{
		ListingID: c.Query("listingId"),
		Search:    c.Query("search"),
		Sort:      c.Query("sort"),
		Order:     c.Query("order"),
		Page:      atoiDefault(c.Query("page"), 1),
		Limit:     atoiDefault(c.Query("limit"), 10),
	}
	out, p, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out, "pagination": p})
}

func (h *ReviewHandler) get(c *gin.Context) {
	r, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReviewHandler) update(c *gin.Context) {
	var in service.ReviewUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	r, err := h.svc.Update(c.Request.Context(), c.Param("id"), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReviewHandler) remove(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.GetString(mdw.KeyUserID)); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Review deleted")
}
