package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/internal/domain"
	"staynest/internal/service"
	mdw "staynest/internal/transport/http/middleware"
	resp "staynest/internal/transport/http/response"
)

type ListingHandler struct {
	svc *service.Listing
}

func NewListingHandler(svc *service.Listing) *ListingHandler { return &ListingHandler{svc: svc} }

func (h *ListingHandler) Mount(public, authed *gin.RouterGroup) {
	// 静态段必须先于 :id 注册同级
	public.GET("/listings/all", h.listAll)
	public.GET("/listings/search", h.search)
	public.GET("/listings/:id", h.get)

	authed.GET("/listings", h.listMine)
	authed.POST("/listings", h.create)
	authed.PUT("/listings/:id", h.update)
	authed.DELETE("/listings/:id", h.remove)
}

func (h *ListingHandler) create(c *gin.Context) {
	var in service.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	l, err := h.svc.Create(c.Request.Context(), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *ListingHandler) get(c *gin.Context) {
	l, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *ListingHandler) listMine(c *gin.Context) {
	out, err := h.svc.ListMine(c.Request.Context(), c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": out})
}

func (h *ListingHandler) listAll(c *gin.Context) {
	out, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": out})
}

func (h *ListingHandler) search(c *gin.Context) {
	f := domain.ListingFilters{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Type:     domain.ListingType(c.Query("type")),
		Sort:     domain.ListingSort(c.DefaultQuery("sort", string(domain.SortNewest))),
	}

	var err error
	if f.MinPrice, err = parseFloat(c.Query("minPrice")); err != nil {
		resp.FromError(c, err)
		return
	}
	if f.MaxPrice, err = parseFloat(c.Query("maxPrice")); err != nil {
		resp.FromError(c, err)
		return
	}
	if f.StartDate, err = parseDate(c.Query("startDate")); err != nil {
		resp.FromError(c, err)
		return
	}
	if f.EndDate, err = parseDate(c.Query("endDate")); err != nil {
		resp.FromError(c, err)
		return
	}

	out, err := h.svc.Search(c.Request.Context(), f)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": out})
}

func (h *ListingHandler) update(c *gin.Context) {
	var in service.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}
	l, err := h.svc.Update(c.Request.Context(), c.Param("id"), c.GetString(mdw.KeyUserID), in)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *ListingHandler) remove(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.GetString(mdw.KeyUserID)); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Message(c, http.StatusOK, "Listing deleted")
}
