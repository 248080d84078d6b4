package http

import "github.com/gin-gonic/gin"

func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Categories fetched", cats)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cat, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Category fetched", cat)
}

func (h *Handler) CategoryVarieties(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	vars, err := h.catalog.VarietiesByCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Varieties fetched", vars)
}

func (h *Handler) GetVariety(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	v, err := h.catalog.GetVariety(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Variety fetched", v)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cat, err := h.catalog.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Category created", cat)
}

func (h *Handler) CreateVariety(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreateVarietyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	v, err := h.catalog.CreateVariety(c.Request.Context(), categoryID, req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Variety created", v)
}
