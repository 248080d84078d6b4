package http

import (
	"harvestmarket/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleBuyer
	}
	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, role)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "User registered", user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Logged in", gin.H{"token": token, "user": user})
}

func (h *Handler) AssignPartner(c *gin.Context) {
	var req AssignPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	assignment, err := h.logistics.AssignPartner(c.Request.Context(), req.OrderID, req.LogisticsPartnerID)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Logistics partner assigned", assignment)
}

func (h *Handler) UpdateAssignment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	assignment, err := h.logistics.UpdateStatus(c.Request.Context(), id, domain.AssignmentStatus(req.Status), req.TrackingCode)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Status updated", assignment)
}

func (h *Handler) PartnerAssignments(c *gin.Context) {
	partnerID, ok := pathID(c, "partnerId")
	if !ok {
		return
	}
	assignments, err := h.logistics.PartnerAssignments(c.Request.Context(), partnerID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Assignments fetched", assignments)
}

func (h *Handler) Notifications(c *gin.Context) {
	notifications, err := h.notifier.UserNotifications(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Notifications fetched", notifications)
}

func (h *Handler) Profile(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "User fetched", user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.auth.UpdateProfile(c.Request.Context(), currentUserID(c), req.Username)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Profile updated", user)
}
