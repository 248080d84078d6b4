package http

import (
	"harvestmarket/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) InitNegotiation(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	session, err := h.negotiations.InitSession(c.Request.Context(), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Negotiation session started", session)
}

func (h *Handler) AddNegotiationMessage(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, err := h.negotiations.AddMessage(c.Request.Context(), orderID, currentUserID(c), req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Message added", session)
}

func (h *Handler) UpdateNegotiation(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, err := h.negotiations.UpdateStatus(c.Request.Context(), orderID, currentUserID(c), domain.NegotiationStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Negotiation updated", session)
}

func (h *Handler) OpenDispute(c *gin.Context) {
	var req OpenDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	dispute, err := h.disputes.OpenDispute(c.Request.Context(), req.OrderID, currentUserID(c), req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Dispute opened", dispute)
}

func (h *Handler) ResolveDispute(c *gin.Context) {
	disputeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	dispute, err := h.disputes.ResolveDispute(c.Request.Context(), disputeID, req.ResolutionNotes)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Dispute resolved", dispute)
}
