package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/ArowuTest/committee-manager/internal/models"
	"github.com/ArowuTest/committee-manager/internal/services"
	"github.com/gin-gonic/gin"
)

// CommitteeHandler handles committee-related HTTP requests.
// All registry calls go through mu, one request at a time.
type CommitteeHandler struct {
	mu               sync.Mutex
	committeeService services.CommitteeService
}

// NewCommitteeHandler creates a new CommitteeHandler
func NewCommitteeHandler(committeeService services.CommitteeService) *CommitteeHandler {
	return &CommitteeHandler{
		committeeService: committeeService,
	}
}

// GetStatus handles GET /committee
func (h *CommitteeHandler) GetStatus(c *gin.Context) {
	h.mu.Lock()
	status := h.committeeService.Status()
	h.mu.Unlock()

	c.JSON(http.StatusOK, status)
}

// GetMembers handles GET /committee/members
func (h *CommitteeHandler) GetMembers(c *gin.Context) {
	h.mu.Lock()
	members := h.committeeService.MemberStatus()
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// AddMember handles POST /committee/members
func (h *CommitteeHandler) AddMember(c *gin.Context) {
	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	member, err := h.committeeService.AddMember(*req.ID, req.Name)
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, services.ErrCapacityExceeded) {
			c.JSON(http.StatusConflict, gin.H{"error": "Committee is full! Cannot add more members."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, member)
}

// CollectPayment handles POST /committee/payments
func (h *CommitteeHandler) CollectPayment(c *gin.Context) {
	var req models.CollectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	member, err := h.committeeService.CollectPayment(*req.MemberID, *req.Amount)
	unitPrice := h.committeeService.UnitPrice()
	h.mu.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "unitPrice": unitPrice})
		case errors.Is(err, services.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect payment: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment collected", "member": member})
}

// ConductLuckyDraw handles POST /committee/draws
func (h *CommitteeHandler) ConductLuckyDraw(c *gin.Context) {
	h.mu.Lock()
	result, err := h.committeeService.ConductLuckyDraw()
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, services.ErrNoEligibleMembers) {
			c.JSON(http.StatusConflict, gin.H{"error": "No paid members. Lucky draw cannot be conducted."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to conduct draw: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
