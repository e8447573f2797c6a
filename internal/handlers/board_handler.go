package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/models"
	"github.com/jobtrail/jobtrail/internal/services"
)

// BoardHandler serves the list views and their edits.
type BoardHandler struct {
	Lists *services.ListService
}

func NewBoardHandler(lists *services.ListService) *BoardHandler {
	return &BoardHandler{Lists: lists}
}

func (h *BoardHandler) ListApplications(c *gin.Context) {
	apps, err := h.Lists.Applications(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *BoardHandler) CreateApplication(c *gin.Context) {
	var app models.Application
	if err := c.ShouldBindJSON(&app); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Lists.CreateApplication(c.Request.Context(), &app)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BoardHandler) UpdateApplication(c *gin.Context) {
	var app models.Application
	if err := c.ShouldBindJSON(&app); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Lists.UpdateApplication(c.Request.Context(), c.Param("id"), &app)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BoardHandler) DeleteApplication(c *gin.Context) {
	if err := h.Lists.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *BoardHandler) ListContacts(c *gin.Context) {
	contacts, err := h.Lists.Contacts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *BoardHandler) CreateContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Lists.CreateContact(c.Request.Context(), &contact)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BoardHandler) UpdateContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Lists.UpdateContact(c.Request.Context(), c.Param("id"), &contact)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BoardHandler) DeleteContact(c *gin.Context) {
	if err := h.Lists.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *BoardHandler) ListResumes(c *gin.Context) {
	resumes, err := h.Lists.Resumes(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *BoardHandler) CreateResume(c *gin.Context) {
	var resume models.Resume
	if err := c.ShouldBindJSON(&resume); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Lists.CreateResume(c.Request.Context(), &resume)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BoardHandler) DeleteResume(c *gin.Context) {
	if err := h.Lists.DeleteResume(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (h *BoardHandler) ListNarratives(c *gin.Context) {
	narratives, err := h.Lists.Narratives(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, narratives)
}

func (h *BoardHandler) CreateNarrative(c *gin.Context) {
	var narrative models.Narrative
	if err := c.ShouldBindJSON(&narrative); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Lists.CreateNarrative(c.Request.Context(), &narrative)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BoardHandler) ListOffers(c *gin.Context) {
	offers, err := h.Lists.Offers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *BoardHandler) CreateOffer(c *gin.Context) {
	var offer models.Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Lists.CreateOffer(c.Request.Context(), &offer)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BoardHandler) UpdateOffer(c *gin.Context) {
	var offer models.Offer
	if err := c.ShouldBindJSON(&offer); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.Lists.UpdateOffer(c.Request.Context(), c.Param("id"), &offer)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BoardHandler) Leaderboard(c *gin.Context) {
	entries, err := h.Lists.Leaderboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
