package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/sidjay999/Secretsanta/internal/errors"
	"github.com/sidjay999/Secretsanta/internal/logger"
	"github.com/sidjay999/Secretsanta/internal/service"
)

type SantaHandler struct {
	santaService service.SantaService
	logger       *logger.Logger
}

func NewSantaHandler(santaService service.SantaService, logger *logger.Logger) *SantaHandler {
	return &SantaHandler{
		santaService: santaService,
		logger:       logger,
	}
}

type CreateGroupRequest struct {
	AdminKey string   `json:"adminKey"`
	GroupId  string   `json:"groupId"`
	Members  []string `json:"members"`
	// MembersRaw is the newline-delimited alternative the admin form sends.
	MembersRaw string `json:"membersRaw"`
	Force      bool   `json:"force"`
}

type CreateGroupResponse struct {
	Ok          bool                 `json:"ok"`
	GroupId     string               `json:"groupId"`
	MemberCodes []service.MemberCode `json:"memberCodes"`
}

type RevealRequest struct {
	GroupId string `json:"groupId"`
	Name    string `json:"name"`
	Code    string `json:"code"`
}

type FailureResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
}

func failure(c *gin.Context, err *apperrors.AppError) {
	c.JSON(apperrors.HTTPStatus(err), FailureResponse{Ok: false, Message: err.Message})
}

// CreateGroup handles POST /api/admin/groups. The response is the only
// place codes and assignments are exposed together.
func (h *SantaHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, service.MissingFieldsError())
		return
	}

	names := req.Members
	if len(names) == 0 && req.MembersRaw != "" {
		names = strings.Split(req.MembersRaw, "\n")
	}

	result, err := h.santaService.CreateGroup(c.Request.Context(), service.CreateGroupParams{
		AdminKey:    req.AdminKey,
		GroupId:     req.GroupId,
		MemberNames: names,
		Force:       req.Force,
	})
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateGroupResponse{
		Ok:          true,
		GroupId:     result.GroupId,
		MemberCodes: result.MemberCodes,
	})
}

// ListGroups handles GET /api/groups: identifiers only, no secrets.
func (h *SantaHandler) ListGroups(c *gin.Context) {
	groups, err := h.santaService.ListGroups(c.Request.Context())
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// ListMembers handles GET /api/members?group=ID: participant names only, so
// a reveal form can offer a selection list without leaking pairing data.
func (h *SantaHandler) ListMembers(c *gin.Context) {
	groupID := c.Query("group")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"members": []string{}})
		return
	}

	members, err := h.santaService.ListMembers(c.Request.Context(), groupID)
	if err != nil {
		failure(c, err)
		return
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.JSON(http.StatusOK, gin.H{"members": members})
}

// Reveal handles POST /api/reveal: name + code in, counterpart name out.
func (h *SantaHandler) Reveal(c *gin.Context) {
	var req RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, service.MissingFieldsError())
		return
	}

	assignedTo, err := h.santaService.Reveal(c.Request.Context(), req.GroupId, req.Name, req.Code)
	if err != nil {
		failure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "assignedTo": assignedTo})
}

func (h *SantaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "secretsanta"})
}
