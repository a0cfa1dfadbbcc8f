package http_group

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/common"
	http_auth_middleware "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/middleware/auth"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	usecase_group "github.com/johnziss9/SceneStack-sub000/internal/usecase/group"
)

// CreateGroupRequestDTO names a new group; the creator joins it implicitly.
type CreateGroupRequestDTO struct {
	Name string `json:"name" binding:"required" example:"Tuesday Movie Club"`
}

type GroupResponseDTO struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Tuesday Movie Club"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	Role      string    `json:"role,omitempty" example:"creator"`
}

type GroupsListResponseDTO struct {
	Groups []GroupResponseDTO `json:"groups"`
	Total  int                `json:"total"`
}

type GroupMemberDTO struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username" example:"maria"`
	Role     string    `json:"role" example:"member"`
	JoinedAt time.Time `json:"joined_at"`
}

type MembersListResponseDTO struct {
	Members []GroupMemberDTO `json:"members"`
	Total   int              `json:"total"`
}

func ConvertFromGroup(g model.Group) GroupResponseDTO {
	return GroupResponseDTO{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
	}
}

func ConvertFromGroupList(gg []*model.GroupWithRole) []GroupResponseDTO {
	groups := make([]GroupResponseDTO, len(gg))
	for i, g := range gg {
		groups[i] = ConvertFromGroup(g.Group)
		groups[i].Role = g.Role
	}
	return groups
}

func ConvertFromMembers(mm []*model.GroupMember) []GroupMemberDTO {
	members := make([]GroupMemberDTO, len(mm))
	for i, m := range mm {
		members[i] = GroupMemberDTO{
			UserID:   m.UserID,
			Username: m.Username,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
	}
	return members
}

type Controller struct {
	uc   *usecase_group.Usecase
	auth *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_group.Usecase,
	auth *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	groups := router.Group("/groups")
	groups.Use(c.auth.AuthRequired())

	groups.POST("", c.createGroup)
	groups.GET("", c.myGroups)
	groups.POST("/:group_id/members", c.joinGroup)
	groups.GET("/:group_id/members", c.listMembers)
}

// @Summary Create a group
// @Description Creates a sharing group; the authenticated user becomes its creator and first member.
// @Tags Group operations
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param request body CreateGroupRequestDTO true "Group to create"
// @Success 201 {object} GroupResponseDTO "Group created"
// @Failure 400 {object} http_common.ErrorResponse "Missing or empty name"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /groups [post]
func (c *Controller) createGroup(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	var req CreateGroupRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	g, err := c.uc.Create(ctx.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, usecase_group.ErrEmptyName) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error: usecase_group.ErrEmptyName.Error(),
				Code:  http.StatusBadRequest,
			})
			return
		}

		c.logger.Error("failed to create group", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "failed to create group",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	resp := ConvertFromGroup(g)
	resp.Role = model.RoleCreator
	ctx.JSON(http.StatusCreated, resp)
}

// @Summary My groups
// @Description Lists every group the authenticated user belongs to, with their role in each.
// @Tags Group operations
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} GroupsListResponseDTO "Groups"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /groups [get]
func (c *Controller) myGroups(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	gg, err := c.uc.Mine(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error("failed to list groups", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "failed to list groups",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, GroupsListResponseDTO{
		Groups: ConvertFromGroupList(gg),
		Total:  len(gg),
	})
}

// @Summary Join a group
// @Description Adds the authenticated user to the group as a regular member.
// @Tags Group operations
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param group_id path string true "Group UUID"
// @Success 201 "Joined"
// @Failure 400 {object} http_common.ErrorResponse "Invalid group id"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 404 {object} http_common.ErrorResponse "Group not found"
// @Failure 409 {object} http_common.ErrorResponse "Already a member"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /groups/{group_id}/members [post]
func (c *Controller) joinGroup(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	groupID, ok := c.parseGroupID(ctx)
	if !ok {
		return
	}

	if err := c.uc.Join(ctx.Request.Context(), userID, groupID); err != nil {
		switch {
		case errors.Is(err, usecase_group.ErrGroupNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: usecase_group.ErrGroupNotFound.Error(),
				Code:  http.StatusNotFound,
			})
		case errors.Is(err, usecase_group.ErrAlreadyMember):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Error: usecase_group.ErrAlreadyMember.Error(),
				Code:  http.StatusConflict,
			})
		default:
			c.logger.Error("failed to join group", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error: "failed to join group",
				Code:  http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.Status(http.StatusCreated)
}

// @Summary Group members
// @Description Lists the group's members. Only members can see the roster; outsiders get 404.
// @Tags Group operations
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param group_id path string true "Group UUID"
// @Success 200 {object} MembersListResponseDTO "Members"
// @Failure 400 {object} http_common.ErrorResponse "Invalid group id"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 404 {object} http_common.ErrorResponse "Group not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /groups/{group_id}/members [get]
func (c *Controller) listMembers(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	groupID, ok := c.parseGroupID(ctx)
	if !ok {
		return
	}

	mm, err := c.uc.Members(ctx.Request.Context(), userID, groupID)
	if err != nil {
		if errors.Is(err, usecase_group.ErrGroupNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: usecase_group.ErrGroupNotFound.Error(),
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to list members", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "failed to list members",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, MembersListResponseDTO{
		Members: ConvertFromMembers(mm),
		Total:   len(mm),
	})
}

func (c *Controller) respondNoIdentity(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
		Error: "no authenticated user",
		Code:  http.StatusUnauthorized,
	})
}

func (c *Controller) parseGroupID(ctx *gin.Context) (uuid.UUID, bool) {
	idParam := ctx.Param("group_id")
	groupID, err := uuid.Parse(idParam)
	if err != nil {
		c.logger.Warn("invalid group ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid group ID",
			Code:  http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return groupID, true
}
