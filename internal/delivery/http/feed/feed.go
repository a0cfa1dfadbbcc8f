package http_feed

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/common"
	http_auth_middleware "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/middleware/auth"
	http_watch "github.com/johnziss9/SceneStack-sub000/internal/delivery/http/watch"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	usecase_feed "github.com/johnziss9/SceneStack-sub000/internal/usecase/feed"
)

// FeedItemDTO is one shared watch as group members see it. The share list
// stays hidden; one group never learns where else a watch went.
type FeedItemDTO struct {
	ID         uuid.UUID            `json:"id"`
	Owner      string               `json:"owner" example:"maria"`
	Movie      *http_watch.MovieDTO `json:"movie"`
	WatchedOn  string               `json:"watched_on" example:"2026-08-15"`
	Rating     *int                 `json:"rating" example:"9"`
	Notes      string               `json:"notes"`
	Location   string               `json:"location"`
	Companions []string             `json:"companions"`
	IsRewatch  bool                 `json:"is_rewatch"`
	CreatedAt  time.Time            `json:"created_at"`
}

type FeedResponseDTO struct {
	Items   []FeedItemDTO `json:"items"`
	HasMore bool          `json:"has_more"`
}

func ConvertFromFeedPage(p model.FeedPage) FeedResponseDTO {
	items := make([]FeedItemDTO, len(p.Items))
	for i, w := range p.Items {
		items[i] = FeedItemDTO{
			ID:         w.ID,
			Owner:      w.OwnerUsername,
			WatchedOn:  w.WatchedOn.Format("2006-01-02"),
			Rating:     w.Rating,
			Notes:      w.Notes,
			Location:   w.Location,
			Companions: w.Companions,
			IsRewatch:  w.IsRewatch,
			CreatedAt:  w.CreatedAt,
		}
		if w.Movie != nil {
			m := http_watch.ConvertFromMovie(*w.Movie)
			items[i].Movie = &m
		}
	}

	return FeedResponseDTO{
		Items:   items,
		HasMore: p.HasMore,
	}
}

type Controller struct {
	uc   *usecase_feed.Usecase
	auth *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_feed.Usecase,
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
	feed := router.Group("/groups/:group_id/feed")
	feed.Use(c.auth.AuthRequired())

	feed.GET("", c.groupFeed)
}

// @Summary Group feed
// @Description Returns watches shared with the group, newest watch date first. Non-members get an empty feed.
// @Tags Feed operations
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param group_id path string true "Group UUID"
// @Param skip query int false "Items to skip"
// @Param take query int false "Items to return, up to 100"
// @Success 200 {object} FeedResponseDTO "Feed window"
// @Failure 400 {object} http_common.ErrorResponse "Invalid group id or window"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /groups/{group_id}/feed [get]
func (c *Controller) groupFeed(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Error: "no authenticated user",
			Code:  http.StatusUnauthorized,
		})
		return
	}

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
		return
	}

	skip, take, err := parseWindow(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "invalid window",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	page, err := c.uc.GroupFeed(ctx.Request.Context(), userID, groupID, skip, take)
	if err != nil {
		if errors.Is(err, usecase_feed.ErrBadWindow) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "invalid window",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}

		c.logger.Error("failed to load feed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "failed to load feed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromFeedPage(page))
}

func parseWindow(ctx *gin.Context) (skip int, take int, err error) {
	if raw := ctx.Query("skip"); raw != "" {
		if skip, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errors.New("skip is not a number")
		}
	}
	if raw := ctx.Query("take"); raw != "" {
		if take, err = strconv.Atoi(raw); err != nil {
			return 0, 0, errors.New("take is not a number")
		}
	}
	return skip, take, nil
}
