package http_watch

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
	catalog_client "github.com/johnziss9/SceneStack-sub000/internal/infra/catalog"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	"github.com/johnziss9/SceneStack-sub000/internal/service/grouping"
	"github.com/johnziss9/SceneStack-sub000/internal/service/sharing"
	"github.com/johnziss9/SceneStack-sub000/internal/service/watch_filter"
	usecase_watch "github.com/johnziss9/SceneStack-sub000/internal/usecase/watch"
)

const dateLayout = "2006-01-02"

const maxPageSize = 100

// LogWatchRequestDTO is the payload for recording one viewing.
type LogWatchRequestDTO struct {
	CatalogID  int64    `json:"catalog_id" binding:"required" example:"157336"`
	WatchedOn  string   `json:"watched_on" binding:"required" example:"2026-08-15"`
	Rating     *int     `json:"rating" example:"9"`
	Notes      string   `json:"notes" example:"Rewatched for the soundtrack"`
	Location   string   `json:"location" example:"home"`
	Companions []string `json:"companions" example:"maria,alex"`
	IsRewatch  bool     `json:"is_rewatch" example:"false"`
	IsPrivate  *bool    `json:"is_private" example:"false"`
	GroupIDs   []string `json:"group_ids" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// UpdateWatchRequestDTO replaces a watch wholesale, movie excluded.
type UpdateWatchRequestDTO struct {
	WatchedOn  string   `json:"watched_on" binding:"required" example:"2026-08-15"`
	Rating     *int     `json:"rating" example:"9"`
	Notes      string   `json:"notes"`
	Location   string   `json:"location"`
	Companions []string `json:"companions"`
	IsRewatch  bool     `json:"is_rewatch"`
	IsPrivate  *bool    `json:"is_private"`
	GroupIDs   []string `json:"group_ids"`
}

// BulkVisibilityRequestDTO applies one visibility change to many watches.
type BulkVisibilityRequestDTO struct {
	WatchIDs  []string `json:"watch_ids" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	IsPrivate *bool    `json:"is_private" binding:"required" example:"false"`
	GroupIDs  []string `json:"group_ids"`
	Operation string   `json:"group_operation" binding:"required" example:"add" enums:"add,replace"`
}

type MovieDTO struct {
	ID         uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CatalogID  int64     `json:"catalog_id" example:"157336"`
	Title      string    `json:"title" example:"Interstellar"`
	Year       int       `json:"year" example:"2014"`
	Genres     []string  `json:"genres" example:"Science Fiction,Drama"`
	Runtime    int       `json:"runtime" example:"169"`
	Overview   string    `json:"overview" example:"A team of explorers travel through a wormhole..."`
	PosterLink string    `json:"poster_link" example:"https://image.tmdb.org/t/p/w500/poster.jpg"`
}

type WatchResponseDTO struct {
	ID         uuid.UUID   `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Movie      *MovieDTO   `json:"movie,omitempty"`
	WatchedOn  string      `json:"watched_on" example:"2026-08-15"`
	Rating     *int        `json:"rating" example:"9"`
	Notes      string      `json:"notes"`
	Location   string      `json:"location"`
	Companions []string    `json:"companions"`
	IsRewatch  bool        `json:"is_rewatch"`
	IsPrivate  bool        `json:"is_private"`
	GroupIDs   []uuid.UUID `json:"group_ids"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type MovieGroupDTO struct {
	Movie         *MovieDTO          `json:"movie"`
	WatchCount    int                `json:"watch_count" example:"3"`
	AverageRating *float64           `json:"average_rating" example:"8.5"`
	LatestRating  *int               `json:"latest_rating" example:"9"`
	Watches       []WatchResponseDTO `json:"watches"`
}

type GroupedListResponseDTO struct {
	Groups     []MovieGroupDTO `json:"groups"`
	TotalCount int             `json:"total_count" example:"12"`
	Page       int             `json:"page" example:"1"`
	PageSize   int             `json:"page_size" example:"20"`
	TotalPages int             `json:"total_pages" example:"1"`
	HasMore    bool            `json:"has_more" example:"false"`
}

type BulkVisibilityResponseDTO struct {
	Success bool     `json:"success" example:"false"`
	Updated int      `json:"updated" example:"2"`
	Failed  int      `json:"failed" example:"1"`
	Errors  []string `json:"errors"`
}

func ConvertFromWatch(w model.Watch) WatchResponseDTO {
	dto := WatchResponseDTO{
		ID:         w.ID,
		WatchedOn:  w.WatchedOn.Format(dateLayout),
		Rating:     w.Rating,
		Notes:      w.Notes,
		Location:   w.Location,
		Companions: w.Companions,
		IsRewatch:  w.IsRewatch,
		IsPrivate:  w.IsPrivate,
		GroupIDs:   w.Shares,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
	if w.Movie != nil {
		m := ConvertFromMovie(*w.Movie)
		dto.Movie = &m
	}
	return dto
}

func ConvertFromMovie(m model.Movie) MovieDTO {
	return MovieDTO{
		ID:         m.ID,
		CatalogID:  m.CatalogID,
		Title:      m.Title,
		Year:       m.Year,
		Genres:     m.Genres,
		Runtime:    m.Runtime,
		Overview:   m.Overview,
		PosterLink: m.PosterLink,
	}
}

func ConvertFromGroupedPage(p model.GroupedPage) GroupedListResponseDTO {
	groups := make([]MovieGroupDTO, len(p.Items))
	for i, g := range p.Items {
		watches := make([]WatchResponseDTO, len(g.Watches))
		for j, w := range g.Watches {
			watches[j] = ConvertFromWatch(*w)
		}

		groups[i] = MovieGroupDTO{
			WatchCount:    g.WatchCount,
			AverageRating: g.AverageRating,
			LatestRating:  g.LatestRating,
			Watches:       watches,
		}
		if g.Movie != nil {
			m := ConvertFromMovie(*g.Movie)
			groups[i].Movie = &m
		}
	}

	return GroupedListResponseDTO{
		Groups:     groups,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		HasMore:    p.HasMore,
	}
}

func ConvertFromBulkResult(r model.BulkResult) BulkVisibilityResponseDTO {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return BulkVisibilityResponseDTO{
		Success: r.Success(),
		Updated: r.Updated,
		Failed:  r.Failed,
		Errors:  errs,
	}
}

type Controller struct {
	uc   *usecase_watch.Usecase
	auth *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_watch.Usecase,
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
	watches := router.Group("/watches")
	watches.Use(c.auth.AuthRequired())

	watches.POST("", c.logWatch)
	watches.GET("", c.listWatches)
	watches.GET("/:watch_id", c.getWatch)
	watches.PUT("/:watch_id", c.updateWatch)
	watches.DELETE("/:watch_id", c.deleteWatch)

	watches.POST("/visibility", c.bulkVisibility)
}

// @Summary Log a watch
// @Description Records one viewing of a movie for the authenticated user. The movie is resolved by its catalog id. Omitting is_private keeps the watch private.
// @Tags Watch operations
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param request body LogWatchRequestDTO true "Watch to record"
// @Success 201 {object} WatchResponseDTO "Watch recorded"
// @Failure 400 {object} http_common.ErrorResponse "Invalid payload, rating, date or group ids"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} http_common.ErrorResponse "Account deactivated"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /watches [post]
func (c *Controller) logWatch(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	var req LogWatchRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	watchedOn, err := time.Parse(dateLayout, req.WatchedOn)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "invalid watched_on date",
			Message: "expected YYYY-MM-DD",
			Code:    http.StatusBadRequest,
		})
		return
	}

	groupIDs, err := parseUUIDList(req.GroupIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid group id",
			Code:  http.StatusBadRequest,
		})
		return
	}

	w, err := c.uc.Log(ctx.Request.Context(), userID, usecase_watch.LogInput{
		CatalogID:  req.CatalogID,
		WatchedOn:  watchedOn,
		Rating:     req.Rating,
		Notes:      req.Notes,
		Location:   req.Location,
		Companions: req.Companions,
		IsRewatch:  req.IsRewatch,
		IsPrivate:  privateOrDefault(req.IsPrivate),
		GroupIDs:   groupIDs,
	})
	if err != nil {
		c.respondWriteError(ctx, err, "failed to log watch")
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromWatch(w))
}

// @Summary Grouped watch history
// @Description Returns the authenticated user's watches filtered, grouped per movie and paginated at the movie level.
// @Tags Watch operations
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param search query string false "Case-insensitive title substring"
// @Param rating_min query int false "Lowest rating to keep"
// @Param rating_max query int false "Highest rating to keep"
// @Param watched_from query string false "Earliest watch date (YYYY-MM-DD)"
// @Param watched_to query string false "Latest watch date (YYYY-MM-DD)"
// @Param rewatch_only query bool false "Keep only rewatches"
// @Param unrated_only query bool false "Keep only unrated watches"
// @Param group_id query string false "Keep only watches shared with this group"
// @Param sort_by query string false "recently_watched, highest_rated or title_asc"
// @Param page query int false "Page number, starting at 1"
// @Param page_size query int false "Movie groups per page, up to 100"
// @Success 200 {object} GroupedListResponseDTO "Grouped history page"
// @Failure 400 {object} http_common.ErrorResponse "Invalid filter, sort key or page window"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /watches [get]
func (c *Controller) listWatches(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	query, err := parseListQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "invalid query",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	page, err := c.uc.GroupedList(ctx.Request.Context(), userID, query)
	if err != nil {
		if errors.Is(err, watch_filter.ErrInvalidBounds) || errors.Is(err, grouping.ErrBadPage) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "invalid query",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}

		c.logger.Error("failed to list watches", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "failed to list watches",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromGroupedPage(page))
}

// @Summary Get one watch
// @Description Returns one of the authenticated user's watches by id.
// @Tags Watch operations
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param watch_id path string true "Watch UUID"
// @Success 200 {object} WatchResponseDTO "Watch"
// @Failure 400 {object} http_common.ErrorResponse "Invalid watch id"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 404 {object} http_common.ErrorResponse "Watch not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /watches/{watch_id} [get]
func (c *Controller) getWatch(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	watchID, ok := c.parseWatchID(ctx)
	if !ok {
		return
	}

	w, err := c.uc.Get(ctx.Request.Context(), userID, watchID)
	if err != nil {
		if errors.Is(err, usecase_watch.ErrWatchNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "watch not found",
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to get watch", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "failed to get watch",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromWatch(w))
}

// @Summary Update a watch
// @Description Replaces the watch's fields and sharing wholesale. The movie itself cannot be changed.
// @Tags Watch operations
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param watch_id path string true "Watch UUID"
// @Param request body UpdateWatchRequestDTO true "New state"
// @Success 200 {object} WatchResponseDTO "Updated watch"
// @Failure 400 {object} http_common.ErrorResponse "Invalid payload, rating, date or group ids"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} http_common.ErrorResponse "Account deactivated"
// @Failure 404 {object} http_common.ErrorResponse "Watch not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /watches/{watch_id} [put]
func (c *Controller) updateWatch(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	watchID, ok := c.parseWatchID(ctx)
	if !ok {
		return
	}

	var req UpdateWatchRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	watchedOn, err := time.Parse(dateLayout, req.WatchedOn)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "invalid watched_on date",
			Message: "expected YYYY-MM-DD",
			Code:    http.StatusBadRequest,
		})
		return
	}

	groupIDs, err := parseUUIDList(req.GroupIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid group id",
			Code:  http.StatusBadRequest,
		})
		return
	}

	w, err := c.uc.Update(ctx.Request.Context(), userID, watchID, usecase_watch.UpdateInput{
		WatchedOn:  watchedOn,
		Rating:     req.Rating,
		Notes:      req.Notes,
		Location:   req.Location,
		Companions: req.Companions,
		IsRewatch:  req.IsRewatch,
		IsPrivate:  privateOrDefault(req.IsPrivate),
		GroupIDs:   groupIDs,
	})
	if err != nil {
		if errors.Is(err, usecase_watch.ErrWatchNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "watch not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.respondWriteError(ctx, err, "failed to update watch")
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromWatch(w))
}

// @Summary Delete a watch
// @Description Removes one of the authenticated user's watches along with its shares.
// @Tags Watch operations
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param watch_id path string true "Watch UUID"
// @Success 204 "Watch deleted"
// @Failure 400 {object} http_common.ErrorResponse "Invalid watch id"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} http_common.ErrorResponse "Account deactivated"
// @Failure 404 {object} http_common.ErrorResponse "Watch not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /watches/{watch_id} [delete]
func (c *Controller) deleteWatch(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	watchID, ok := c.parseWatchID(ctx)
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), userID, watchID); err != nil {
		if errors.Is(err, usecase_watch.ErrWatchNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "watch not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		if errors.Is(err, usecase_watch.ErrAccountDeactivated) {
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Error: usecase_watch.ErrAccountDeactivated.Error(),
				Code:  http.StatusForbidden,
			})
			return
		}

		c.logger.Error("failed to delete watch", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "failed to delete watch",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// @Summary Bulk visibility change
// @Description Applies one visibility change to every listed watch. Problems with the request reject it whole; problems with a single watch fail only that item and are reported in errors.
// @Tags Watch operations
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param request body BulkVisibilityRequestDTO true "Watches and the change to apply"
// @Success 200 {object} BulkVisibilityResponseDTO "Per-item outcome"
// @Failure 400 {object} http_common.ErrorResponse "Empty id list or unknown operation"
// @Failure 401 {object} http_common.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} http_common.ErrorResponse "Account deactivated"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /watches/visibility [post]
func (c *Controller) bulkVisibility(ctx *gin.Context) {
	userID, ok := http_auth_middleware.UserID(ctx)
	if !ok {
		c.respondNoIdentity(ctx)
		return
	}

	var req BulkVisibilityRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	watchIDs, err := parseUUIDList(req.WatchIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid watch id",
			Code:  http.StatusBadRequest,
		})
		return
	}

	groupIDs, err := parseUUIDList(req.GroupIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid group id",
			Code:  http.StatusBadRequest,
		})
		return
	}

	result, err := c.uc.BulkSetVisibility(ctx.Request.Context(), userID, watchIDs, model.VisibilityChange{
		IsPrivate: *req.IsPrivate,
		GroupIDs:  groupIDs,
		Operation: req.Operation,
	})
	if err != nil {
		if errors.Is(err, usecase_watch.ErrEmptyBatch) || errors.Is(err, usecase_watch.ErrBadOperation) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "invalid bulk request",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}
		if errors.Is(err, usecase_watch.ErrAccountDeactivated) {
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Error: usecase_watch.ErrAccountDeactivated.Error(),
				Code:  http.StatusForbidden,
			})
			return
		}

		c.logger.Error("bulk visibility failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "failed to change visibility",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromBulkResult(result))
}

// respondWriteError maps the sentinel set shared by the write paths.
func (c *Controller) respondWriteError(ctx *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase_watch.ErrAccountDeactivated):
		ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
			Error: usecase_watch.ErrAccountDeactivated.Error(),
			Code:  http.StatusForbidden,
		})
	case errors.Is(err, usecase_watch.ErrBadRating):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "invalid rating",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, sharing.ErrMissingGroups), errors.Is(err, sharing.ErrForeignGroup):
		// The sentinel text is the wire code the clients match on.
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: err.Error(),
			Code:  http.StatusBadRequest,
		})
	case errors.Is(err, catalog_client.ErrTitleNotFound):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "unknown catalog id",
			Code:  http.StatusBadRequest,
		})
	default:
		c.logger.Error(logMsg, slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: logMsg,
			Code:  http.StatusInternalServerError,
		})
	}
}

func (c *Controller) respondNoIdentity(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
		Error: "no authenticated user",
		Code:  http.StatusUnauthorized,
	})
}

func (c *Controller) parseWatchID(ctx *gin.Context) (uuid.UUID, bool) {
	idParam := ctx.Param("watch_id")
	watchID, err := uuid.Parse(idParam)
	if err != nil {
		c.logger.Warn("invalid watch ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "invalid watch ID",
			Code:  http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return watchID, true
}

func parseListQuery(ctx *gin.Context) (usecase_watch.ListQuery, error) {
	q := usecase_watch.ListQuery{
		Page:     1,
		PageSize: 20,
	}

	f := model.WatchFilter{
		Search:      ctx.Query("search"),
		RewatchOnly: ctx.Query("rewatch_only") == "true",
		UnratedOnly: ctx.Query("unrated_only") == "true",
	}

	var err error
	if f.RatingMin, err = intQuery(ctx, "rating_min"); err != nil {
		return q, err
	}
	if f.RatingMax, err = intQuery(ctx, "rating_max"); err != nil {
		return q, err
	}
	if f.WatchedFrom, err = dateQuery(ctx, "watched_from"); err != nil {
		return q, err
	}
	if f.WatchedTo, err = dateQuery(ctx, "watched_to"); err != nil {
		return q, err
	}

	if raw := ctx.Query("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return q, errors.New("group_id is not a UUID")
		}
		f.GroupID = &groupID
	}

	sortBy, err := watch_filter.ParseSortKey(ctx.Query("sort_by"))
	if err != nil {
		return q, err
	}

	if raw := ctx.Query("page"); raw != "" {
		if q.Page, err = strconv.Atoi(raw); err != nil {
			return q, errors.New("page is not a number")
		}
	}
	if raw := ctx.Query("page_size"); raw != "" {
		if q.PageSize, err = strconv.Atoi(raw); err != nil {
			return q, errors.New("page_size is not a number")
		}
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}

	q.Filter = f
	q.SortBy = sortBy
	return q, nil
}

func intQuery(ctx *gin.Context, key string) (*int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(key + " is not a number")
	}
	return &n, nil
}

func dateQuery(ctx *gin.Context, key string) (*time.Time, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errors.New(key + " is not a YYYY-MM-DD date")
	}
	return &t, nil
}

func parseUUIDList(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Watches are private unless the payload says otherwise.
func privateOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
