// Package mazeapi handles maze generation and rendering requests.
package mazeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController exposes maze generation, lookup and rendering.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", mc.mazeByID)
		mazes.GET("/:ID/image", mc.image)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
	}
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Generate(ctx.Request.Context(), request.Width, request.Height, request.Seed)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/%s", ctx.Request.URL.Path, record.ID))
	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// mazeByID returns a stored maze.
func (mc *MazeController) mazeByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// image returns a stored maze as an image, png unless ?format= says otherwise.
func (mc *MazeController) image(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	f, err := render.ParseFormat(ctx.DefaultQuery("format", string(render.PNG)))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := mc.mazeService.Image(ctx.Request.Context(), id, f)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.Data(http.StatusOK, f.ContentType(), data)
}

// pathID parses the :ID path parameter, answering 400 when it is not a UUID.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrDegenerateGrid),
		errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, render.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMazeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
