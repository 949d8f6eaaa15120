package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gideon1107/cafe-and-wifi-api/model"
	"github.com/Gideon1107/cafe-and-wifi-api/repository"
)

const (
	msgLocationNotFound = "Sorry, we don't have a cafe at that location"
	msgIDNotFound       = "Sorry, a cafe with that id was not found in the database"
	msgDuplicateName    = "Sorry, a cafe with that name already exists in the database"
)

// CafeController carries the handlers for every cafe route. The repository
// and the delete key are injected at startup; handlers hold no other state.
type CafeController struct {
	repo   *repository.CafeRepository
	apiKey string
	log    *zap.Logger
}

func NewCafeController(repo *repository.CafeRepository, apiKey string, log *zap.Logger) *CafeController {
	return &CafeController{repo: repo, apiKey: apiKey, log: log}
}

func notFoundBody(msg string) gin.H {
	return gin.H{"errors": gin.H{"Not Found": msg}}
}

// Home renders the landing page.
func (ctl *CafeController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Health reports liveness.
func (ctl *CafeController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetRandomCafe returns one cafe picked uniformly at random.
func (ctl *CafeController) GetRandomCafe(c *gin.Context) {
	cafe, err := ctl.repo.FindRandom(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			c.JSON(http.StatusNotFound, notFoundBody(msgLocationNotFound))
			return
		}
		ctl.log.Error("random cafe lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Database error"})
		return
	}
	c.JSON(http.StatusOK, cafe)
}

// GetAllCafes returns every cafe wrapped in a "cafes" collection field.
func (ctl *CafeController) GetAllCafes(c *gin.Context) {
	cafes, err := ctl.repo.FindAll(c.Request.Context())
	if err != nil {
		ctl.log.Error("cafe listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Database error"})
		return
	}
	if cafes == nil {
		cafes = []model.Cafe{}
	}
	c.JSON(http.StatusOK, gin.H{"cafes": cafes})
}

// SearchByLocation returns the first cafe whose location matches ?loc=
// exactly. A miss (or a missing loc parameter) is a 404.
func (ctl *CafeController) SearchByLocation(c *gin.Context) {
	loc := c.Query("loc")
	cafe, err := ctl.repo.FindByLocation(c.Request.Context(), loc)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			c.JSON(http.StatusNotFound, notFoundBody(msgLocationNotFound))
			return
		}
		ctl.log.Error("cafe search failed", zap.Error(err), zap.String("loc", loc))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Database error"})
		return
	}
	c.JSON(http.StatusOK, cafe)
}

// AddCafeForm answers GET /add without writing anything.
func (ctl *CafeController) AddCafeForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"response": gin.H{
		"usage": "POST form fields: name, map_url, img_url, location, seats, has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price",
	}})
}

// AddCafe creates a new cafe from form fields. Boolean fields must be sent
// as explicit true/false values; presence alone is not enough.
func (ctl *CafeController) AddCafe(c *gin.Context) {
	type Request struct {
		Name        string `form:"name" binding:"required"`
		MapURL      string `form:"map_url" binding:"required"`
		ImgURL      string `form:"img_url" binding:"required"`
		Location    string `form:"location" binding:"required"`
		Seats       string `form:"seats" binding:"required"`
		CoffeePrice string `form:"coffee_price"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "Missing required cafe fields"})
		return
	}

	cafe := model.Cafe{
		Name:     req.Name,
		MapURL:   req.MapURL,
		ImgURL:   req.ImgURL,
		Location: req.Location,
		Seats:    req.Seats,
	}
	for field, dst := range map[string]*bool{
		"has_toilet":     &cafe.HasToilet,
		"has_wifi":       &cafe.HasWifi,
		"has_sockets":    &cafe.HasSockets,
		"can_take_calls": &cafe.CanTakeCalls,
	} {
		value, ok := c.GetPostForm(field)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": "Missing boolean field: " + field})
			return
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": "Invalid boolean value for " + field})
			return
		}
		*dst = parsed
	}
	if req.CoffeePrice != "" {
		cafe.CoffeePrice = &req.CoffeePrice
	}

	if err := ctl.repo.Insert(c.Request.Context(), &cafe); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"Conflict": msgDuplicateName}})
			return
		}
		ctl.log.Error("cafe insert failed", zap.Error(err), zap.String("name", cafe.Name))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": gin.H{"success": "Successfully added the new cafe"}})
}

// UpdatePrice sets a cafe's coffee_price from ?new_price=. No format
// validation is applied to the price string.
func (ctl *CafeController) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, notFoundBody(msgIDNotFound))
		return
	}

	if err := ctl.repo.UpdatePrice(c.Request.Context(), id, c.Query("new_price")); err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			c.JSON(http.StatusNotFound, notFoundBody(msgIDNotFound))
			return
		}
		ctl.log.Error("price update failed", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Successfully updated the price"})
}

// DeleteCafe removes a cafe when ?api-key= matches the shared secret.
// The row is looked up before the key check so an unknown id is always a 404.
func (ctl *CafeController) DeleteCafe(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, notFoundBody(msgIDNotFound))
		return
	}

	cafe, err := ctl.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			c.JSON(http.StatusNotFound, notFoundBody(msgIDNotFound))
			return
		}
		ctl.log.Error("cafe lookup failed", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Database error"})
		return
	}

	if c.Query("api-key") != ctl.apiKey {
		c.JSON(http.StatusForbidden, gin.H{"errors": "Invalid API Key"})
		return
	}

	if err := ctl.repo.Delete(c.Request.Context(), cafe.ID); err != nil {
		if errors.Is(err, repository.ErrCafeNotFound) {
			c.JSON(http.StatusNotFound, notFoundBody(msgIDNotFound))
			return
		}
		ctl.log.Error("cafe delete failed", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Cafe has been deleted successfully"})
}

// parseID maps a path segment to a row id. Anything non-numeric cannot match
// a row, so callers treat it as not found.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
