package api

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/youruser/playercard/internal/assets"
	imagepkg "github.com/youruser/playercard/internal/image"
	"github.com/youruser/playercard/internal/profile"
)

// maxImageEdge bounds width and height query parameters.
const maxImageEdge = 2048

// Server carries the collaborators the handlers need.
type Server struct {
	Engine  *imagepkg.Engine
	Source  profile.DataSource
	Log     *slog.Logger
	ShareQR string // URL template with {uid}; empty disables the QR badge
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// cardHandler renders the small player card for :uid. Query params: region
// overrides the region chip, footer=1 adds the footer banner.
func (s *Server) cardHandler(c *gin.Context) {
	uid := c.Param("uid")
	if _, err := strconv.ParseUint(uid, 10, 64); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid must be numeric"})
		return
	}

	var opts []imagepkg.CardOption
	if s.ShareQR != "" {
		opts = append(opts, imagepkg.WithShareQR(expandUID(s.ShareQR, uid)))
	}

	start := time.Now()
	card, err := s.Engine.RenderPlayerCard(c.Request.Context(), uid, s.Source, c.Query("region"), opts...)
	if err != nil {
		var up *imagepkg.UpstreamError
		if errors.As(err, &up) {
			s.Log.Info("profile unavailable", "uid", uid, "code", up.Code)
			c.JSON(http.StatusNotFound, gin.H{"error": "profile unavailable", "code": up.Code})
			return
		}
		s.Log.Error("render card", "uid", uid, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var out image.Image = card.Image
	if c.Query("footer") == "1" {
		framed, err := imagepkg.AddFooter(s.Engine.Store(), card.Image)
		if err != nil {
			s.Log.Error("add footer", "uid", uid, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out = framed
	}
	s.Log.Debug("card rendered", "uid", uid, "elapsed", time.Since(start))
	writePNG(c, s.Log, out)
}

// spriteHandler returns a single resolved sprite, mainly for checking an
// asset pack. w and h default to the category's usual size.
func (s *Server) spriteHandler(c *gin.Context) {
	cat, err := assets.ParseCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w, okW := sizeParam(c, "w", imagepkg.DefaultSize(cat))
	h, okH := sizeParam(c, "h", imagepkg.DefaultSize(cat))
	if !okW || !okH {
		c.JSON(http.StatusBadRequest, gin.H{"error": "w and h must be between 1 and 2048"})
		return
	}
	img, err := s.Engine.Sprites().Get(cat, c.Param("code"), w, h)
	if err != nil {
		s.Log.Error("resolve sprite", "category", cat, "code", c.Param("code"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writePNG(c, s.Log, img)
}

// backgroundHandler returns the page background cropped to w×h.
func (s *Server) backgroundHandler(c *gin.Context) {
	w, okW := sizeParam(c, "w", 1000)
	h, okH := sizeParam(c, "h", 1000)
	if !okW || !okH {
		c.JSON(http.StatusBadRequest, gin.H{"error": "w and h must be between 1 and 2048"})
		return
	}
	img, err := imagepkg.Background(s.Engine.Store(), w, h)
	if err != nil {
		s.Log.Error("background", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writePNG(c, s.Log, img)
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size, ok := sizeParam(c, "size", 400)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 1 and 2048"})
		return
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func sizeParam(c *gin.Context, name string, def int) (int, bool) {
	s := c.Query(name)
	if s == "" {
		return def, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 || v > maxImageEdge {
		return 0, false
	}
	return v, true
}

func writePNG(c *gin.Context, log *slog.Logger, img image.Image) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		log.Error("encode png", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func expandUID(tmpl, uid string) string {
	return strings.ReplaceAll(tmpl, "{uid}", uid)
}
