package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const indexPage = `<!DOCTYPE html>
<html>
<head><title>stocksentry</title></head>
<body>
<h1>stocksentry</h1>
<p>Transcript webhook receiver. POST transcript segments to /webhook.</p>
</body>
</html>`

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	db *gorm.DB
}

// New func - Creates new HTTP handler
func New(db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		db: db,
	}
}

// HealthCheck func
// @Summary Health check
// @Description Pings the notification database
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
		})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
	})
}

// Index func - Renders the static index page
// @Summary Index
// @Description Static landing page
// @Tags Health
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func (hdl *HTTPHandler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(indexPage)
}
