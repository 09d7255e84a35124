package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Links builds absolute resource URLs. PublicBaseURL wins over the
// request's scheme and host, which matters behind proxies.
type Links struct {
	PublicBaseURL string
}

func (l Links) base(c *fiber.Ctx) string {
	if l.PublicBaseURL != "" {
		return strings.TrimRight(l.PublicBaseURL, "/")
	}
	return c.BaseURL()
}

func (l Links) business(c *fiber.Ctx, id int64) string {
	return fmt.Sprintf("%s/businesses/%d", l.base(c), id)
}

func (l Links) review(c *fiber.Ctx, id int64) string {
	return fmt.Sprintf("%s/reviews/%d", l.base(c), id)
}

func (l Links) businessPage(c *fiber.Ctx, offset, limit int) string {
	return fmt.Sprintf("%s/businesses?offset=%d&limit=%d", l.base(c), offset, limit)
}
