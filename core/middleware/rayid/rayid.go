package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request/response header carrying the ray ID.
const Header = "X-Ray-Id"

// LocalsKey is the Fiber locals key the ray ID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that ensures every request carries a ray ID.
// An incoming ray ID is preserved so upstream proxies can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
