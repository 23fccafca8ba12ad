package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's ray id.
const HeaderName = "X-Ray-Id"

// LocalsKey is the Fiber locals key where the ray id is stored.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a unique ray id to every request.
// The id is stored in the request locals and echoed in the response header
// so that logs and responses can be correlated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)

		return c.Next()
	}
}
