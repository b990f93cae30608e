package handler

import (
	"os/exec"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck verifies that the external tool binaries this service depends
// on can be resolved. A missing tool makes every pipeline request fail, so
// it is reported as unhealthy.
func HealthCheck(tools ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, tool := range tools {
			if _, err := exec.LookPath(tool); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
