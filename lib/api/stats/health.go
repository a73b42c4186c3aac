package stats

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/neonleaf/neonleaf-go/lib/db"
	"github.com/neonleaf/neonleaf-go/lib/editor"
)

type DBChecker struct {
	db db.DataStore
}

func (d DBChecker) Name() string {
	return "database"
}

func (d DBChecker) Check() Check {
	err := d.db.Ping()

	if err != nil {
		return Check{
			Status: StatusFail,
			Output: err.Error(),
		}
	}

	return Check{
		Status:     StatusPass,
		Observed:   "ok",
		ObservedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// EditorChecker reports how many documents are held in memory.
type EditorChecker struct {
	manager *editor.Manager
}

func (e EditorChecker) Name() string {
	return "editor"
}

func (e EditorChecker) Check() Check {
	return Check{
		Status:    StatusPass,
		Component: "loadedDocuments",
		Observed:  e.manager.LoadedCount(),
	}
}

// Handler godoc
// @Summary Health check endpoint
// @Description Returns the health status of the service (RFC Health Check Draft)
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Service is unhealthy"
// @Router /health [get]
func Handler(
	version string,
	serviceID string,
	checkers []Checker,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := HealthResponse{
			Status:    StatusPass,
			Version:   version,
			ServiceID: serviceID,
			Checks:    map[string][]Check{},
		}

		httpStatus := fiber.StatusOK

		for _, checker := range checkers {
			check := checker.Check()
			resp.Checks[checker.Name()] = []Check{check}

			switch check.Status {
			case StatusFail:
				resp.Status = StatusFail
				httpStatus = fiber.StatusServiceUnavailable
			case StatusWarn:
				if resp.Status != StatusFail {
					resp.Status = StatusWarn
				}
			}
		}

		return c.Status(httpStatus).JSON(resp)
	}
}
