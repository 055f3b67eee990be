package transport

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/beanbocchi/ossclient/internal/service"
	"github.com/beanbocchi/ossclient/pkg/validator"
)

// NewEcho creates a new Echo instance
func NewEcho(svc *service.Service) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.DebugContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Custom validator & serializer
	customVal, err := validator.New()
	if err != nil {
		return nil, err
	}
	e.Validator = customVal
	e.JSONSerializer = sonicSerializer{}

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Setup routes
	SetupRoute(e, svc)

	return e, nil
}

// sonicSerializer is the echo JSON serializer backed by sonic.
type sonicSerializer struct{}

func (sonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	var (
		data []byte
		err  error
	)
	if indent != "" {
		data, err = sonic.ConfigStd.MarshalIndent(i, "", indent)
	} else {
		data, err = sonic.Marshal(i)
	}
	if err != nil {
		return err
	}
	_, err = c.Response().Write(data)
	return err
}

func (sonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := sonic.ConfigStd.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body").SetInternal(err)
	}
	return nil
}
