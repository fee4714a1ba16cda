package webapi

import (
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LogController lets an operator change the log level and output of a running server.
type LogController struct {
	mu      sync.Mutex
	level   log.Level
	output  string
	handler *clog.Handler
}

type logSettings struct {
	LogLevel  string `json:"log_level"`
	LogOutput string `json:"log_output"`
}

func NewLogController(handler *clog.Handler, level log.Level, output string) *LogController {
	return &LogController{handler: handler, level: level, output: output}
}

func (lc *LogController) ShowCurrentLogging(c echo.Context) error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return c.JSON(http.StatusOK, lc.settings())
}

func (lc *LogController) SetLogLevel(c echo.Context) error {
	var req logSettings
	if err := c.Bind(&req); err != nil {
		return err
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	level, err := log.ParseLevel(req.LogLevel)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Wrapf(err, "invalid log level %s", req.LogLevel).Error())
	}

	lc.level = level
	log.SetLevel(level)
	clog.UsingCtx(clog.CtxServer).Infof("Log level set to %s", level)

	return c.JSON(http.StatusOK, lc.settings())
}

// SetLogOutput switches the log output to stdout, stderr or a file path.
func (lc *LogController) SetLogOutput(c echo.Context) error {
	var req logSettings
	if err := c.Bind(&req); err != nil {
		return err
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	var w io.Writer
	switch req.LogOutput {
	case "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	case "":
		return echo.NewHTTPError(http.StatusBadRequest, "log_output is required")
	default:
		f, err := os.OpenFile(req.LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.Wrapf(err, "failed to open log output %s", req.LogOutput).Error())
		}
		w = f
	}

	lc.handler.SetOutput(w)
	lc.output = req.LogOutput

	return c.JSON(http.StatusOK, lc.settings())
}

func (lc *LogController) settings() logSettings {
	return logSettings{LogLevel: lc.level.String(), LogOutput: lc.output}
}
