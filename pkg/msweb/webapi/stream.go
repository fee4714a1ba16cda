package webapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/edea-dev/msweb/pkg/pages"
	"github.com/labstack/echo/v4"
)

const MIMEApplicationNDJSON = "application/x-ndjson"

const (
	lineData  = "data"
	lineChunk = "chunk"
	lineError = "error"
)

// streamLine is a data or chunk line. Data is always present, null included.
type streamLine struct {
	Type    string `json:"type"`
	Key     string `json:"key,omitempty"`
	Data    any    `json:"data"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

type errorLine struct {
	Type    string `json:"type"`
	Key     string `json:"key"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func wantsStream(c echo.Context) bool {
	if c.QueryParam("stream") == "1" {
		return true
	}

	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), MIMEApplicationNDJSON)
}

// streamPage writes the resolved fields as the first line and then one line per
// deferred field in the order they finish. Once the status is written failures
// can only be reported in band, so streamPage always returns nil.
func streamPage(c echo.Context, page *pages.Page) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, MIMEApplicationNDJSON)
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(res)
	write := func(line any) {
		if err := enc.Encode(line); err != nil {
			return
		}
		res.Flush()
	}

	write(streamLine{Type: lineData, Data: page.Data})

	for key, d := range page.Finished() {
		value, err := d.Result()
		if err != nil {
			status, msg := errorStatus(err)
			write(errorLine{Type: lineError, Key: key, Status: status, Message: msg})
			continue
		}

		write(streamLine{Type: lineChunk, Key: key, Data: value})
	}

	return nil
}
