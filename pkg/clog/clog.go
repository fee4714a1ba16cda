package clog

import (
	"io"

	"github.com/apex/log"
)

// Subsystem names used as the "ctx" field on log entries.
const (
	CtxServer = "server"
	CtxAPI    = "api"
	CtxPages  = "pages"
	CtxForms  = "forms"
	CtxState  = "state"
	CtxProxy  = "proxy"
)

// Setup installs a Handler writing to w as the apex/log handler and sets the level.
func Setup(w io.Writer, level string) (*Handler, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	h := NewHandler(w)
	log.SetHandler(h)
	log.SetLevel(lvl)

	return h, nil
}

// UsingCtx returns an entry tagged with the subsystem it was logged from.
func UsingCtx(ctx string) *log.Entry {
	return log.WithField("ctx", ctx)
}
