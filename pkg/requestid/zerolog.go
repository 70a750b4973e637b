package requestid

import (
	"context"

	"github.com/rs/zerolog"
)

// LogField is the key the identifier is logged under.
const LogField = "request_id"

// LogHook adds the current request ID to events whose context carries one:
//
//	logger := zerolog.New(os.Stdout).Hook(requestid.LogHook{})
//	logger.Info().Ctx(r.Context()).Msg("handled")
type LogHook struct{}

// Run implements zerolog.Hook.
func (LogHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if id, ok := Current(e.GetCtx()); ok {
		e.Str(LogField, id)
	}
}

// Logger returns the logger attached to ctx with the request ID added as a
// field. The request ID is preferred over the current slot so the field stays
// available after the middleware has returned.
func Logger(ctx context.Context) zerolog.Logger {
	lc := zerolog.Ctx(ctx).With()
	if id, ok := FromContext(ctx); ok {
		return lc.Str(LogField, id.String()).Logger()
	}
	if id, ok := Current(ctx); ok {
		return lc.Str(LogField, id).Logger()
	}
	return lc.Logger()
}
