package nakama

import (
	"errors"

	"coup/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// toRuntimeError converts engine errors into Nakama runtime errors so clients
// receive the suggested gRPC-style status code alongside the message.
func toRuntimeError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *app.Error
	if errors.As(err, &appErr) {
		return runtime.NewError(appErr.Message, appErr.Code)
	}
	return runtime.NewError("internal server error", app.CodeInternal)
}
