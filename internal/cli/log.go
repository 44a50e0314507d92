package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// EnvDebug가 비어있지 않으면 debug 로그를 출력한다.
const EnvDebug = "N_DEBUG"

// newLogger는 타임스탬프 포맷이 지정된 logger를 생성한다.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "n",
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext는 ctx에 저장된 logger를 반환한다. 없으면 log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
