package logging

import (
	"context"
	"fmt"
	"strings"
)

// PrintfAdapter exposes a Logger through the Printf/Fatalf pair expected by
// libraries such as goose. Fatalf logs at error level and then panics, so the
// caller can recover instead of the process exiting.
type PrintfAdapter struct {
	l Logger
}

func NewPrintfAdapter(l Logger) *PrintfAdapter {
	return &PrintfAdapter{l: l}
}

func (a *PrintfAdapter) Printf(format string, v ...any) {
	a.l.Info(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (a *PrintfAdapter) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	a.l.Error(context.Background(), msg)
	panic(msg)
}
