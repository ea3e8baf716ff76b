package main

import (
	"context"
	"os"
	"os/signal"

	"uftool/pkg/ufcli"
)

func main() {
	// Ctrl+C 时压测在两次试验之间停下来
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := ufcli.Execute(ctx, ufcli.NewRootCmd())
	// 不要用defer，因为os.Exit()不会执行defer
	stop()
	os.Exit(code)
}
