// SPDX-License-Identifier: MIT

// Command algoviz runs the visualizer engines in a terminal.
//
//	algoviz grid  --algo astar --rows 15 --cols 30 --seed 7
//	algoviz sort  --algo merge --values 5,3,8,1
//	algoviz match --algo kmp --text ABABDABACDABABCABAB --pattern ABABCABAB
//	algoviz algorithms
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
