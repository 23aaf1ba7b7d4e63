package main

import (
	"context"
	"flag"
	"time"

	klog "k8s.io/klog/v2"

	"github.com/shipmight/shipmight/internal/logging"
)

// quietKlog limits klog noise from k8s client-go.
func quietKlog() {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("stderrthreshold", "FATAL")
	_ = fs.Set("v", "0")
	_ = fs.Set("logtostderr", "false")
	_ = fs.Set("alsologtostderr", "false")
}

// withCmdRunLogger emits CMD:<operation>/S and returns a context whose logger
// carries resourceId, plus a cleanup that emits /EOK or /EFAIL with the
// elapsed seconds.
//
//	ctx, cleanup := withCmdRunLogger(ctx, "app.create", name)
//	defer func() { cleanup(err) }()
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	startAt := time.Now()
	logger := logging.FromContext(ctx).With("resourceId", resourceID)
	ctx = logging.WithLogger(ctx, logger)
	logger.Info(ctx, "CMD:"+operation+"/S")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "err", "", "elapsed", elapsed)
			return
		}
		errStr := err.Error()
		if len(errStr) > 32 {
			errStr = errStr[:32] + "..."
		}
		logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", errStr, "elapsed", elapsed)
	}
	return ctx, cleanup
}
