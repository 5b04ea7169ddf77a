// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/gogpu/watchface"
)

// Launch starts the statistics server on a new goroutine and returns a
// function stopping it.
func Launch() (stop func()) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go func() {
		if err := mgr.Start(); err != nil {
			watchface.Logger().Warn("statsview: server stopped", "err", err)
		}
	}()
	watchface.Logger().Info("statsview: stats server available", "url", "http://"+Address+path)
	return mgr.Stop
}

// Available reports whether Launch starts a server.
func Available() bool {
	return true
}
