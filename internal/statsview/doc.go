// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package statsview serves runtime statistics of the watch face host over
// HTTP. It is only functional when built with the statsview build tag:
//
//	go build -tags statsview ./cmd/watchface
//
// Charts are then served at localhost:12600/debug/statsview and the
// standard pprof handlers at localhost:12600/debug/pprof/.
package statsview

// Address is where the statistics server listens.
const Address = "localhost:12600"

const path = "/debug/statsview"
