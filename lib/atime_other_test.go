// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package clwrap // import "modernc.org/clwrap/lib"

import (
	"os"
	"time"
)

func atime(fi os.FileInfo) (time.Time, bool) { return time.Time{}, false }
