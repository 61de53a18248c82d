// Copyright 2026 The CLWRAP Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwrap // import "modernc.org/clwrap/lib"

import (
	"os"
	"syscall"
	"time"
)

// atime returns the last access time of fi.
func atime(fi os.FileInfo) (time.Time, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(st.Atim.Sec, st.Atim.Nsec), true
}
