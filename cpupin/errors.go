// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cpupin

import "errors"

// ErrAffinity reports that the underlying OS call to pin the worker's
// thread to its nominated CPU failed. The worker's task never runs in
// this case.
var ErrAffinity = errors.New("cpupin: failed to set CPU affinity")
