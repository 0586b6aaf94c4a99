// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package mpscseg

// RaceEnabled is true when the race detector is active. Tests use it to
// skip the highest-volume chunk-churn stress case, which is prohibitively
// slow (though not incorrect) under instrumentation.
const RaceEnabled = true
