// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixseq

import "errors"

// ErrTagMissing reports that a message carries no "34=" tag at all.
var ErrTagMissing = errors.New("fixseq: message has no 34= tag")

// ErrMalformedNumber reports that the bytes between "34=" and the next
// SOH are not a valid unsigned decimal number.
var ErrMalformedNumber = errors.New("fixseq: 34= value is not a valid sequence number")
