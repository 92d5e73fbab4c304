// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// TypingSpinner is the indicator shown while a reply is pending.
var TypingSpinner = spinner.Spinner{
	Frames: []string{"   ", ".  ", ".. ", "..."},
	FPS:    time.Second / 4,
}

// TypingLabel follows the spinner frames.
const TypingLabel = "is typing"
