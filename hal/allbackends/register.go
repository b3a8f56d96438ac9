// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package allbackends

import (
	// Import all HAL backends for side-effect registration.
	// Each backend's init() function registers it with hal.RegisterBackend().

	// Software backend - always available on every platform, useful for
	// testing and as a fallback when no hardware backend is present.
	_ "github.com/gogpu/gpu/hal/software"
)
