package softgl

import "errors"

// Sentinel errors for the softgl package.
var (
	// ErrUnknownShader is returned by NewShader when the shader name isn't registered.
	ErrUnknownShader = errors.New("softgl: unknown shader")
)
