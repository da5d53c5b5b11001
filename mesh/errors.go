package mesh

import "errors"

var (
	// ErrNoMesh is returned when a glTF document doesn't contain any mesh.
	ErrNoMesh = errors.New("mesh: document has no mesh")
	// ErrNoPositions is returned when a triangle primitive has no POSITION attribute.
	ErrNoPositions = errors.New("mesh: primitive has no positions")
)
