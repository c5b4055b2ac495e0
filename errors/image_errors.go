// api/errors/image_errors.go
package errors

import "errors"

var (
	ErrImageProvider       = errors.New("vision provider request failed")
	ErrInvalidImageRequest = errors.New("invalid image request")
	ErrRenderFailed        = errors.New("room render failed")
	ErrInvalidRoomScene    = errors.New("invalid room scene")
	ErrStorageUpload       = errors.New("storage upload failed")
)
