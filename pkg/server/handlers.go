package server

import (
	"Reelgen/handler"
)

type Handlers struct {
	Channel           *handler.Channel
	VideoTemplate     *handler.VideoTemplate
	HookTemplate      *handler.HookTemplate
	ThumbnailTemplate *handler.ThumbnailTemplate
	Settings          *handler.Settings
	Upload            *handler.Upload
}
