//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewChannel,
	NewVideoTemplate,
	NewHookTemplate,
	NewThumbnailTemplate,
	NewSetting,
)
