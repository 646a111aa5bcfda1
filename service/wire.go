package service

import (
	"encoding/base64"

	"Reelgen/config"
	"Reelgen/pkg/secret"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ChannelService), "*"),
	wire.Bind(new(IChannelService), new(*ChannelService)),

	wire.Struct(new(VideoTemplateService), "*"),
	wire.Bind(new(IVideoTemplateService), new(*VideoTemplateService)),

	wire.Struct(new(HookTemplateService), "*"),
	wire.Bind(new(IHookTemplateService), new(*HookTemplateService)),

	wire.Struct(new(ThumbnailTemplateService), "*"),
	wire.Bind(new(IThumbnailTemplateService), new(*ThumbnailTemplateService)),

	wire.Struct(new(SettingsService), "*"),
	wire.Bind(new(ISettingsService), new(*SettingsService)),

	NewOssService,
	ProvideSealer,
)

// ProvideSealer 设置项加密器，密钥取 app.secret_key（32 字节 base64）
func ProvideSealer(cfg *config.Config) *secret.Sealer {
	key, err := base64.StdEncoding.DecodeString(cfg.App.SecretKey)
	if err != nil {
		panic(err)
	}
	sealer, err := secret.NewSealer(key)
	if err != nil {
		panic(err)
	}
	return sealer
}
