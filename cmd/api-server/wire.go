//go:build wireinject
// +build wireinject

package main

import (
	"Reelgen/config"
	"Reelgen/dao"
	"Reelgen/dao/cache"
	"Reelgen/handler"
	"Reelgen/pkg/client"
	"Reelgen/pkg/database"
	"Reelgen/pkg/llm"
	"Reelgen/pkg/oss"
	"Reelgen/pkg/server"
	"Reelgen/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		oss.GetOssClient,
		config.ProvideOssConfig,
		config.ProvideLLMConfig,
		llm.NewClients,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Channel), "*"),
		wire.Struct(new(handler.VideoTemplate), "*"),
		wire.Struct(new(handler.HookTemplate), "*"),
		wire.Struct(new(handler.ThumbnailTemplate), "*"),
		wire.Struct(new(handler.Settings), "*"),
		wire.Struct(new(handler.Upload), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
