//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/uy1-mgp/bff/ioc"
	"github.com/uy1-mgp/bff/pkg/ginx"
	"github.com/uy1-mgp/bff/pkg/pdfx"
	"github.com/uy1-mgp/bff/repository"
	"github.com/uy1-mgp/bff/repository/cache"
	"github.com/uy1-mgp/bff/repository/dao"
	"github.com/uy1-mgp/bff/service"
	"github.com/uy1-mgp/bff/web"
)

func InitWebServer() *ginx.Server {
	wire.Build(
		ioc.InitGinServer,
		web.NewMGPHandler, web.NewDraftHandler, web.NewHomeHandler, ioc.InitJwtHandler,
		service.NewMGPService, service.NewDraftService, ioc.InitEntryValidator,
		service.NewTimestampIdGenerator,
		pdfx.NewTranscriptRenderer,
		wire.Bind(new(service.TranscriptRenderer), new(*pdfx.TranscriptRenderer)),
		// 计算服务，本地或者远程
		ioc.InitUpstreamConfig,
		ioc.InitUpstreamClient,
		ioc.InitCalculationService,
		ioc.InitTranscriptExporter,
		repository.NewCachedResultRepository, repository.NewCachedDraftRepository,
		dao.NewGORMResultDAO,
		cache.NewRedisResultCache, cache.NewRedisDraftCache,
		// 组件
		ioc.InitEtcdClient,
		ioc.InitLogger,
		ioc.InitRedis,
		ioc.InitDB,
	)
	return &ginx.Server{}
}
