package ioc

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/contrib/registry/etcd/v2"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/spf13/viper"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/repository"
	"github.com/uy1-mgp/bff/service"
	"github.com/uy1-mgp/bff/web/client"
	clientv3 "go.etcd.io/etcd/client/v3"
)

const (
	UpstreamLocal  = "local"
	UpstreamRemote = "remote"
)

type UpstreamConfig struct {
	// Mode local 进程内计算，remote 调用远程 MGP 服务
	Mode string `yaml:"mode"`
	// Endpoint 例如 http://127.0.0.1:8081 或 discovery:///mgp-service
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

func (c UpstreamConfig) remote() bool {
	return c.Mode == UpstreamRemote
}

func InitUpstreamConfig() UpstreamConfig {
	cfg := UpstreamConfig{
		Mode:    UpstreamLocal,
		Timeout: time.Second * 5,
	}
	err := viper.UnmarshalKey("upstream", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.remote() && cfg.Endpoint == "" {
		panic("upstream.endpoint 不能为空")
	}
	return cfg
}

// InitUpstreamClient 本地模式下返回 nil
func InitUpstreamClient(cfg UpstreamConfig, ecli *clientv3.Client) *khttp.Client {
	if !cfg.remote() {
		return nil
	}
	opts := []khttp.ClientOption{
		khttp.WithEndpoint(cfg.Endpoint),
		khttp.WithTimeout(cfg.Timeout),
	}
	if ecli != nil {
		opts = append(opts, khttp.WithDiscovery(etcd.New(ecli)))
	}
	cc, err := khttp.NewClient(context.Background(), opts...)
	if err != nil {
		panic(err)
	}
	return cc
}

func InitCalculationService(cfg UpstreamConfig, cc *khttp.Client, idGen service.IdGenerator,
	l logger.Logger) service.CalculationService {
	if cfg.remote() {
		return client.NewRemoteCalculationService(cc, l)
	}
	return service.NewLocalCalculationService(idGen)
}

func InitTranscriptExporter(cfg UpstreamConfig, cc *khttp.Client, repo repository.ResultRepository,
	renderer service.TranscriptRenderer) service.TranscriptExporter {
	if !cfg.remote() {
		return service.NewPDFTranscriptExporter(repo, renderer)
	}
	exporter, err := client.NewRemoteTranscriptExporter(cc, cfg.Endpoint)
	if err != nil {
		panic(err)
	}
	return exporter
}
