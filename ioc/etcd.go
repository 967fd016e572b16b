package ioc

import (
	"time"

	"github.com/spf13/viper"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// InitEtcdClient 没有配置 endpoints 时返回 nil，远程服务直连
func InitEtcdClient() *clientv3.Client {
	type Config struct {
		Endpoints []string `yaml:"endpoints"`
	}
	var cfg Config
	err := viper.UnmarshalKey("etcd", &cfg)
	if err != nil {
		panic(err)
	}
	if len(cfg.Endpoints) == 0 {
		return nil
	}
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: time.Second * 5,
	})
	if err != nil {
		panic(err)
	}
	return cli
}
