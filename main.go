package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// @title MGP Calculator UY1
// @version 1.0
// @description Université de Yaoundé I 的 MGP 计算服务
// @BasePath /
func main() {
	initViper()
	server := InitWebServer()
	err := server.Start()
	if err != nil {
		panic(err)
	}
}

func initViper() {
	// .env 可选，配置文件里的 ${VAR} 用环境变量替换
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	defaultConfig := "config/dev.yaml"
	if f := os.Getenv("MGP_CONFIG"); f != "" {
		defaultConfig = f
	}
	cfile := pflag.String("config", defaultConfig, "配置文件路径")
	pflag.Parse()

	content, err := os.ReadFile(*cfile)
	if err != nil {
		panic(err)
	}
	viper.SetConfigType("yaml")
	err = viper.ReadConfig(strings.NewReader(os.ExpandEnv(string(content))))
	if err != nil {
		panic(err)
	}
}
