// @title Quiz Engine API
// @version 1.0
// @description 测试编辑、答题与成绩统计服务。

// @contact.name API支持
// @contact.url http://www.swagger.io/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"quiz_engine_backend/internal/app"
	"quiz_engine_backend/internal/config"
	"quiz_engine_backend/pkg/configwatcher"
	"quiz_engine_backend/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	watch := flag.Bool("watch", true, "配置文件修改后自动重新加载")
	flag.Parse()

	// .env 可选
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go func() {
			err := configwatcher.WatchConfig(config.ConfigFile(*configDir), application.Reload, application.Done())
			if err != nil {
				logger.Log.Warn("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	application.Run()
}
