//go:build mobile

// Package mobile 把页面应用注册给 ebitenmobile
//
// 只在 -tags mobile 时编译。Android 生成 .aar，iOS 生成 .xcframework：
//
//	mkdir -p mobile/data && cp -r data/config data/project_data.json mobile/data/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.folio -o build/android/folio.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Folio.xcframework ./mobile
//
// 第一步把 data/ 中需要的文件复制到本目录，//go:embed 只能嵌入包目录内的文件。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/folio/pkg/app"
	"github.com/decker502/folio/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose: true, // Enable verbose logging for debugging
		Page:    "",   // 落地页
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(a)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
