//go:build mobile

package mobile

import "embed"

// dataFS 移动端嵌入的数据文件（构建前从仓库根目录的 data/ 复制）
//
//go:embed data/config data/project_data.json
var dataFS embed.FS
