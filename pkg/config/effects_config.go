package config

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/decker502/folio/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EffectsConfigPath 默认效果配置文件路径（嵌入资源）
const EffectsConfigPath = "data/config/effects.yaml"

// 轨迹粒子变体
const (
	TrailOrbit = "orbit" // 绕光标旋转的彩色轨迹
	TrailFree  = "free"  // 跟随光标散开的自由粒子
)

// EffectsConfig 装饰效果配置
type EffectsConfig struct {
	Ambient  AmbientConfig          `yaml:"ambient"`  // 环境模式（树叶、风）
	Creative CreativeConfig         `yaml:"creative"` // 创意模式（轨迹、画笔）
	Themes   map[string]ThemeConfig `yaml:"themes"`   // 主题名 -> 主题配置
}

// AmbientConfig 环境模式配置
type AmbientConfig struct {
	LeafIntervalMs float64    `yaml:"leafIntervalMs"` // 树叶生成间隔（毫秒）
	GustIntervalMs float64    `yaml:"gustIntervalMs"` // 风生成间隔（毫秒）
	Leaf           LeafConfig `yaml:"leaf"`
	Gust           GustConfig `yaml:"gust"`
}

// LeafConfig 树叶随机参数范围
type LeafConfig struct {
	TopMinPct   float64 `yaml:"topMinPct"`
	TopMaxPct   float64 `yaml:"topMaxPct"`
	DurationMin float64 `yaml:"durationMin"` // 秒
	DurationMax float64 `yaml:"durationMax"` // 秒
}

// GustConfig 风随机参数范围
type GustConfig struct {
	TopMinPct   float64 `yaml:"topMinPct"`
	TopMaxPct   float64 `yaml:"topMaxPct"`
	DurationMin float64 `yaml:"durationMin"`
	DurationMax float64 `yaml:"durationMax"`
}

// CreativeConfig 创意模式配置
type CreativeConfig struct {
	Trail string      `yaml:"trail"` // "orbit" 或 "free"
	Orbit OrbitConfig `yaml:"orbit"`
	Free  FreeConfig  `yaml:"free"`
	Paint PaintConfig `yaml:"paint"`
}

// OrbitConfig 轨道粒子参数
type OrbitConfig struct {
	Count     int     `yaml:"count"`     // 开启创意模式时生成的粒子数
	RadiusMin float64 `yaml:"radiusMin"` // 轨道半径范围
	RadiusMax float64 `yaml:"radiusMax"`
	Speed     float64 `yaml:"speed"` // 每帧角速度（弧度）
	WidthMin  float64 `yaml:"widthMin"`
	WidthMax  float64 `yaml:"widthMax"`
}

// FreeConfig 自由粒子参数
type FreeConfig struct {
	SpawnChance float64 `yaml:"spawnChance"` // 每次指针移动生成粒子的概率
	Burst       int     `yaml:"burst"`       // 每次点击生成的粒子数
	Speed       float64 `yaml:"speed"`       // 初速度分量范围宽度（±Speed/2）
	Damping     float64 `yaml:"damping"`     // 每帧速度衰减系数
	DecayMin    float64 `yaml:"decayMin"`
	DecayMax    float64 `yaml:"decayMax"`
	SizeMin     float64 `yaml:"sizeMin"`
	SizeMax     float64 `yaml:"sizeMax"`
}

// PaintConfig 画笔圆点参数
type PaintConfig struct {
	FadeMs float64 `yaml:"fadeMs"` // 淡出窗口（毫秒）
	Radius float64 `yaml:"radius"` // 圆点半径
}

// ThemeConfig 页面主题配置
type ThemeConfig struct {
	Count       int     `yaml:"count"`       // 切换主题时落下的装饰物数量
	DurationMin float64 `yaml:"durationMin"` // 下落时长范围（秒）
	DurationMax float64 `yaml:"durationMax"`
	ItemSize    float64 `yaml:"itemSize"`   // 装饰物尺寸（像素）
	Background  string  `yaml:"background"` // 背景色 "#rrggbb"
	Accent      string  `yaml:"accent"`     // 强调色 "#rrggbb"
}

// DefaultEffectsConfig 返回内置默认配置（与 data/config/effects.yaml 一致）
func DefaultEffectsConfig() *EffectsConfig {
	return &EffectsConfig{
		Ambient: AmbientConfig{
			LeafIntervalMs: 1000,
			GustIntervalMs: 2500,
			Leaf:           LeafConfig{TopMinPct: 10, TopMaxPct: 90, DurationMin: 6, DurationMax: 14},
			Gust:           GustConfig{TopMinPct: 5, TopMaxPct: 95, DurationMin: 4, DurationMax: 8},
		},
		Creative: CreativeConfig{
			Trail: TrailOrbit,
			Orbit: OrbitConfig{Count: 20, RadiusMin: 30, RadiusMax: 180, Speed: 0.02, WidthMin: 2, WidthMax: 5},
			Free: FreeConfig{
				SpawnChance: 0.3,
				Burst:       10,
				Speed:       4,
				Damping:     0.99,
				DecayMin:    0.005,
				DecayMax:    0.025,
				SizeMin:     2,
				SizeMax:     6,
			},
			Paint: PaintConfig{FadeMs: 1000, Radius: 5},
		},
		Themes: map[string]ThemeConfig{
			"theme-green":  {Count: 20, DurationMin: 5, DurationMax: 10, ItemSize: 32, Background: "#eef6ea", Accent: "#3f7d3a"},
			"theme-autumn": {Count: 20, DurationMin: 5, DurationMax: 10, ItemSize: 32, Background: "#f7efe4", Accent: "#b5581c"},
			"theme-snow":   {Count: 50, DurationMin: 2, DurationMax: 5, ItemSize: 32, Background: "#eef3f8", Accent: "#5b7896"},
		},
	}
}

// LoadEffectsConfig 从 YAML 文件加载效果配置
// 以 "data/" 开头的路径优先从嵌入资源读取
func LoadEffectsConfig(path string) (*EffectsConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects config: %w", err)
	}
	return ParseEffectsConfig(data)
}

// ParseEffectsConfig 解析并验证效果配置
func ParseEffectsConfig(data []byte) (*EffectsConfig, error) {
	var cfg EffectsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effects YAML: %w", err)
	}

	if cfg.Creative.Trail == "" {
		cfg.Creative.Trail = TrailOrbit
	}

	if err := validateEffectsConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid effects config: %w", err)
	}
	return &cfg, nil
}

// ThemeNames 返回按名称排序的主题列表
func (c *EffectsConfig) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateEffectsConfig 验证配置的有效性
func validateEffectsConfig(cfg *EffectsConfig) error {
	a := cfg.Ambient
	if a.LeafIntervalMs <= 0 {
		return fmt.Errorf("ambient.leafIntervalMs must be > 0, got %v", a.LeafIntervalMs)
	}
	if a.GustIntervalMs <= 0 {
		return fmt.Errorf("ambient.gustIntervalMs must be > 0, got %v", a.GustIntervalMs)
	}
	if err := checkRange("ambient.leaf.topPct", a.Leaf.TopMinPct, a.Leaf.TopMaxPct); err != nil {
		return err
	}
	if err := checkRange("ambient.leaf.duration", a.Leaf.DurationMin, a.Leaf.DurationMax); err != nil {
		return err
	}
	if err := checkRange("ambient.gust.topPct", a.Gust.TopMinPct, a.Gust.TopMaxPct); err != nil {
		return err
	}
	if err := checkRange("ambient.gust.duration", a.Gust.DurationMin, a.Gust.DurationMax); err != nil {
		return err
	}
	if a.Leaf.DurationMin <= 0 || a.Gust.DurationMin <= 0 {
		return fmt.Errorf("ambient durations must be > 0")
	}

	c := cfg.Creative
	if c.Trail != TrailOrbit && c.Trail != TrailFree {
		return fmt.Errorf("creative.trail must be %q or %q, got %q", TrailOrbit, TrailFree, c.Trail)
	}
	if c.Orbit.Count < 0 {
		return fmt.Errorf("creative.orbit.count must be >= 0, got %d", c.Orbit.Count)
	}
	if err := checkRange("creative.orbit.radius", c.Orbit.RadiusMin, c.Orbit.RadiusMax); err != nil {
		return err
	}
	if err := checkRange("creative.orbit.width", c.Orbit.WidthMin, c.Orbit.WidthMax); err != nil {
		return err
	}
	if c.Free.SpawnChance < 0 || c.Free.SpawnChance > 1 {
		return fmt.Errorf("creative.free.spawnChance must be in [0,1], got %v", c.Free.SpawnChance)
	}
	if c.Free.Burst < 0 {
		return fmt.Errorf("creative.free.burst must be >= 0, got %d", c.Free.Burst)
	}
	if c.Free.Damping <= 0 || c.Free.Damping > 1 {
		return fmt.Errorf("creative.free.damping must be in (0,1], got %v", c.Free.Damping)
	}
	if err := checkRange("creative.free.decay", c.Free.DecayMin, c.Free.DecayMax); err != nil {
		return err
	}
	if c.Free.DecayMin <= 0 {
		return fmt.Errorf("creative.free.decayMin must be > 0, got %v", c.Free.DecayMin)
	}
	if err := checkRange("creative.free.size", c.Free.SizeMin, c.Free.SizeMax); err != nil {
		return err
	}
	if c.Paint.FadeMs <= 0 {
		return fmt.Errorf("creative.paint.fadeMs must be > 0, got %v", c.Paint.FadeMs)
	}

	for name, theme := range cfg.Themes {
		if name == "" {
			return fmt.Errorf("theme name cannot be empty")
		}
		if theme.Count < 0 {
			return fmt.Errorf("theme %s: count must be >= 0, got %d", name, theme.Count)
		}
		if err := checkRange("theme "+name+" duration", theme.DurationMin, theme.DurationMax); err != nil {
			return err
		}
		if _, err := ParseHexColor(theme.Background); err != nil {
			return fmt.Errorf("theme %s: background: %w", name, err)
		}
		if _, err := ParseHexColor(theme.Accent); err != nil {
			return fmt.Errorf("theme %s: accent: %w", name, err)
		}
	}
	return nil
}

func checkRange(field string, min, max float64) error {
	if min > max {
		return fmt.Errorf("%s: min %v greater than max %v", field, min, max)
	}
	return nil
}

// ParseHexColor 解析 "#rrggbb" 颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// readConfigFile 读取配置文件：嵌入资源优先，其次本地文件
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}
