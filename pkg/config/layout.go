package config

// 布局配置常量
// 所有坐标使用逻辑屏幕坐标，Ebitengine 负责缩放到实际窗口

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 480
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// CardWidth 卡片宽度（像素）
	CardWidth = 320.0
	// CardHeight 卡片高度（像素）
	CardHeight = 440.0

	// DeckCenterX 卡片堆中心X坐标（活动卡片静止时的中心）
	DeckCenterX = GameWindowWidth / 2.0
	// DeckCenterY 卡片堆中心Y坐标，略偏上给底部 HUD 留位置
	DeckCenterY = 330.0

	// CardCornerRadius 卡片圆角半径
	CardCornerRadius = 18.0

	// BadgeWidth / BadgeHeight 是 Yup/Nope 徽章尺寸
	BadgeWidth  = 120.0
	BadgeHeight = 48.0
	// BadgeMarginY 徽章距卡片堆顶部的距离
	BadgeMarginY = 36.0

	// HUDY 底部统计信息的Y坐标
	HUDY = GameWindowHeight - 60
)
