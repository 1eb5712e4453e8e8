// Package utils 提供前端通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回第一个触摸点，没有触摸时返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
//
// 触摸释放的那一帧已经拿不到触摸坐标，此时返回鼠标位置；
// 释放帧只需要按下状态，坐标不参与计算。
func GetPointerState() (pressed bool, x, y int) {
	x, y = GetPointerPosition()
	return IsPointerPressed(), x, y
}
