// Package swipe 实现可滑动卡片堆的核心状态机
//
// 该包不依赖任何渲染后端，只负责：
//   - 把指针拖拽采样转换为卡片偏移（GestureTracker）
//   - 根据释放时的位移和速度判定接受 / 拒绝 / 回弹
//   - 驱动入场弹簧、回弹弹簧、飞出动画（Animator）
//   - 维护卡片序列和当前索引（Deck）
//   - 每帧计算堆叠卡片的偏移、缩放、旋转、透明度（StackFrame）
//
// 前端（Ebitengine 场景、终端界面）只需要：
//  1. 把指针事件转发给 Swiper.PointerMove / PointerRelease / PointerCancel
//  2. 每帧调用 Swiper.Update()
//  3. 实现 Composer 接口并调用 Swiper.Render()
//
// Swiper 不是并发安全的，必须在同一个更新循环中使用。
package swipe
