package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/swipe"
)

// Script 手势回放脚本
//
//	cards: [a, b, c]
//	steps:
//	  - drag: {dx: 200, ms: 150}
//	  - wait: 300
//	  - swipe: nope
type Script struct {
	Deck  string   `yaml:"deck"`
	Loop  bool     `yaml:"loop"`
	Cards []string `yaml:"cards"`
	Steps []Step   `yaml:"steps"`
}

// Step 脚本中的一步，只应设置一个字段
type Step struct {
	Drag    *Drag    `yaml:"drag"`
	Wait    float64  `yaml:"wait"`  // 毫秒
	Swipe   string   `yaml:"swipe"` // yup / nope
	Replace *Replace `yaml:"replace"`
	Toggle  string   `yaml:"toggle"` // loop / fade / gestures
}

// Drag 匀速拖拽，按帧采样后释放
type Drag struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
	Ms float64 `yaml:"ms"`
	// Cancel 为 true 时以取消代替释放
	Cancel bool `yaml:"cancel"`
}

// Replace 替换卡片
type Replace struct {
	Cards []string `yaml:"cards"`
	Keep  bool     `yaml:"keep"`
}

// Event 回放中观察到的一次回调或判定
type Event struct {
	Frame int
	Kind  string
	Card  string
	Index int
}

func (e Event) String() string {
	switch e.Kind {
	case "removed":
		return fmt.Sprintf("frame %4d  %-8s index=%d", e.Frame, e.Kind, e.Index)
	case "yup", "nope":
		return fmt.Sprintf("frame %4d  %-8s %s", e.Frame, e.Kind, e.Card)
	default:
		return fmt.Sprintf("frame %4d  %s", e.Frame, e.Kind)
	}
}

// LoadScript 读取并解析脚本文件
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript 解析 YAML 脚本
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal script: %w", err)
	}
	if len(s.Cards) == 0 {
		return nil, fmt.Errorf("script has no cards")
	}
	return &s, nil
}

// runner 以固定帧率驱动卡片堆
type runner struct {
	swiper  *swipe.Swiper[string]
	frame   int
	frameMs float64
	events  []Event
	log     io.Writer
}

// Run 回放脚本，返回按发生顺序排列的事件
func Run(s *Script, deck config.DeckConfig, log io.Writer) ([]Event, error) {
	if log == nil {
		log = io.Discard
	}
	r := &runner{log: log, frameMs: 1000.0 / float64(deck.FPS)}

	deck.Loop = deck.Loop || s.Loop
	opts := config.ToOptions[string](deck)
	opts.HandleYup = func(c string) { r.record(Event{Kind: "yup", Card: c}) }
	opts.HandleNope = func(c string) { r.record(Event{Kind: "nope", Card: c}) }
	opts.OnCardRemoved = func(i int) { r.record(Event{Kind: "removed", Index: i}) }
	opts.Logger = func(format string, args ...any) {
		fmt.Fprintf(log, "  "+format+"\n", args...)
	}
	r.swiper = swipe.New(s.Cards, opts)

	for i, step := range s.Steps {
		if err := r.apply(step); err != nil {
			return r.events, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	r.record(Event{Kind: fmt.Sprintf("end index=%d state=%s", r.swiper.Index(), r.swiper.State())})
	return r.events, nil
}

func (r *runner) record(e Event) {
	e.Frame = r.frame
	r.events = append(r.events, e)
	fmt.Fprintln(r.log, e)
}

func (r *runner) tick(n int) {
	for i := 0; i < n; i++ {
		r.swiper.Update()
		r.frame++
	}
}

func (r *runner) apply(step Step) error {
	switch {
	case step.Drag != nil:
		r.drag(*step.Drag)
	case step.Wait > 0:
		r.tick(int(step.Wait / r.frameMs))
	case step.Swipe != "":
		outcome, err := parseOutcome(step.Swipe)
		if err != nil {
			return err
		}
		if !r.swiper.Swipe(outcome) {
			r.record(Event{Kind: "swipe ignored"})
		}
	case step.Replace != nil:
		policy := swipe.ResetToStart
		if step.Replace.Keep {
			policy = swipe.KeepIndex
		}
		r.swiper.Replace(step.Replace.Cards, policy)
		r.record(Event{Kind: fmt.Sprintf("replaced index=%d", r.swiper.Index())})
	case step.Toggle != "":
		return r.toggle(step.Toggle)
	default:
		return fmt.Errorf("empty step")
	}
	return nil
}

// drag 按帧均匀插值位移，同时喂给速度估计器
func (r *runner) drag(d Drag) {
	vt := swipe.NewVelocityTracker()
	frames := int(d.Ms / r.frameMs)
	if frames < 1 {
		frames = 1
	}
	start := float64(r.frame) * r.frameMs
	vt.AddSample(0, 0, start)

	claimed := false
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		dx, dy := d.DX*t, d.DY*t
		vt.AddSample(dx, dy, start+float64(i)*r.frameMs)
		if r.swiper.PointerMove(dx, dy) {
			claimed = true
		}
		r.tick(1)
	}
	if !claimed {
		r.record(Event{Kind: "drag not claimed"})
		return
	}

	if d.Cancel {
		r.swiper.PointerCancel()
		r.record(Event{Kind: "cancelled"})
		return
	}
	vx, vy := vt.Velocity()
	if dec, ok := r.swiper.PointerRelease(vx, vy); ok {
		r.record(Event{Kind: fmt.Sprintf("release x=%.0f vx=%.2f -> %s", dec.X, vx, dec.Outcome)})
	}
}

func (r *runner) toggle(name string) error {
	opts := r.swiper.Options()
	switch name {
	case "loop":
		r.swiper.SetLoop(!opts.Loop)
	case "fade":
		r.swiper.SetFadeOnSwipe(!opts.FadeOnSwipe)
	case "gestures":
		r.swiper.SetDisableGestures(!opts.DisableGestures)
	default:
		return fmt.Errorf("unknown toggle %q", name)
	}
	return nil
}

func parseOutcome(s string) (swipe.Outcome, error) {
	switch s {
	case "yup":
		return swipe.OutcomeYup, nil
	case "nope":
		return swipe.OutcomeNope, nil
	default:
		return swipe.OutcomeReturn, fmt.Errorf("unknown swipe direction %q", s)
	}
}
