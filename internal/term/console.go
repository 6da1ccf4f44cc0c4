// Package term implements the terminal shell on top of gocui.
package term

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"life-sandbox/internal/app"
	"life-sandbox/internal/core"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	viewField  = "field"
	viewStatus = "status"
	viewHelp   = "help"

	leftColumnWidth = 30
	helpHeight      = 2
)

type keyBinding struct {
	key      any
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is the gocui front end for a life session.
type Console struct {
	ctl      *app.Controller
	g        *gocui.Gui
	au       aurora.Aurora
	log      *slog.Logger
	keys     []keyBinding
	frame    time.Duration
	interval time.Duration
	seed     func() int64

	done chan struct{}
	once sync.Once
}

// NewConsole builds the terminal UI. The screen polls tps times per second
// and a running session advances once every `every` polls.
func NewConsole(ctl *app.Controller, tps, every int, logger *slog.Logger) (*Console, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	g.Mouse = true

	c := &Console{
		ctl:      ctl,
		g:        g,
		au:       aurora.NewAurora(true),
		log:      logger,
		frame:    TickInterval(tps, 1),
		interval: TickInterval(tps, every),
		seed:     func() int64 { return time.Now().UnixNano() },
		done:     make(chan struct{}),
	}
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", c.cmdQuit, ""},
		{'s', "S", "start", c.cmdStart, ""},
		{'c', "C", "clear", c.cmdClear, ""},
		{'r', "R", "reset", c.cmdReset, ""},
		{'t', "T", "stamp pattern", c.cmdStamp, ""},
		{gocui.MouseLeft, "LMB", "paint alive", c.cmdPaint(true), viewField},
		{gocui.MouseRight, "RMB", "paint dead", c.cmdPaint(false), viewField},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("term: bind %s: %w", kb.name, err)
		}
	}
	return c, nil
}

// Run blocks in the gocui main loop until the user quits.
func (c *Console) Run() error {
	defer c.g.Close()
	go c.tick()
	defer c.stop()

	if err := c.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (c *Console) stop() { c.once.Do(func() { close(c.done) }) }

// tick posts a step onto the main loop whenever a generation is due. The
// session is only touched from inside gocui's update callbacks.
func (c *Console) tick() {
	t := time.NewTicker(c.frame)
	defer t.Stop()
	pace(c.done, t.C, core.NewFixedStep(c.interval), func() {
		c.g.Update(func(g *gocui.Gui) error {
			if !c.ctl.Tick() {
				return nil
			}
			return c.refresh(g)
		})
	})
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	bottom := maxY - helpHeight - 1

	if v, err := g.SetView(viewStatus, 0, 0, leftColumnWidth, bottom); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	if v, err := g.SetView(viewField, leftColumnWidth+1, 0, maxX-1, bottom); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Game of Life"
		v.Frame = true
	}
	if v, err := g.SetView(viewHelp, -1, bottom, maxX, maxY); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, c.helpLine())
	}
	return c.refresh(g)
}

func (c *Console) refresh(g *gocui.Gui) error {
	session := c.ctl.Session()
	if v, err := g.View(viewField); err == nil {
		v.Clear()
		w, h := v.Size()
		fmt.Fprint(v, strings.Join(FieldLines(c.au, session.Grid(), w, h), "\n"))
	}
	if v, err := g.View(viewStatus); err == nil {
		v.Clear()
		for _, line := range StatusLines(c.au, session.Status(), c.ctl.Pattern()) {
			fmt.Fprintln(v, line)
		}
	}
	return nil
}

func (c *Console) helpLine() string {
	var b bytes.Buffer
	b.WriteString(" KEYS: ")
	for i, k := range c.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.au.Green(k.name).String())
		b.WriteString(" ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	c.stop()
	return gocui.ErrQuit
}

func (c *Console) cmdStart(_ *gocui.View) error {
	c.ctl.Start()
	return c.refresh(c.g)
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.ctl.Clear()
	return c.refresh(c.g)
}

func (c *Console) cmdReset(_ *gocui.View) error {
	c.ctl.Reset(c.seed())
	return c.refresh(c.g)
}

func (c *Console) cmdStamp(_ *gocui.View) error {
	if name, err := c.ctl.StampNext(); err == nil {
		c.log.Debug("stamped from terminal", "pattern", name)
	}
	return c.refresh(c.g)
}

// cmdPaint paints the clicked character. The terminal reports no drag
// motion, so each click is a one-cell stroke.
func (c *Console) cmdPaint(alive bool) func(v *gocui.View) error {
	return func(v *gocui.View) error {
		cx, cy := v.Cursor()
		ox, oy := v.Origin()
		c.ctl.Press(CursorPoint(c.ctl.Mapper(), cx+ox, cy+oy), alive)
		c.ctl.Release()
		return c.refresh(c.g)
	}
}
