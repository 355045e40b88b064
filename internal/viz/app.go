package viz

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/crossplot/internal/config"
	"github.com/san-kum/crossplot/internal/interact"
	"github.com/san-kum/crossplot/internal/project"
	"github.com/san-kum/crossplot/internal/session"
	"github.com/san-kum/crossplot/internal/table"
)

const (
	headerRows        = 2
	columnNameWidth   = 18
	doubleClickWindow = 400 * time.Millisecond
)

type loadedMsg struct {
	tok   session.Token
	table *table.Table
	err   error
}

// App is the terminal crossplot explorer. The braille dot grid of the plot
// area is the pixel space handed to the interaction controller.
type App struct {
	cfg  *config.Config
	sess *session.Session
	path string

	width, height int
	xIdx, yIdx    int
	hover         *project.Point
	err           error
	loading       bool

	now        func() time.Time
	lastPress  time.Time
	lastPressX int
	lastPressY int
}

// NewApp explores path, or the sample table when path is empty.
func NewApp(cfg *config.Config, path string) *App {
	SetTheme(cfg.Theme)
	return &App{
		cfg:    cfg,
		sess:   session.New(cfg.InteractOptions()),
		path:   path,
		width:  80,
		height: 24,
		now:    time.Now,
	}
}

func (a *App) Init() tea.Cmd { return a.load() }

// load starts an asynchronous read. Only the result of the most recent
// load is installed.
func (a *App) load() tea.Cmd {
	tok := a.sess.BeginLoad()
	a.loading = true
	path, opts := a.path, a.cfg.LoadOptions()
	return func() tea.Msg {
		if path == "" {
			return loadedMsg{tok: tok, table: table.Sample()}
		}
		t, err := table.Load(path, opts)
		return loadedMsg{tok: tok, table: t, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case loadedMsg:
		a.installLoad(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	}
	return a, nil
}

func (a *App) installLoad(msg loadedMsg) {
	err := a.sess.Complete(msg.tok, msg.table, msg.err)
	if errors.Is(err, session.ErrStaleLoad) {
		log.Printf("crossplot: dropped superseded load #%d", msg.tok)
		return
	}
	a.loading, a.err, a.hover = false, err, nil
	a.xIdx, a.yIdx = 0, 1
	if err != nil {
		log.Printf("crossplot: load %s failed: %v", a.source(), err)
		return
	}
	log.Printf("crossplot: loaded %s (%s)", a.source(), a.sess.Summary())
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := a.sess.Controller()
	opts := a.plotOptions()
	w, h := float64(opts.Cols*2), float64(opts.Rows*4)

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "x":
		a.cycle(&a.xIdx, 1)
	case "X":
		a.cycle(&a.xIdx, -1)
	case "y":
		a.cycle(&a.yIdx, 1)
	case "Y":
		a.cycle(&a.yIdx, -1)
	case "f":
		ctrl.DoubleClick()
	case "+", "=":
		ctrl.Wheel(w/2, h/2, w, h, -1)
	case "-", "_":
		ctrl.Wheel(w/2, h/2, w, h, 1)
	case "t":
		NextTheme()
	case "r":
		return a, a.load()
	}
	return a, nil
}

func (a *App) cycle(idx *int, step int) {
	t := a.sess.Table()
	if t == nil || len(t.Headers) == 0 {
		return
	}
	n := len(t.Headers)
	*idx = ((*idx+step)%n + n) % n
	a.err = a.sess.Select(t.Headers[a.xIdx%n], t.Headers[a.yIdx%n])
	a.hover = nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	ctrl := a.sess.Controller()
	x, y, inside := a.dotAt(msg.X, msg.Y)
	opts := a.plotOptions()
	w, h := float64(opts.Cols*2), float64(opts.Rows*4)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if inside {
			ctrl.Wheel(x, y, w, h, -1)
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if inside {
			ctrl.Wheel(x, y, w, h, 1)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside {
			break
		}
		now := a.now()
		if now.Sub(a.lastPress) < doubleClickWindow && msg.X == a.lastPressX && msg.Y == a.lastPressY {
			ctrl.DoubleClick()
			a.lastPress = time.Time{}
			break
		}
		ctrl.PointerDown(x, y)
		a.lastPress, a.lastPressX, a.lastPressY = now, msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		ctrl.PointerUp()
	case msg.Action == tea.MouseActionMotion:
		if ctrl.State() == interact.Dragging {
			if inside {
				ctrl.PointerMove(x, y, w, h)
			} else {
				ctrl.PointerLeave()
			}
		}
	}

	a.hover = nil
	if inside {
		if p, ok := a.sess.Hover(x, y, w, h, a.cfg.HoverRadius); ok {
			a.hover = &p
		}
	}
}

func (a *App) plotOptions() PlotOptions {
	return PlotOptions{
		Cols:       max(a.width-DefaultLabelWidth-4, 10),
		Rows:       max(a.height-headerRows-4, 4),
		LabelWidth: DefaultLabelWidth,
		Hover:      a.hover,
	}
}

// dotAt maps a terminal cell to the centre of its braille cell in plot dots.
func (a *App) dotAt(cx, cy int) (x, y float64, inside bool) {
	opts := a.plotOptions()
	ox, oy := opts.Origin()
	col, row := cx-ox, cy-headerRows-oy
	inside = col >= 0 && col < opts.Cols && row >= 0 && row < opts.Rows
	return float64(col*2 + 1), float64(row*4 + 2), inside
}

func (a *App) source() string {
	if a.path == "" {
		return "sample"
	}
	return a.path
}

func (a *App) View() string {
	th := CurrentTheme
	title := lipgloss.NewStyle().Foreground(th.Title).Bold(true)
	text := lipgloss.NewStyle().Foreground(th.Text)
	muted := lipgloss.NewStyle().Foreground(th.Muted)
	frame := lipgloss.NewStyle().Foreground(th.Frame)
	ticks := lipgloss.NewStyle().Foreground(th.Ticks)
	points := lipgloss.NewStyle().Foreground(th.Points)
	errStyle := lipgloss.NewStyle().Foreground(th.Error).Bold(true)

	var b strings.Builder
	b.WriteString(title.Render("CROSSPLOT") + "  " + muted.Render(a.source()) + "  " + text.Render(a.sess.Summary()) + "\n")

	if a.sess.Table() == nil {
		switch {
		case a.err != nil:
			b.WriteString(errStyle.Render(a.err.Error()) + "\n")
		case a.loading:
			b.WriteString(muted.Render("loading...") + "\n")
		}
		b.WriteString("\n" + a.help() + "\n")
		return b.String()
	}

	xCol, yCol := a.sess.Columns()
	b.WriteString(muted.Render("x: ") + text.Render(runewidth.Truncate(xCol, columnNameWidth, "…")) +
		muted.Render("   y: ") + text.Render(runewidth.Truncate(yCol, columnNameWidth, "…")) +
		muted.Render(fmt.Sprintf("   %d points   %s", len(a.sess.Points()), a.sess.Viewport())) + "\n")

	f := RenderPlot(a.sess.Points(), a.sess.Viewport(), a.plotOptions())
	b.WriteString(frame.Render(f.Top) + "\n")
	for _, l := range f.Lines {
		b.WriteString(ticks.Render(l.Gutter) + points.Render(l.Canvas) + frame.Render(l.Edge) + "\n")
	}
	b.WriteString(frame.Render(f.Bottom) + "\n")
	b.WriteString(ticks.Render(f.XLabels) + "\n")

	switch {
	case a.err != nil:
		b.WriteString(errStyle.Render(a.err.Error()))
	case a.hover != nil:
		hl := lipgloss.NewStyle().Foreground(th.Hover).Bold(true)
		lines := a.hover.Label(xCol, yCol)
		b.WriteString(hl.Render(lines[0]+"   "+lines[1]) + muted.Render(fmt.Sprintf("   row %d", a.hover.Index+1)))
	default:
		b.WriteString(a.help())
	}
	return b.String()
}

func (a *App) help() string {
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	var parts []string
	for _, kv := range [][2]string{
		{"x/y", " column"}, {"drag", " pan"}, {"wheel", " zoom"}, {"f", " fit"},
		{"r", " reload"}, {"t", " theme"}, {"q", " quit"},
	} {
		parts = append(parts, key.Render(kv[0])+desc.Render(kv[1]))
	}
	return strings.Join(parts, "  ")
}

// RunApp runs the explorer on the alternate screen with mouse tracking.
func RunApp(cfg *config.Config, path string) error {
	p := tea.NewProgram(NewApp(cfg, path), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
