package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"coinhunt.klederson.com/internal/config"
	"coinhunt.klederson.com/internal/geo"
	"coinhunt.klederson.com/internal/hunt"
	"coinhunt.klederson.com/internal/radar"
	"coinhunt.klederson.com/internal/sim"
	"coinhunt.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and
// main.go. Because Bubble Tea uses value receivers, pointer fields
// ensure all copies see the same underlying data.
type shared struct {
	session *hunt.Session
	sweep   *radar.Sweep
	walker  *sim.Walker
	history *DistanceRing
	notices *noticeLog
}

// AppModel is the root Bubble Tea model for the hunt.
type AppModel struct {
	width  int
	height int

	hunting bool
	cursor  int

	shared *shared

	// Cached per-frame state
	playerPos geo.Point
	heading   *float64
	hasFix    bool
	blips     []radar.Blip
}

// New creates the app: one session owning the pool, engine, and wallet,
// plus the demo walker that stands in for the phone's sensors.
func New(start geo.Point, cfg hunt.Config, findLimit decimal.Decimal, seed int64, log *slog.Logger) (AppModel, error) {
	session, err := hunt.NewSession(cfg, findLimit, log)
	if err != nil {
		return AppModel{}, err
	}
	session.Start(sim.SeedCoins(start, seed))

	sh := &shared{
		session: session,
		sweep:   radar.NewSweep(config.SweepSpeedRPM, config.SweepTrailDeg),
		walker:  sim.NewWalker(start, seed),
		history: NewDistanceRing(120),
		notices: newNoticeLog(8),
	}
	session.Engine().AddListener(hunt.ListenerFunc(sh.onHuntEvent))

	return AppModel{
		hunting:   true,
		shared:    sh,
		playerPos: start,
	}, nil
}

// onHuntEvent folds engine notifications into the notice line and the
// approach history.
func (sh *shared) onHuntEvent(e hunt.Event) {
	switch ev := e.(type) {
	case hunt.TargetSet:
		sh.history.Reset()
		sh.notices.push(fmt.Sprintf("Tracking %s coin", ev.Coin.DisplayValue()))
	case hunt.TargetCleared:
		sh.history.Reset()
		sh.notices.push("No coins in range")
	case hunt.TargetCollected:
		sh.notices.push(fmt.Sprintf("Collected %s!", ev.Coin.DisplayValue()))
	case hunt.DistanceUpdated:
		sh.history.Push(ev.Meters)
	case hunt.EnteredCollectionRange:
		sh.notices.push(fmt.Sprintf("In reach: %s — press SPACE", ev.Coin.DisplayValue()))
	case hunt.ExitedCollectionRange:
		sh.notices.push("Out of reach again")
	case hunt.LockStateChanged:
		if ev.Locked {
			sh.notices.push("Coin locked: above your find limit")
		} else {
			sh.notices.push("Coin unlocked")
		}
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.shared.sweep.Update()
		m.refreshBlips()
		return m, tickCmd()

	case sim.PositionMsg:
		if m.hunting {
			m.playerPos = msg.Position
			m.heading = msg.Heading
			m.hasFix = true
			// The walker only feeds coordinates; this is the single
			// tick driver for the engine.
			_ = m.shared.session.Update(msg.Position, msg.Heading)
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shared.walker.Stop()
		return m, tea.Quit

	case "h", "H":
		m.hunting = !m.hunting

	case " ", "c", "C":
		res := m.shared.session.AttemptCollect()
		if !res.Collected {
			m.shared.notices.push("Denied: " + res.Reason.String())
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.blips)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(m.blips) {
			if err := m.shared.session.Engine().Pin(m.blips[m.cursor].ID); err == nil {
				m.shared.notices.push("Pinned " + m.blips[m.cursor].DisplayValue())
			}
		}

	case "u", "U":
		m.shared.session.Engine().Unpin()

	case "+", "=":
		m.bumpLimit(decimal.RequireFromString("5.00"))

	case "-", "_":
		m.bumpLimit(decimal.RequireFromString("-5.00"))
	}

	return m, nil
}

// bumpLimit stands in for the economy collaborator adjusting the find
// limit at runtime.
func (m AppModel) bumpLimit(delta decimal.Decimal) {
	next := m.shared.session.FindLimit().Add(delta)
	if next.IsNegative() {
		next = decimal.Zero
	}
	m.shared.session.SetFindLimit(next)
}

// refreshBlips snapshots the pool relative to the player.
func (m *AppModel) refreshBlips() {
	session := m.shared.session
	ranged := session.Pool().Ranged(m.playerPos)
	limit := session.FindLimit()
	targetID := ""
	if t, ok := session.Engine().CurrentTarget(); ok {
		targetID = t.ID
	}

	blips := make([]radar.Blip, 0, len(ranged))
	for _, rc := range ranged {
		blips = append(blips, radar.Blip{
			RangedCoin: rc,
			Target:     rc.ID == targetID,
			Locked:     rc.Locked(limit),
		})
	}
	m.blips = blips
	if m.cursor >= len(blips) {
		m.cursor = len(blips) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing hunt..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	radarW := m.width * 3 / 5
	if radarW < 30 {
		radarW = 30
	}
	sideW := m.width - radarW
	if sideW < 24 {
		sideW = 24
		radarW = m.width - sideW
	}

	session := m.shared.session

	menuBar := ui.RenderMenuBar(m.width, hunt.NameFor(session.Tier()), m.hunting)

	innerW := radarW - 4
	innerH := bodyH - 4
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	radarContent := radar.Render(innerW, innerH, m.blips, m.shared.sweep)
	legend := radar.RenderLegend(innerW)
	radarPanel := ui.RenderRadarPanel(radarW, bodyH, radarContent, legend)

	targetH := bodyH / 2
	info := m.targetInfo()
	targetPanel := ui.RenderTargetPanel(sideW, targetH, info)
	coinList := ui.RenderCoinList(m.coinRows(), sideW, bodyH-targetH, m.cursor)
	side := targetPanel + "\n" + coinList

	statusBar := ui.RenderStatusBar(m.width, ui.StatusInfo{
		Hunting:   m.hunting,
		Balance:   "$" + session.Wallet().Balance().StringFixed(2),
		Collected: session.Wallet().CollectedCount(),
		Remaining: session.Pool().Count(),
		FindLimit: "$" + session.FindLimit().StringFixed(2),
		Notice:    m.shared.notices.latest(),
	})

	return ui.ComposeLayout(menuBar, radarPanel, side, statusBar)
}

func (m AppModel) targetInfo() ui.TargetInfo {
	engine := m.shared.session.Engine()
	info := ui.TargetInfo{Spark: m.shared.history.Values()}

	t, ok := engine.CurrentTarget()
	if !ok {
		return info
	}
	info.HasTarget = true
	info.Value = t.DisplayValue()
	info.Locked = engine.IsLocked()
	info.Zone = engine.CurrentZone().String()
	info.Collectible = engine.CurrentZone() == hunt.ZoneCollectible

	if d, ok := engine.CurrentDistance(); ok {
		info.Distance = geo.FormatDistance(d)
	}
	if b, ok := engine.CurrentBearing(); ok {
		info.Bearing = b
		info.Cardinal = geo.CardinalDirection(b)
		if m.heading != nil {
			rel := geo.RelativeBearing(b, *m.heading)
			info.Relative = &rel
		}
	}
	return info
}

func (m AppModel) coinRows() []ui.CoinRow {
	rows := make([]ui.CoinRow, 0, len(m.blips))
	for _, b := range m.blips {
		rows = append(rows, ui.CoinRow{
			Value:    b.DisplayValue(),
			Distance: geo.FormatDistance(b.Distance),
			Cardinal: geo.CardinalDirection(b.Bearing),
			Target:   b.Target,
			Locked:   b.Locked,
		})
	}
	return rows
}

// StartSim launches the demo walker. Must be called before p.Run().
func (m *AppModel) StartSim(p *tea.Program) {
	m.shared.walker.Start(p)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
