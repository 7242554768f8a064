package game

import (
	"time"

	"github.com/iburimskiy/sparkle/internal/effects"
)

const (
	navHeight  = 56.0
	margin     = 40.0
	revealTime = 600 * time.Millisecond
	revealLift = 20.0
	pulseTime  = 500 * time.Millisecond
)

type sectionID int

const (
	secHome sectionID = iota
	secServices
	secPortfolio
	secAbout
	secContact
	sectionCount
)

var (
	sectionTitles  = [sectionCount]string{"Home", "Services", "Portfolio", "About", "Contact"}
	sectionHeights = [sectionCount]float64{640, 600, 640, 440, 640}
)

type section struct {
	id     sectionID
	title  string
	top    float64
	height float64
}

type elementKind int

const (
	kindBox elementKind = iota
	kindButton
	kindCategory
	kindService
	kindPortfolio
	kindStats
	kindInput
)

// element is a laid-out piece of the page in document coordinates.
type element struct {
	kind  elementKind
	label string
	color string
	rect  effects.Rect

	// anchor is the section a button scrolls to, or -1.
	anchor sectionID

	revealable bool
	revealedAt time.Time
	pulseAt    time.Time
	hovered    bool
}

func (e *element) revealed() bool {
	return !e.revealable || !e.revealedAt.IsZero()
}

// revealProgress is 0 while hidden and eases to 1 over revealTime.
func (e *element) revealProgress(now time.Time) float64 {
	if !e.revealable {
		return 1
	}
	if e.revealedAt.IsZero() {
		return 0
	}
	return easeOut(now.Sub(e.revealedAt), revealTime)
}

type field struct {
	*element
	value   string
	focused bool
}

type stat struct {
	label   string
	target  int
	counter *effects.Counter
}

// page is the document: sections stacked vertically, each with its
// interactive elements.
type page struct {
	width    float64
	sections []section
	height   float64

	boxes      []*element
	cta        *element
	categories []*element
	services   []*element
	portfolio  []*element
	statsBox   *element
	stats      []*stat
	fields     []*field
	submit     *element
}

var (
	boxColors      = []string{"#6366f1", "#ec4899", "#06b6d4"}
	categoryTitles = []string{"Design", "Development"}
	serviceTitles  = [][]string{
		{"Brand identity", "UI / UX", "Motion design"},
		{"Web apps", "APIs", "Cloud hosting"},
	}
	portfolioTitles = []string{"Aurora", "Nimbus", "Helix", "Quartz", "Ember", "Tidal"}
	statLabels      = []string{"Projects", "Clients", "Years"}
	statTargets     = []int{120, 80, 15}
	fieldLabels     = []string{"Name", "Email", "Message"}
)

func newPage(width float64) *page {
	p := &page{}
	p.layout(width)
	return p
}

// layout positions every element for width. Reveal and input state survive
// a relayout.
func (p *page) layout(width float64) {
	if width == p.width && p.sections != nil {
		return
	}
	p.width = width

	p.sections = p.sections[:0]
	top := 0.0
	for i := sectionID(0); i < sectionCount; i++ {
		p.sections = append(p.sections, section{id: i, title: sectionTitles[i], top: top, height: sectionHeights[i]})
		top += sectionHeights[i]
	}
	p.height = top

	inner := width - 2*margin
	if inner < 200 {
		inner = 200
	}

	// Hero: three floating boxes and a call to action.
	home := p.sections[secHome]
	boxW := 90.0
	gap := (inner - boxW*3) / 4
	for i, c := range boxColors {
		r := effects.Rect{X: margin + gap + float64(i)*(boxW+gap), Y: home.top + 300, W: boxW, H: boxW}
		if i < len(p.boxes) {
			p.boxes[i].rect = r
			continue
		}
		p.boxes = append(p.boxes, &element{kind: kindBox, color: c, rect: r, anchor: -1})
	}
	cta := effects.Rect{X: margin, Y: home.top + 180, W: 160, H: 44}
	if p.cta == nil {
		p.cta = &element{kind: kindButton, label: "Get in touch", anchor: secContact}
	}
	p.cta.rect = cta

	// Services: two revealable categories holding three items each.
	svc := p.sections[secServices]
	catW := (inner - margin) / 2
	for ci := range categoryTitles {
		r := effects.Rect{X: margin + float64(ci)*(catW+margin), Y: svc.top + 90, W: catW, H: 420}
		if ci < len(p.categories) {
			p.categories[ci].rect = r
		} else {
			p.categories = append(p.categories, &element{kind: kindCategory, label: categoryTitles[ci], rect: r, revealable: true, anchor: -1})
		}
		for si, title := range serviceTitles[ci] {
			sr := effects.Rect{X: r.X + 20, Y: r.Y + 60 + float64(si)*110, W: r.W - 40, H: 90}
			idx := ci*len(serviceTitles[ci]) + si
			if idx < len(p.services) {
				p.services[idx].rect = sr
				continue
			}
			p.services = append(p.services, &element{kind: kindService, label: title, rect: sr, anchor: -1})
		}
	}

	// Portfolio: 3x2 grid.
	pf := p.sections[secPortfolio]
	cols := 3
	cellW := (inner - float64(cols-1)*20) / float64(cols)
	for i, title := range portfolioTitles {
		r := effects.Rect{
			X: margin + float64(i%cols)*(cellW+20),
			Y: pf.top + 90 + float64(i/cols)*250,
			W: cellW,
			H: 230,
		}
		if i < len(p.portfolio) {
			p.portfolio[i].rect = r
			continue
		}
		p.portfolio = append(p.portfolio, &element{kind: kindPortfolio, label: title, rect: r, revealable: true, anchor: -1})
	}

	// About: the stats strip.
	about := p.sections[secAbout]
	sr := effects.Rect{X: margin, Y: about.top + 140, W: inner, H: 160}
	if p.statsBox == nil {
		p.statsBox = &element{kind: kindStats, anchor: -1}
		for i, l := range statLabels {
			p.stats = append(p.stats, &stat{label: l, target: statTargets[i]})
		}
	}
	p.statsBox.rect = sr

	// Contact form.
	ct := p.sections[secContact]
	for i, l := range fieldLabels {
		h := 40.0
		if i == len(fieldLabels)-1 {
			h = 120
		}
		r := effects.Rect{X: margin, Y: ct.top + 100 + float64(i)*70, W: inner * 0.6, H: h}
		if i < len(p.fields) {
			p.fields[i].rect = r
			continue
		}
		p.fields = append(p.fields, &field{element: &element{kind: kindInput, label: l, rect: r, anchor: -1}})
	}
	last := p.fields[len(p.fields)-1].rect
	if p.submit == nil {
		p.submit = &element{kind: kindButton, label: "Send", anchor: -1}
	}
	p.submit.rect = effects.Rect{X: margin, Y: last.Y + last.H + 30, W: 140, H: 44}
}

// statRect is the box of the i-th counter inside the stats strip.
func (p *page) statRect(i int) effects.Rect {
	r := p.statsBox.rect
	w := r.W / float64(len(p.stats))
	return effects.Rect{X: r.X + float64(i)*w, Y: r.Y, W: w, H: r.H}
}

func (p *page) section(id sectionID) section {
	return p.sections[id]
}

// hoverables lists the elements with mouse-enter effects.
func (p *page) hoverables() []*element {
	out := make([]*element, 0, len(p.boxes)+len(p.services)+len(p.portfolio))
	out = append(out, p.boxes...)
	out = append(out, p.services...)
	out = append(out, p.portfolio...)
	return out
}

// revealables lists the elements that fade in when scrolled into view.
func (p *page) revealables() []*element {
	out := make([]*element, 0, len(p.categories)+len(p.portfolio))
	out = append(out, p.categories...)
	out = append(out, p.portfolio...)
	return out
}

func (p *page) resetForm() {
	for _, f := range p.fields {
		f.value = ""
		f.focused = false
	}
}

func (p *page) focusedField() *field {
	for _, f := range p.fields {
		if f.focused {
			return f
		}
	}
	return nil
}

// toScreen shifts a document rect by the scroll offset.
func toScreen(r effects.Rect, scrollY float64) effects.Rect {
	r.Y -= scrollY
	return r
}

// visibleRatio is the fraction of r's area inside the horizontal band
// [top, bottom] of a viewport of width w.
func visibleRatio(r effects.Rect, w, top, bottom float64) float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	ix := overlap(r.X, r.X+r.W, 0, w)
	iy := overlap(r.Y, r.Y+r.H, top, bottom)
	return ix * iy / (r.W * r.H)
}

func overlap(a0, a1, b0, b1 float64) float64 {
	lo, hi := a0, a1
	if b0 > lo {
		lo = b0
	}
	if b1 < hi {
		hi = b1
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}
