package pizza

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Point is a pointer position in layout units
type Point struct {
	X float64
	Y float64
}

// Snapshot is everything a renderer needs to draw the screen. It is computed
// from the session on demand and never shares memory with it.
type Snapshot struct {
	Variant       Variant
	Customization VariantCustomization
	VariantCount  int
	Price         int
	BreadWidth    int
	PlateWidth    int
	Placements    []Placement
	Toppings      []ToppingCategory // offered by the catalog, in catalog order
}

// CartHook is called when the user adds the current pizza to the cart
type CartHook func(ctx context.Context, snap Snapshot)

// SessionOptions configures a Session. The zero value is usable.
type SessionOptions struct {
	SwipeThreshold float64
	SlotOrder      SlotOrder
	InitialSize    Size
	Logger         *slog.Logger
	Tracer         trace.Tracer
	CartHook       CartHook
}

// Session is the customization screen's model. Renderers forward pointer
// and click events to it and read Snapshot to draw.
type Session struct {
	ID      string
	catalog *Catalog
	state   *State
	swipe   *SwipeInterpreter
	order   SlotOrder
	logger  *slog.Logger
	tracer  trace.Tracer
	onCart  CartHook
}

// NewSession creates a session over catalog
func NewSession(catalog *Catalog, opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("pizza")
	}
	initial := opts.InitialSize
	if !initial.Valid() {
		initial = DefaultSize
	}

	id := uuid.NewString()
	return &Session{
		ID:      id,
		catalog: catalog,
		state:   NewStateWithSize(catalog, initial),
		swipe:   NewSwipeInterpreter(opts.SwipeThreshold),
		order:   opts.SlotOrder,
		logger:  logger.With("session", id),
		tracer:  tracer,
		onCart:  opts.CartHook,
	}
}

// Catalog returns the session's catalog
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// State returns the session's customization state
func (s *Session) State() *State {
	return s.state
}

// Gesture returns the state of the in-flight swipe gesture
func (s *Session) Gesture() GestureState {
	return s.swipe.State()
}

// OnPointerDown starts a swipe gesture
func (s *Session) OnPointerDown(p Point) {
	s.swipe.PointerDown(p.X)
}

// OnPointerMove feeds a drag position and applies any resulting navigation
func (s *Session) OnPointerMove(p Point) NavCommand {
	cmd := s.swipe.PointerMove(p.X, s.state.ActiveIndex(), s.state.Len())
	if cmd != NavNone {
		s.navigate(cmd)
	}
	return cmd
}

// OnPointerUp ends the swipe gesture
func (s *Session) OnPointerUp() {
	s.swipe.PointerUp()
}

// OnPointerCancel abandons the swipe gesture
func (s *Session) OnPointerCancel() {
	s.swipe.Cancel()
}

// Next activates the following variant, if there is one
func (s *Session) Next() {
	s.navigate(NavigateNext)
}

// Previous activates the preceding variant, if there is one
func (s *Session) Previous() {
	s.navigate(NavigatePrevious)
}

func (s *Session) navigate(cmd NavCommand) {
	from := s.state.ActiveIndex()
	s.state.Navigate(cmd)
	if to := s.state.ActiveIndex(); to != from {
		s.logger.Debug("variant changed", "direction", cmd.String(), "from", from, "to", to)
	}
}

// SelectSize sets the size of the active variant
func (s *Session) SelectSize(size Size) {
	id := s.state.ActiveIndex()
	s.state.SetSize(id, size)
	s.logger.Debug("size selected", "variant", id, "size", size.String())
}

// ToggleTopping toggles a topping on the active variant
func (s *Session) ToggleTopping(category ToppingCategory) {
	id := s.state.ActiveIndex()
	s.state.ToggleTopping(id, category)
	s.logger.Debug("topping toggled",
		"variant", id,
		"topping", category.String(),
		"selected", s.state.Customization(id).Toppings.Has(category),
	)
}

// ResetActive clears the active variant's size and toppings
func (s *Session) ResetActive() {
	id := s.state.ActiveIndex()
	s.state.Reset(id)
	s.logger.Debug("variant reset", "variant", id)
}

// AddToCart hands the current pizza to the cart hook. There is no cart in
// this package; without a hook nothing happens.
func (s *Session) AddToCart(ctx context.Context) {
	snap := s.Snapshot()
	ctx, span := s.tracer.Start(ctx, "pizza.AddToCart", trace.WithAttributes(
		attribute.String("session", s.ID),
		attribute.Int("variant", snap.Variant.ID),
		attribute.String("size", snap.Customization.Size.String()),
		attribute.Int("price", snap.Price),
	))
	defer span.End()

	s.logger.Info("add to cart",
		"variant", snap.Variant.ID,
		"size", snap.Customization.Size.String(),
		"toppings", snap.Customization.Toppings.Len(),
		"price", snap.Price,
	)
	if s.onCart != nil {
		s.onCart(ctx, snap)
	}
}

// Snapshot computes the view of the active variant
func (s *Session) Snapshot() Snapshot {
	variant, custom := s.state.Active()
	selected := OrderToppings(custom.Toppings, s.order, s.catalog)
	return Snapshot{
		Variant:       variant,
		Customization: custom,
		VariantCount:  s.state.Len(),
		Price:         Price(custom.Size),
		BreadWidth:    BreadWidth(custom.Size),
		PlateWidth:    PlateWidth,
		Placements:    Layout(custom.Size, selected, s.catalog),
		Toppings:      s.catalog.Toppings(),
	}
}
