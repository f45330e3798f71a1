package pizza

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionZeroOptionsIsMedium(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{})

	for id := 0; id < s.State().Len(); id++ {
		assert.Equal(t, SizeMedium, s.State().Customization(id).Size, "variant %d", id)
	}
	snap := s.Snapshot()
	assert.Equal(t, 15, snap.Price)
	assert.Equal(t, 200, snap.BreadWidth)

	s.SelectSize(SizeSmall)
	s.ResetActive()
	assert.Equal(t, SizeMedium, s.Snapshot().Customization.Size)
}

func TestSessionSwipe(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{})
	s.State().SetActiveIndex(2)

	s.OnPointerDown(Point{X: 300, Y: 40})
	assert.Equal(t, NavNone, s.OnPointerMove(Point{X: 260}))
	assert.Equal(t, NavigateNext, s.OnPointerMove(Point{X: 240}))
	assert.Equal(t, NavNone, s.OnPointerMove(Point{X: 100}))
	s.OnPointerUp()

	assert.Equal(t, 3, s.Snapshot().Variant.ID)
	assert.Equal(t, GestureIdle, s.Gesture())
}

func TestSessionPointerCancel(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{})
	s.OnPointerDown(Point{X: 300})
	s.OnPointerCancel()

	assert.Equal(t, NavNone, s.OnPointerMove(Point{X: 0}))
	assert.Equal(t, 0, s.Snapshot().Variant.ID)
}

func TestSessionCustomThreshold(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{SwipeThreshold: 10})
	s.OnPointerDown(Point{X: 50})

	assert.Equal(t, NavigateNext, s.OnPointerMove(Point{X: 39}))
}

func TestSessionExplicitNavigation(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{})

	s.Previous()
	assert.Equal(t, 0, s.Snapshot().Variant.ID)
	s.Next()
	s.Next()
	assert.Equal(t, 2, s.Snapshot().Variant.ID)
}

func TestSessionMutatesActiveVariantOnly(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{})
	s.Next()
	s.SelectSize(SizeLarge)
	s.ToggleTopping(Onion)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Variant.ID)
	assert.Equal(t, SizeLarge, snap.Customization.Size)
	assert.Equal(t, 17, snap.Price)
	assert.Equal(t, 220, snap.BreadWidth)
	assert.Equal(t, PlateWidth, snap.PlateWidth)
	require.Len(t, snap.Placements, 8)
	assert.Equal(t, "onion_1", snap.Placements[0].Image)

	s.Previous()
	snap = s.Snapshot()
	assert.Equal(t, SizeMedium, snap.Customization.Size)
	assert.Equal(t, 15, snap.Price)
	assert.Empty(t, snap.Placements)

	// Coming back shows the earlier choices again
	s.Next()
	assert.Equal(t, SizeLarge, s.Snapshot().Customization.Size)
}

func TestSessionSnapshotIsIdempotent(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{})
	s.ToggleTopping(Broccoli)
	s.SelectSize(SizeSmall)

	assert.Equal(t, s.Snapshot(), s.Snapshot())
}

func TestSessionSlotOrder(t *testing.T) {
	c, err := ParseCatalog([]byte(`
variants: [{bread: a}]
toppings:
  - category: basil
    images: [b1]
  - category: onion
    images: [o1]
`))
	require.NoError(t, err)

	selection := NewSession(c, SessionOptions{})
	catalog := NewSession(c, SessionOptions{SlotOrder: SlotOrderCatalog})
	for _, s := range []*Session{selection, catalog} {
		s.ToggleTopping(Onion)
		s.ToggleTopping(Basil)
	}

	assert.Equal(t, "o1", selection.Snapshot().Placements[0].Image)
	assert.Equal(t, "b1", catalog.Snapshot().Placements[0].Image)
}

func TestSessionInitialSize(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{InitialSize: SizeLarge})
	assert.Equal(t, SizeLarge, s.Snapshot().Customization.Size)

	s.SelectSize(SizeSmall)
	s.ResetActive()
	assert.Equal(t, SizeLarge, s.Snapshot().Customization.Size)
}

func TestSessionAddToCartCallsHook(t *testing.T) {
	var got []Snapshot
	s := NewSession(DefaultCatalog(), SessionOptions{
		CartHook: func(_ context.Context, snap Snapshot) {
			got = append(got, snap)
		},
	})
	s.ToggleTopping(Sausage)
	before := s.Snapshot()

	s.AddToCart(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, before, got[0])
	assert.Equal(t, before, s.Snapshot())
}

func TestSessionAddToCartWithoutHook(t *testing.T) {
	s := NewSession(DefaultCatalog(), SessionOptions{})
	before := s.Snapshot()

	s.AddToCart(context.Background())

	assert.Equal(t, before, s.Snapshot())
}

func TestSessionLogsWithSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSession(DefaultCatalog(), SessionOptions{Logger: logger})

	s.ToggleTopping(Basil)

	assert.NotEmpty(t, s.ID)
	assert.Contains(t, buf.String(), "session="+s.ID)
	assert.Contains(t, buf.String(), "topping=Basil")
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSession(DefaultCatalog(), SessionOptions{})
	b := NewSession(DefaultCatalog(), SessionOptions{})

	assert.NotEqual(t, a.ID, b.ID)
}
