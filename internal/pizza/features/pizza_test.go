package features

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/rfhold/pizza/internal/pizza"
)

type pizzaTestContext struct {
	session *pizza.Session
}

func (c *pizzaTestContext) reset() {
	c.session = nil
}

func (c *pizzaTestContext) theDefaultCatalog() error {
	c.session = pizza.NewSession(pizza.DefaultCatalog(), pizza.SessionOptions{})
	return nil
}

func (c *pizzaTestContext) iAmOnBread(index int) error {
	c.session.State().SetActiveIndex(index)
	if got := c.session.State().ActiveIndex(); got != index {
		return fmt.Errorf("could not activate bread %d, active is %d", index, got)
	}
	return nil
}

func (c *pizzaTestContext) iDragBy(dx float64) error {
	const startX = 500.0
	c.session.OnPointerDown(pizza.Point{X: startX})
	c.session.OnPointerMove(pizza.Point{X: startX + dx})
	c.session.OnPointerUp()
	return nil
}

func (c *pizzaTestContext) iPressAtAndMoveThrough(start float64, moves string) error {
	c.session.OnPointerDown(pizza.Point{X: start})
	for _, part := range strings.Split(moves, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		c.session.OnPointerMove(pizza.Point{X: x})
	}
	c.session.OnPointerUp()
	return nil
}

func (c *pizzaTestContext) iSelectSize(name string) error {
	size, err := pizza.ParseSize(name)
	if err != nil {
		return err
	}
	c.session.SelectSize(size)
	return nil
}

func (c *pizzaTestContext) iToggle(name string) error {
	category, err := pizza.ParseCategory(name)
	if err != nil {
		return err
	}
	c.session.ToggleTopping(category)
	return nil
}

func (c *pizzaTestContext) breadIsActive(index int) error {
	if got := c.session.Snapshot().Variant.ID; got != index {
		return fmt.Errorf("expected bread %d to be active, got %d", index, got)
	}
	return nil
}

func (c *pizzaTestContext) thePriceIs(price int) error {
	if got := c.session.Snapshot().Price; got != price {
		return fmt.Errorf("expected price %d, got %d", price, got)
	}
	return nil
}

func (c *pizzaTestContext) noToppingsAreDrawn() error {
	return c.toppingsAreDrawn(0)
}

func (c *pizzaTestContext) toppingsAreDrawn(n int) error {
	if got := len(c.session.Snapshot().Placements); got != n {
		return fmt.Errorf("expected %d placements, got %d", n, got)
	}
	return nil
}

func (c *pizzaTestContext) toppingIsAt(index int, image string, x, y int) error {
	placements := c.session.Snapshot().Placements
	if index >= len(placements) {
		return fmt.Errorf("only %d placements", len(placements))
	}
	p := placements[index]
	if p.Image != image {
		return fmt.Errorf("expected image %q at %d, got %q", image, index, p.Image)
	}
	if p.Offset != (pizza.Offset{X: x, Y: y}) {
		return fmt.Errorf("expected offset %d,%d at %d, got %d,%d", x, y, index, p.Offset.X, p.Offset.Y)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &pizzaTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the default catalog$`, tc.theDefaultCatalog)
	ctx.Step(`^I am on bread (\d+)$`, tc.iAmOnBread)

	// When steps
	ctx.Step(`^I drag by (-?\d+)$`, tc.iDragBy)
	ctx.Step(`^I press at (-?\d+) and move through (.+)$`, tc.iPressAtAndMoveThrough)
	ctx.Step(`^I select size "([^"]*)"$`, tc.iSelectSize)
	ctx.Step(`^I toggle "([^"]*)"$`, tc.iToggle)

	// Then steps
	ctx.Step(`^bread (\d+) is active$`, tc.breadIsActive)
	ctx.Step(`^the price is (\d+)$`, tc.thePriceIs)
	ctx.Step(`^no toppings are drawn$`, tc.noToppingsAreDrawn)
	ctx.Step(`^(\d+) toppings are drawn$`, tc.toppingsAreDrawn)
	ctx.Step(`^topping (\d+) is "([^"]*)" at (-?\d+),(-?\d+)$`, tc.toppingIsAt)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"swipe.feature", "customization.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
