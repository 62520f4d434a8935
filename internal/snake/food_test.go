package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// occupiedExcept marks every cell taken except the listed ones.
type occupiedExcept []Cell

func (o occupiedExcept) Occupies(c Cell) bool {
	for _, free := range o {
		if free.Equal(c) {
			return false
		}
	}
	return true
}

type occupiedAll struct{}

func (occupiedAll) Occupies(Cell) bool { return true }

func TestCreateFoodWithinMargin(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		screen := core.NewScreen(BoardWidth, BoardHeight)
		f := NewFoodSpawner(BoardWidth, BoardHeight, '@', seed, screen)
		f.CreateFood(nil)

		food, ok := f.Food()
		if !ok {
			t.Fatalf("seed %d: no food after CreateFood", seed)
		}
		if food.X < FoodMargin || food.X >= BoardWidth-FoodMargin ||
			food.Y < FoodMargin || food.Y >= BoardHeight-FoodMargin {
			t.Fatalf("seed %d: food %v outside [2, dim-2)", seed, food)
		}
		if screen.Get(food.X, food.Y) != '@' {
			t.Fatalf("seed %d: food not drawn at %v", seed, food)
		}
	}
}

// Food avoids the snake's body rather than overlapping it.
func TestCreateFoodAvoidsSnake(t *testing.T) {
	screen := core.NewScreen(BoardWidth, BoardHeight)
	free := NewCell(40, 15, '@')
	f := NewFoodSpawner(BoardWidth, BoardHeight, '@', 99, screen)

	f.CreateFood(occupiedExcept{free})

	food, ok := f.Food()
	if !ok {
		t.Fatal("expected food on the only free cell")
	}
	if !food.Equal(free) {
		t.Errorf("Food() = %v, expected the only free cell %v", food, free)
	}
}

func TestCreateFoodNeverOnBody(t *testing.T) {
	screen := core.NewScreen(BoardWidth, BoardHeight)
	sn := NewSnake(50, 10, 40, '*', screen)

	for seed := uint64(1); seed <= 100; seed++ {
		f := NewFoodSpawner(BoardWidth, BoardHeight, '@', seed, screen)
		f.CreateFood(sn)
		food, ok := f.Food()
		if !ok {
			t.Fatalf("seed %d: expected food", seed)
		}
		if sn.Occupies(food) {
			t.Fatalf("seed %d: food %v placed on the snake", seed, food)
		}
	}
}

func TestCreateFoodFullBoard(t *testing.T) {
	screen := core.NewScreen(BoardWidth, BoardHeight)
	f := NewFoodSpawner(BoardWidth, BoardHeight, '@', 3, screen)

	f.CreateFood(nil)
	if _, ok := f.Food(); !ok {
		t.Fatal("expected initial food")
	}

	f.CreateFood(occupiedAll{})
	if _, ok := f.Food(); ok {
		t.Error("a fully occupied area should leave the spawner without food")
	}
}

func TestCreateFoodDeterministic(t *testing.T) {
	a := NewFoodSpawner(BoardWidth, BoardHeight, '@', 12345, core.NewScreen(BoardWidth, BoardHeight))
	b := NewFoodSpawner(BoardWidth, BoardHeight, '@', 12345, core.NewScreen(BoardWidth, BoardHeight))

	for i := 0; i < 10; i++ {
		a.CreateFood(nil)
		b.CreateFood(nil)
		fa, _ := a.Food()
		fb, _ := b.Food()
		if !fa.Equal(fb) {
			t.Fatalf("spawn %d: %v vs %v with the same seed", i, fa, fb)
		}
	}
}

func TestFoodArea(t *testing.T) {
	f := NewFoodSpawner(BoardWidth, BoardHeight, '@', 1, core.NewScreen(BoardWidth, BoardHeight))
	area := f.Area()
	expected := core.NewRect(2, 2, BoardWidth-4, BoardHeight-4)
	if area != expected {
		t.Errorf("Area() = %+v, expected %+v", area, expected)
	}
}
