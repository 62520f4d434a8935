package snake

// Display is the drawing surface the game writes to. It is only ever written,
// never read: cells are drawn and erased one at a time as the game advances.
// *core.Screen satisfies it, as does the tcell adapter in the console front end.
type Display interface {
	Set(x, y int, r rune)
	Clear()
}

// Occupancy answers whether a cell is taken. The food spawner uses it to keep
// food off the snake.
type Occupancy interface {
	Occupies(c Cell) bool
}
