package catalog

var obstacles = []Definition{
	{ID: "locked-center", Kind: Obstacle, Name: "Locked Center", Text: "The center is locked", ParamKind: None, RequiresCenter: true},
	{ID: "locked-corner", Kind: Obstacle, Name: "Locked Corner", Text: "One corner is locked", ParamKind: None, Count: 1},
	{ID: "locked-edge", Kind: Obstacle, Name: "Locked Edge", Text: "One edge is locked", ParamKind: None, Count: 1},
	{ID: "ice-tile", Kind: Obstacle, Name: "Ice Tile", Text: "A frozen cell holds whatever lands on it", ParamKind: None, Count: 1},
	{ID: "fog-tile", Kind: Obstacle, Name: "Fog Tile", Text: "A cell is hidden until claimed", ParamKind: None, Count: 1},
	{ID: "bounce-tile", Kind: Obstacle, Name: "Bounce Tile", Text: "Your mark bounces off one cell to a neighbour", ParamKind: None},
	{ID: "swap-tile", Kind: Obstacle, Name: "Swap Tile", Text: "Claiming one cell converts a nearby opponent mark instead", ParamKind: None},
	{ID: "slow-reveal", Kind: Obstacle, Name: "Slow Reveal", Text: "The board starts dark and lights up one cell per opponent move", ParamKind: None},
	{ID: "no-repeat-row", Kind: Obstacle, Name: "Row Lock", Text: "You cannot play twice in a row in the same row", ParamKind: None},
	{ID: "no-repeat-column", Kind: Obstacle, Name: "Column Lock", Text: "You cannot play twice in a row in the same column", ParamKind: None},
	{ID: "wind", Kind: Obstacle, Name: "Wind", Text: "Each opponent move blows a random empty cell shut", ParamKind: None},
	{ID: "gravity", Kind: Obstacle, Name: "Gravity", Text: "Your marks fall to the lowest free cell of their column", ParamKind: None},
	{ID: "mirror-board", Kind: Obstacle, Name: "Mirror Board", Text: "The mirrored cell of your last move flickers on the board", ParamKind: None},
	{ID: "sticky-o", Kind: Obstacle, Name: "Sticky O", Text: "Opponent marks cannot be recalled", ParamKind: None},
	{ID: "slippery-edge", Kind: Obstacle, Name: "Slippery Edge", Text: "Lines starting on an edge lose their base points", ParamKind: None},
	{ID: "time-blink", Kind: Obstacle, Name: "Time Blink", Text: "The board blinks after every opponent move", Parameter: 250, ParamKind: Duration},
	{ID: "double-chance", Kind: Obstacle, Name: "Double Chance", Text: "Once a round the opponent may play twice", Parameter: 0.2, ParamKind: Probability},
	{ID: "center-tax", Kind: Obstacle, Name: "Center Tax", Text: "Taking the center costs 2000", Parameter: 2000, ParamKind: Points, RequiresCenter: true},
	{ID: "edge-tax", Kind: Obstacle, Name: "Edge Tax", Text: "Taking an edge costs 1000", Parameter: 1000, ParamKind: Points},
	{ID: "corner-tax", Kind: Obstacle, Name: "Corner Tax", Text: "Taking a corner costs 1000", Parameter: 1000, ParamKind: Points},
	{ID: "memory-fog", Kind: Obstacle, Name: "Memory Fog", Text: "3 cells sink into fog", ParamKind: None, Count: 3},
}
