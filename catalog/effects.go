package catalog

var effects = []Definition{
	// scoring
	{ID: "center-boost", Kind: Effect, Name: "Center Boost", Category: Scoring, Text: "Lines through the center pay +3000", Parameter: 3000, ParamKind: Points, RequiresCenter: true},
	{ID: "corner-bonus", Kind: Effect, Name: "Corner Bonus", Category: Scoring, Text: "+2000 for every corner inside a completed line", Parameter: 2000, ParamKind: Points},
	{ID: "edge-bonus", Kind: Effect, Name: "Edge Bonus", Category: Scoring, Text: "+1000 for every edge inside a completed line", Parameter: 1000, ParamKind: Points},
	{ID: "combo-counter", Kind: Effect, Name: "Combo Counter", Category: Scoring, Text: "Each line after the first pays +2000 times its position in the combo", Parameter: 2000, ParamKind: Points},
	{ID: "diagonal-doubler", Kind: Effect, Name: "Diagonal Doubler", Category: Scoring, Text: "Moves completing a diagonal pay x2", Parameter: 2, ParamKind: Multiplier},
	{ID: "row-runner", Kind: Effect, Name: "Row Runner", Category: Scoring, Text: "Horizontal lines pay +3000", Parameter: 3000, ParamKind: Points},
	{ID: "column-climber", Kind: Effect, Name: "Column Climber", Category: Scoring, Text: "Vertical lines pay +3000", Parameter: 3000, ParamKind: Points},
	{ID: "triple-cherry", Kind: Effect, Name: "Triple Cherry", Category: Scoring, Text: "Complete 3 lines and the round payout doubles", Parameter: 2, ParamKind: Multiplier, Count: 3},
	{ID: "perfect-fill", Kind: Effect, Name: "Perfect Fill", Category: Scoring, Text: "Fill the board for +3000", Parameter: 3000, ParamKind: Points},
	{ID: "quick-start", Kind: Effect, Name: "Quick Start", Category: Scoring, Text: "Open on the center for +3000", Parameter: 3000, ParamKind: Points, RequiresCenter: true},
	{ID: "speed-bonus", Kind: Effect, Name: "Speed Bonus", Category: Scoring, Text: "Your first 3 placements pay +1000 each", Parameter: 1000, ParamKind: Points, Count: 3},
	{ID: "fast-corner", Kind: Effect, Name: "Fast Corner", Category: Scoring, Text: "Corner placements pay +2000", Parameter: 2000, ParamKind: Points},
	{ID: "multi-strike", Kind: Effect, Name: "Multi Strike", Category: Scoring, Text: "Every line after the first pays +500", Parameter: 500, ParamKind: Points},
	{ID: "line-streak", Kind: Effect, Name: "Line Streak", Category: Scoring, Text: "Two scoring moves in a row pay +3000", Parameter: 3000, ParamKind: Points, Count: 2},
	{ID: "center-power", Kind: Effect, Name: "Center Power", Category: Scoring, Text: "Any line using the center pays +2000", Parameter: 2000, ParamKind: Points, RequiresCenter: true},
	{ID: "board-control", Kind: Effect, Name: "Board Control", Category: Scoring, Text: "Scoring moves pay +200 per empty cell left", Parameter: 200, ParamKind: Points},
	{ID: "middle-master", Kind: Effect, Name: "Middle Master", Category: Scoring, Text: "Lines on the middle row or column pay +3000", Parameter: 3000, ParamKind: Points, RequiresCenter: true},

	// placement
	{ID: "edge-magnet", Kind: Effect, Name: "Edge Magnet", Category: Placement, Text: "Open on an edge; lines through it pay +3000", Parameter: 3000, ParamKind: Points},
	{ID: "corner-magnet", Kind: Effect, Name: "Corner Magnet", Category: Placement, Text: "Open on a corner; lines through it pay +3000", Parameter: 3000, ParamKind: Points},
	{ID: "lucky-corner", Kind: Effect, Name: "Lucky Corner", Category: Placement, Text: "Start with a free mark on a random corner", ParamKind: None},
	{ID: "free-center", Kind: Effect, Name: "Free Center", Category: Placement, Text: "Start with a free mark on the center", ParamKind: None, RequiresCenter: true},
	{ID: "safe-retry", Kind: Effect, Name: "Safe Retry", Category: Placement, Text: "Take back your last move once", ParamKind: None},
	{ID: "cross-swap", Kind: Effect, Name: "Cross Swap", Category: Placement, Text: "Move one of your marks to an empty cell once", ParamKind: None},
	{ID: "skip-turn", Kind: Effect, Name: "Skip Turn", Category: Placement, Text: "The opponent skips its next reply once", ParamKind: None},
	{ID: "recall", Kind: Effect, Name: "Recall", Category: Placement, Text: "Remove one opponent mark once", ParamKind: None},
	{ID: "twin-mark", Kind: Effect, Name: "Twin Mark", Category: Placement, Text: "Place two marks in a single turn once", ParamKind: None},

	// memory
	{ID: "memory-mark", Kind: Effect, Name: "Memory Mark", Category: Memory, Text: "One cell is hidden; lines through it pay +1000", Parameter: 1000, ParamKind: Points, Count: 1},
	{ID: "hide-corners", Kind: Effect, Name: "Hidden Corners", Category: Memory, Text: "Corners are hidden; claiming one pays +3000", Parameter: 3000, ParamKind: Points},
	{ID: "hide-edges", Kind: Effect, Name: "Hidden Edges", Category: Memory, Text: "4 edges are hidden; claiming one pays +3000", Parameter: 3000, ParamKind: Points, Count: 4},
	{ID: "memory-challenge", Kind: Effect, Name: "Memory Challenge", Category: Memory, Text: "5 cells go dim; each dim cell in a line pays +1000", Parameter: 1000, ParamKind: Points, Count: 5},
	{ID: "corner-memory", Kind: Effect, Name: "Corner Memory", Category: Memory, Text: "Corners go dim; each dim corner in a line pays +3000", Parameter: 3000, ParamKind: Points},
	{ID: "edge-memory", Kind: Effect, Name: "Edge Memory", Category: Memory, Text: "4 edges go dim; each dim edge in a line pays +3000", Parameter: 3000, ParamKind: Points, Count: 4, MinSide: 5},
	{ID: "quick-peek", Kind: Effect, Name: "Quick Peek", Category: Memory, Text: "A line is revealed at the start; completing it pays +3000", Parameter: 3000, ParamKind: Points},

	// ai-bias
	{ID: "opponent-drift", Kind: Effect, Name: "Opponent Drift", Category: AIBias, Text: "The opponent drifts to the edges", ParamKind: None},
	{ID: "corner-habit", Kind: Effect, Name: "Corner Habit", Category: AIBias, Text: "The opponent favours corners", ParamKind: None},
	{ID: "avoid-center", Kind: Effect, Name: "Center Shy", Category: AIBias, Text: "The opponent stays away from the center", ParamKind: None, RequiresCenter: true},
	{ID: "near-last", Kind: Effect, Name: "Shadow", Category: AIBias, Text: "The opponent plays next to your last mark", ParamKind: None},
	{ID: "scatter", Kind: Effect, Name: "Scatter", Category: AIBias, Text: "The opponent keeps away from your last mark", ParamKind: None},
	{ID: "opponent-mirror", Kind: Effect, Name: "Mirror Move", Category: AIBias, Text: "The opponent mirrors your last mark when it can", ParamKind: None},
	{ID: "center-rush", Kind: Effect, Name: "Center Rush", Category: AIBias, Text: "The opponent opens on the center", ParamKind: None, RequiresCenter: true},
	{ID: "edge-rush", Kind: Effect, Name: "Edge Rush", Category: AIBias, Text: "The opponent opens on an edge", ParamKind: None},
	{ID: "slow-opponent", Kind: Effect, Name: "Slow Opponent", Category: AIBias, Text: "The opponent takes its time to reply", Parameter: 500, ParamKind: Duration},

	// economy
	{ID: "bonus-bank", Kind: Effect, Name: "Bonus Bank", Category: Economy, Text: "Every line banks an extra +2000", Parameter: 2000, ParamKind: Points},
	{ID: "streak-saver", Kind: Effect, Name: "Streak Saver", Category: Economy, Text: "End the round with a streak of 2 or more for +3000", Parameter: 3000, ParamKind: Points, Count: 2},
	{ID: "top-half", Kind: Effect, Name: "High Ground", Category: Economy, Text: "Lines in the top half pay +2000", Parameter: 2000, ParamKind: Points},
	{ID: "bottom-half", Kind: Effect, Name: "Low Ground", Category: Economy, Text: "Lines in the bottom half pay +2000", Parameter: 2000, ParamKind: Points},
	{ID: "first-line-boost", Kind: Effect, Name: "First Line Boost", Category: Economy, Text: "Your first line of the round pays x2", Parameter: 2, ParamKind: Multiplier},
	{ID: "last-line-boost", Kind: Effect, Name: "Last Line Boost", Category: Economy, Text: "The line that ends the round pays x2", Parameter: 2, ParamKind: Multiplier},
	{ID: "two-line-gift", Kind: Effect, Name: "Two Line Gift", Category: Economy, Text: "Finish with exactly 2 lines for +3000", Parameter: 3000, ParamKind: Points, Count: 2},
	{ID: "no-center-gift", Kind: Effect, Name: "Hollow Center", Category: Economy, Text: "Never take the center for +3000", Parameter: 3000, ParamKind: Points, RequiresCenter: true},
	{ID: "corner-collector", Kind: Effect, Name: "Corner Collector", Category: Economy, Text: "Finish with every corner taken for +3000", Parameter: 3000, ParamKind: Points},
	{ID: "saver", Kind: Effect, Name: "Saver", Category: Economy, Text: "Bank 10% interest on the round payout", Parameter: 0.1, ParamKind: Fraction},

	// wild
	{ID: "wild-favor", Kind: Effect, Name: "Wild Favor", Category: Wild, Text: "3 wild cells; each one touching a line pays +1000", Parameter: 1000, ParamKind: Points, Count: 3},
	{ID: "wild-corners", Kind: Effect, Name: "Wild Corners", Category: Wild, Text: "2 corners turn wild; lines touching them pay +2000", Parameter: 2000, ParamKind: Points, Count: 2},
	{ID: "wild-edges", Kind: Effect, Name: "Wild Edges", Category: Wild, Text: "3 edges turn wild; lines touching them pay +1500", Parameter: 1500, ParamKind: Points, Count: 3},
	{ID: "wild-collector", Kind: Effect, Name: "Wild Collector", Category: Wild, Text: "3 wild cells; surround them all with your lines for +3000", Parameter: 3000, ParamKind: Points, Count: 3},
	{ID: "wild-saver", Kind: Effect, Name: "Wild Saver", Category: Wild, Text: "2 wild cells; leave them untouched for +2000", Parameter: 2000, ParamKind: Points, Count: 2},
}
