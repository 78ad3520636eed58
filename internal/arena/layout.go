package arena

// defaultLayout is the graveyard the game is played in.
// '#' wall, '.' floor, 'h' medkit, 'S' zombie spawn, 'P' player start.
var defaultLayout = []string{
	"##############################",
	"#S..........................S#",
	"#............................#",
	"#...###...........h....###...#",
	"#...#..................#.....#",
	"#.........##......##.........#",
	"#.........#........#.........#",
	"#S.............P............S#",
	"#.........#........#.........#",
	"#.........##......##.........#",
	"#.....#..................#...#",
	"#...###....h...........###...#",
	"#............................#",
	"#............................#",
	"#S...........S..............S#",
	"##############################",
}
