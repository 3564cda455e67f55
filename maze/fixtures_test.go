package maze_test

// fixtureA is the 5×5 reference maze:
//
//	0 0 1 0 0
//	0 0 0 0 0
//	0 0 0 1 0
//	1 1 0 1 1
//	0 0 0 0 0
func fixtureA() [][]int {
	return [][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0},
		{1, 1, 0, 1, 1},
		{0, 0, 0, 0, 0},
	}
}
