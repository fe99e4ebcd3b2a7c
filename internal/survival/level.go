package survival

// Level defines an arena layout. Markers in the layout place the static
// content:
//
//	#  wall
//	P  player spawn
//	Z  zombie spawn point
//	A  ammo crate
//	H  first-aid kit
//	C  supply chest
type Level struct {
	Name   string
	Layout []string
}

// Levels holds the built-in arenas. Campaign runs use the first; endless
// runs pick one by seed.
var Levels = []Level{
	{
		Name: "Motel Courtyard",
		Layout: []string{
			"##############################",
			"#Z           ##             Z#",
			"#   A        ##        H     #",
			"#            ##              #",
			"#     ####        ####       #",
			"#     #              #       #",
			"#     #      P       #   C   #",
			"#     #              #       #",
			"#     ####        ####       #",
			"#            ##              #",
			"#   H        ##        A     #",
			"#Z           ##             Z#",
			"##############################",
		},
	},
	{
		Name: "Loading Dock",
		Layout: []string{
			"##############################",
			"#Z                          Z#",
			"#   ###    A     H    ###    #",
			"#   #                  #     #",
			"#   #   ##        ##   #     #",
			"#       ##   P    ##         #",
			"#   #   ##        ##   #  C  #",
			"#   #                  #     #",
			"#   ###    H     A    ###    #",
			"#Z                          Z#",
			"##############################",
		},
	},
	{
		Name: "Rooftop Garden",
		Layout: []string{
			"##############################",
			"#Z       #        #         Z#",
			"#  A     #   C    #     H    #",
			"#        #        #          #",
			"#  ####     ####     ####    #",
			"#                            #",
			"#            P               #",
			"#                            #",
			"#  ####     ####     ####    #",
			"#        #        #          #",
			"#  H     #   A    #     A    #",
			"#Z       #        #         Z#",
			"##############################",
		},
	},
}

// LevelCount returns the number of built-in arenas.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at index, or nil if out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all arenas.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, level := range Levels {
		names[i] = level.Name
	}
	return names
}
