package preset

// DefaultName is the preset used when none is configured.
const DefaultName = "default"

func init() {
	builtins := []Preset{
		{
			Name: DefaultName,
			Rows: [][]string{
				{"greeting", "clock", "weather"},
				{"search"},
				{"tasks", "bookmarks", "goals"},
				{"analytics"},
				{"dock"},
			},
			RowWeights: []int{2, 1, 4, 3, 1},
		},
		{
			Name: "compact",
			Rows: [][]string{
				{"clock", "weather"},
				{"search"},
				{"tasks", "bookmarks"},
				{"dock"},
			},
			RowWeights: []int{1, 1, 4, 1},
		},
		{
			Name: "focus",
			Rows: [][]string{
				{"greeting", "clock"},
				{"tasks", "goals"},
				{"dock"},
			},
			RowWeights: []int{1, 4, 1},
		},
	}
	for _, p := range builtins {
		if err := Register(p); err != nil {
			panic(err)
		}
	}
}
