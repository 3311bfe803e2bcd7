package catalog

// Default returns the built-in catalog shipped with the site.
func Default() *Catalog {
	return New(
		Entry{
			Title:        "Tiny Castle",
			Description:  "A strategy game where you build and defend your own tiny castle.",
			Image:        "tile_0114.png",
			FileSize:     "17MB",
			DownloadLink: "https://modsfire.com/1DkAxIjh1tfl621",
			Tags:         []string{"strategy", "building", "medieval"},
		},
		Entry{
			Title:        "Game Title 2",
			Description:  "Description of Game Title 2.",
			Image:        "placeholder-image2.jpg",
			FileSize:     "150MB",
			DownloadLink: "game2.exe",
			Tags:         []string{"action", "adventure"},
		},
	)
}
