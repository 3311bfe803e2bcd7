package catalog

// Entry describes a single downloadable item listed on the site.
type Entry struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Image        string   `json:"image" yaml:"image"`
	FileSize     string   `json:"fileSize" yaml:"fileSize"`
	DownloadLink string   `json:"downloadLink" yaml:"downloadLink"`
	Tags         []string `json:"tags" yaml:"tags"`
}

func (e Entry) clone() Entry {
	if e.Tags != nil {
		e.Tags = append([]string(nil), e.Tags...)
	}
	return e
}
